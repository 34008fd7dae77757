package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/relieflink/go-relief-api/internal/models"
)

type SQLiteDB struct {
	db *sql.DB
}

func NewSQLiteDB(path string) (*SQLiteDB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error while pinging database: %w", err)
	}

	s := &SQLiteDB{
		db: db,
	}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("error while migrating to database: %w", err)
	}

	return s, nil
}

func (s *SQLiteDB) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS camps (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			address TEXT,
			capacity INTEGER NOT NULL DEFAULT 0,
			requirements TEXT,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS diseases (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			date TEXT,
			severity TEXT,
			mortality TEXT,
			location TEXT NOT NULL,
			number INTEGER NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS sos_calls (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			location TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE TABLE IF NOT EXISTS alerts (
			id TEXT PRIMARY KEY,
			latitude REAL NOT NULL,
			longitude REAL NOT NULL,
			disease TEXT NOT NULL,
			radius REAL NOT NULL,
			location TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_diseases_key ON diseases(location, name);
  	`

	_, err := s.db.Exec(schema)
	return err
}

func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

func (s *SQLiteDB) AddCamp(ctx context.Context, c *models.Camp) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO camps (id, name, address, capacity, requirements, latitude, longitude, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Address, c.Capacity, c.Requirements, c.Latitude, c.Longitude, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting camp: %w", err)
	}
	return nil
}

func (s *SQLiteDB) UpdateCamp(ctx context.Context, id string, upd CampUpdate) (*models.Camp, error) {
	var sets []string
	var args []any
	if upd.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Address != nil {
		sets = append(sets, "address = ?")
		args = append(args, *upd.Address)
	}
	if upd.Capacity != nil {
		sets = append(sets, "capacity = ?")
		args = append(args, *upd.Capacity)
	}
	if upd.Requirements != nil {
		sets = append(sets, "requirements = ?")
		args = append(args, *upd.Requirements)
	}

	if len(sets) > 0 {
		args = append(args, id)
		res, err := s.db.ExecContext(ctx, "UPDATE camps SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return nil, fmt.Errorf("error updating camp: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("error reading rows affected: %w", err)
		}
		if n == 0 {
			return nil, ErrNotFound
		}
	}

	return s.getCamp(ctx, id)
}

func (s *SQLiteDB) getCamp(ctx context.Context, id string) (*models.Camp, error) {
	var c models.Camp
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, address, capacity, requirements, latitude, longitude, created_at
		FROM camps WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Address, &c.Capacity, &c.Requirements, &c.Latitude, &c.Longitude, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying camp: %w", err)
	}
	return &c, nil
}

func (s *SQLiteDB) ListCamps(ctx context.Context) ([]models.Camp, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, address, capacity, requirements, latitude, longitude, created_at
		FROM camps ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("error querying camps: %w", err)
	}
	defer rows.Close()

	camps := make([]models.Camp, 0)
	for rows.Next() {
		var c models.Camp
		if err := rows.Scan(&c.ID, &c.Name, &c.Address, &c.Capacity, &c.Requirements, &c.Latitude, &c.Longitude, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning camp row: %w", err)
		}
		camps = append(camps, c)
	}
	return camps, rows.Err()
}

func (s *SQLiteDB) UpsertDisease(ctx context.Context, d *models.Disease) (bool, error) {
	var id string
	err := s.db.QueryRowContext(ctx, `
		SELECT id FROM diseases WHERE LOWER(name) = LOWER(?) AND location = ?`,
		d.Name, d.Location,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		d.ID = uuid.NewString()
		d.Number = 1
		d.CreatedAt = time.Now()
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO diseases (id, name, date, severity, mortality, location, number, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.Name, d.Date, d.Severity, d.Mortality, d.Location, d.Number, d.CreatedAt,
		)
		if err != nil {
			return false, fmt.Errorf("error inserting disease: %w", err)
		}
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error querying disease by key: %w", err)
	}

	// Single-row increment on the found id so concurrent reports for the
	// same key are never lost.
	if _, err := s.db.ExecContext(ctx, `UPDATE diseases SET number = number + 1 WHERE id = ?`, id); err != nil {
		return false, fmt.Errorf("error incrementing disease count: %w", err)
	}

	got, err := s.getDisease(ctx, id)
	if err != nil {
		return false, err
	}
	*d = *got
	return true, nil
}

func (s *SQLiteDB) getDisease(ctx context.Context, id string) (*models.Disease, error) {
	var d models.Disease
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, date, severity, mortality, location, number, created_at
		FROM diseases WHERE id = ?`, id,
	).Scan(&d.ID, &d.Name, &d.Date, &d.Severity, &d.Mortality, &d.Location, &d.Number, &d.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying disease: %w", err)
	}
	return &d, nil
}

func (s *SQLiteDB) ListDiseases(ctx context.Context) ([]models.Disease, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, date, severity, mortality, location, number, created_at
		FROM diseases ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("error querying diseases: %w", err)
	}
	defer rows.Close()

	diseases := make([]models.Disease, 0)
	for rows.Next() {
		var d models.Disease
		if err := rows.Scan(&d.ID, &d.Name, &d.Date, &d.Severity, &d.Mortality, &d.Location, &d.Number, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning disease row: %w", err)
		}
		diseases = append(diseases, d)
	}
	return diseases, rows.Err()
}

func (s *SQLiteDB) AddAlert(ctx context.Context, a *models.Alert) error {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO alerts (id, latitude, longitude, disease, radius, location, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Latitude, a.Longitude, a.Disease, a.Radius, a.Location, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting alert: %w", err)
	}
	return nil
}

func (s *SQLiteDB) ListAlerts(ctx context.Context) ([]models.Alert, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, latitude, longitude, disease, radius, location, created_at
		FROM alerts ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("error querying alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]models.Alert, 0)
	for rows.Next() {
		var a models.Alert
		if err := rows.Scan(&a.ID, &a.Latitude, &a.Longitude, &a.Disease, &a.Radius, &a.Location, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning alert row: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func (s *SQLiteDB) DeleteAlert(ctx context.Context, id string) (*models.Alert, error) {
	var a models.Alert
	err := s.db.QueryRowContext(ctx, `
		SELECT id, latitude, longitude, disease, radius, location, created_at
		FROM alerts WHERE id = ?`, id,
	).Scan(&a.ID, &a.Latitude, &a.Longitude, &a.Disease, &a.Radius, &a.Location, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying alert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM alerts WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("error deleting alert: %w", err)
	}
	return &a, nil
}

func (s *SQLiteDB) AddSOSCall(ctx context.Context, call *models.SOSCall) error {
	call.ID = uuid.NewString()
	call.CreatedAt = time.Now()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sos_calls (id, name, latitude, longitude, location, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		call.ID, call.Name, call.Latitude, call.Longitude, call.Location, call.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error inserting sos call: %w", err)
	}
	return nil
}

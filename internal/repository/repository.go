package repository

import (
	"context"
	"errors"

	"github.com/relieflink/go-relief-api/internal/models"
)

// ErrNotFound is returned for lookups and deletes that match no document.
var ErrNotFound = errors.New("repository: not found")

// CampUpdate carries a partial camp edit. Nil fields are left untouched.
type CampUpdate struct {
	Name         *string
	Address      *string
	Capacity     *int
	Requirements *string
}

type CampRepository interface {
	AddCamp(ctx context.Context, c *models.Camp) error
	UpdateCamp(ctx context.Context, id string, upd CampUpdate) (*models.Camp, error)
	ListCamps(ctx context.Context) ([]models.Camp, error)
}

type DiseaseRepository interface {
	// UpsertDisease records a case report. When a disease with the same
	// case-insensitive name and exact location already exists its counter
	// is incremented atomically, otherwise a new record starts at 1. The
	// passed struct is overwritten with the stored state; the returned
	// bool reports whether an existing record was updated.
	UpsertDisease(ctx context.Context, d *models.Disease) (bool, error)
	ListDiseases(ctx context.Context) ([]models.Disease, error)
}

type AlertRepository interface {
	AddAlert(ctx context.Context, a *models.Alert) error
	ListAlerts(ctx context.Context) ([]models.Alert, error)
	// DeleteAlert removes the alert and returns it, or ErrNotFound.
	DeleteAlert(ctx context.Context, id string) (*models.Alert, error)
}

type SOSCallRepository interface {
	AddSOSCall(ctx context.Context, s *models.SOSCall) error
}

type Store interface {
	CampRepository
	DiseaseRepository
	AlertRepository
	SOSCallRepository
}

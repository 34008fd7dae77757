package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/relieflink/go-relief-api/internal/models"
)

type diseaseEnvelope struct {
	Message string          `json:"message"`
	Data    *models.Disease `json:"data"`
}

func TestAddDisease_NewThenIncrement(t *testing.T) {
	store := &mockStore{}
	router := setupTestRouter(store, &stubGeocoder{}, &stubNews{})

	body := map[string]any{
		"name":      "Flu",
		"date":      "2025-01-15",
		"severity":  "moderate",
		"mortality": "0.1%",
		"location":  "Townsville",
	}

	w := doJSON(router, "POST", "/disease/add", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
	var first diseaseEnvelope
	json.Unmarshal(w.Body.Bytes(), &first)
	if first.Message != "New disease added successfully" {
		t.Errorf("unexpected message: %q", first.Message)
	}
	if first.Data.Number != 1 {
		t.Errorf("expected number 1, got %d", first.Data.Number)
	}

	w = doJSON(router, "POST", "/disease/add", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", w.Code)
	}
	var second diseaseEnvelope
	json.Unmarshal(w.Body.Bytes(), &second)
	if second.Message != "Existing disease updated successfully" {
		t.Errorf("unexpected message: %q", second.Message)
	}
	if second.Data.Number != 2 {
		t.Errorf("expected number 2 after second report, got %d", second.Data.Number)
	}

	if len(store.diseases) != 1 {
		t.Errorf("expected a single document for the key, got %d", len(store.diseases))
	}
}

func TestListDiseases_EmptyIsNotFound(t *testing.T) {
	router := setupTestRouter(&mockStore{}, &stubGeocoder{}, &stubNews{})

	w := doJSON(router, "GET", "/disease/all", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["message"] != "No diseases found" {
		t.Errorf("unexpected message: %q", resp["message"])
	}
}

func TestListDiseases_ReturnsAll(t *testing.T) {
	store := &mockStore{diseases: []models.Disease{
		{ID: "disease_1", Name: "Flu", Location: "Townsville", Number: 3},
		{ID: "disease_2", Name: "Cholera", Location: "Townsville", Number: 1},
	}}
	router := setupTestRouter(store, &stubGeocoder{}, &stubNews{})

	w := doJSON(router, "GET", "/disease/all", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp struct {
		Message string           `json:"message"`
		Data    []models.Disease `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Errorf("expected 2 diseases, got %d", len(resp.Data))
	}
}

func TestLargestDisease_ReturnsMaxCount(t *testing.T) {
	store := &mockStore{diseases: []models.Disease{
		{ID: "disease_1", Name: "Flu", Location: "Townsville", Number: 3},
		{ID: "disease_2", Name: "Cholera", Location: "Townsville", Number: 7},
		{ID: "disease_3", Name: "Dengue", Location: "Townsville", Number: 5},
	}}
	router := setupTestRouter(store, &stubGeocoder{}, &stubNews{})

	w := doJSON(router, "GET", "/disease/largest", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp diseaseEnvelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Name != "Cholera" || resp.Data.Number != 7 {
		t.Errorf("expected Cholera with 7 cases, got %s with %d", resp.Data.Name, resp.Data.Number)
	}
}

func TestLargestDisease_FirstWinsOnTie(t *testing.T) {
	store := &mockStore{diseases: []models.Disease{
		{ID: "disease_1", Name: "Flu", Location: "Townsville", Number: 4},
		{ID: "disease_2", Name: "Cholera", Location: "Townsville", Number: 4},
	}}
	router := setupTestRouter(store, &stubGeocoder{}, &stubNews{})

	w := doJSON(router, "GET", "/disease/largest", nil)

	var resp diseaseEnvelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Data.Name != "Flu" {
		t.Errorf("expected the first record in retrieved order, got %s", resp.Data.Name)
	}
}

func TestLargestDisease_EmptyIsNotFound(t *testing.T) {
	router := setupTestRouter(&mockStore{}, &stubGeocoder{}, &stubNews{})

	w := doJSON(router, "GET", "/disease/largest", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
}

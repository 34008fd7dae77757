package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient(srv.URL, "test-agent/1.0")
	t.Cleanup(func() {
		c.http.CloseIdleConnections()
		srv.Close()
	})
	return c, srv
}

func TestForward_SendsQueryAndUserAgent(t *testing.T) {
	var gotPath, gotUA string
	var gotQuery map[string][]string

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		gotQuery = r.URL.Query()
		w.Write([]byte(`[{"lat":"1.0","lon":"2.0","display_name":"Townsville Hall","address":{"city":"Townsville"}}]`))
	})

	results, err := c.Forward(context.Background(), "Townsville Hall")
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	if gotPath != "/search" {
		t.Errorf("expected path /search, got %s", gotPath)
	}
	if gotUA != "test-agent/1.0" {
		t.Errorf("expected the configured User-Agent, got %q", gotUA)
	}
	for key, want := range map[string]string{"q": "Townsville Hall", "format": "json", "addressdetails": "1"} {
		if len(gotQuery[key]) != 1 || gotQuery[key][0] != want {
			t.Errorf("expected query param %s=%s, got %v", key, want, gotQuery[key])
		}
	}

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].DisplayName != "Townsville Hall" {
		t.Errorf("unexpected display name: %q", results[0].DisplayName)
	}
	if results[0].Address["city"] != "Townsville" {
		t.Errorf("expected address detail preserved, got %v", results[0].Address)
	}
}

func TestForward_EmptyResultIsErrNoResults(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := c.Forward(context.Background(), "nowhere at all")
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("expected ErrNoResults, got %v", err)
	}
}

func TestForward_ServerErrorIsNotNoResults(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.Forward(context.Background(), "Townsville")
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}
	if errors.Is(err, ErrNoResults) {
		t.Error("a provider fault must not look like an empty result")
	}
}

func TestReverse_Success(t *testing.T) {
	var gotQuery map[string][]string

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/reverse" {
			t.Errorf("expected path /reverse, got %s", r.URL.Path)
		}
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"lat":"1.0","lon":"2.0","display_name":"Main Street, Townsville"}`))
	})

	result, err := c.Reverse(context.Background(), "1.0", "2.0")
	if err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	if result.DisplayName != "Main Street, Townsville" {
		t.Errorf("unexpected display name: %q", result.DisplayName)
	}
	if gotQuery["lat"][0] != "1.0" || gotQuery["lon"][0] != "2.0" {
		t.Errorf("expected coordinates passed through verbatim, got %v", gotQuery)
	}
}

func TestReverse_InBodyErrorIsNoResults(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"Unable to geocode"}`))
	})

	_, err := c.Reverse(context.Background(), "91.0", "181.0")
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("expected ErrNoResults, got %v", err)
	}
}

func TestReverse_EmptyBodyIsNoResults(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		// 200 with nothing in it.
	})

	_, err := c.Reverse(context.Background(), "1.0", "2.0")
	if !errors.Is(err, ErrNoResults) {
		t.Errorf("expected ErrNoResults, got %v", err)
	}
}

func TestResult_Coordinates(t *testing.T) {
	r := Result{Lat: "1.0", Lon: "-2.75"}
	lat, lon, err := r.Coordinates()
	if err != nil {
		t.Fatalf("Coordinates failed: %v", err)
	}
	if lat != 1.0 || lon != -2.75 {
		t.Errorf("expected (1.0, -2.75), got (%v, %v)", lat, lon)
	}

	bad := Result{Lat: "north", Lon: "2.0"}
	if _, _, err := bad.Coordinates(); err == nil {
		t.Error("expected an error for a non-numeric latitude")
	}
}

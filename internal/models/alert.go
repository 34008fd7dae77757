package models

import "time"

// Alert is a geofenced disease warning. Latitude/Longitude are derived by
// forward-geocoding Location, which keeps the caller's original free text.
type Alert struct {
	ID        string    `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Disease   string    `json:"disease"`
	Radius    float64   `json:"radius"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

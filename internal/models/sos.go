package models

import "time"

// SOSCall records a distress signal. Name and Location both hold the
// reverse-geocoded display address for the reported coordinates; callers
// never supply them directly.
type SOSCall struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
}

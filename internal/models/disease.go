package models

import "time"

// Disease is an aggregated case counter: at most one record exists per
// (case-insensitive name, exact location) pair, and Number tracks how many
// times that pair has been reported.
type Disease struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Date      string    `json:"date"`
	Severity  string    `json:"severity"`
	Mortality string    `json:"mortality"`
	Location  string    `json:"location"`
	Number    int       `json:"number"`
	CreatedAt time.Time `json:"created_at"`
}

package places

import "time"

// Place is a reported physical location, keyed by the caller-supplied
// Google place id. Rows are never deleted; repeat reports only bump
// ReportCount.
type Place struct {
	GooglePlaceID  string    `json:"google_place_id"`
	Name           string    `json:"name"`
	Address        string    `json:"address"`
	GooglePlaceURL *string   `json:"google_place_url,omitempty"`
	PhoneNumber    *string   `json:"phone_number,omitempty"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	ReportCount    int       `json:"report_count"`
	CreatedAt      time.Time `json:"created_at"`
}

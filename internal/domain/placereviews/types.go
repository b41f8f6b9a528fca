package placereviews

import "time"

// ReviewType is the closed set of self-service review channels.
type ReviewType string

const (
	TypeGoogleReview ReviewType = "GOOGLE_REVIEW"
	TypePhoneCall    ReviewType = "PHONE_CALL"
	TypeTwilio       ReviewType = "TWILIO"
)

// Review is a single review action against a place. Exactly one of
// Type and DoItForMe is set; the handler validates this before the row
// is written. CompletedAt stays nil while a do-it-for-me review is
// pending.
type Review struct {
	ID            int64       `json:"id"`
	GooglePlaceID string      `json:"google_place_id"`
	CreatedAt     time.Time   `json:"created_at"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`
	Type          *ReviewType `json:"type,omitempty"`
	DoItForMe     bool        `json:"do_it_for_me"`
}

package main

import (
	"errors"
	"net/http"
	"time"

	"lightsoff/internal/domain/placereviews"
	"lightsoff/internal/domain/places"
	"lightsoff/internal/notifier"

	"github.com/go-chi/chi/v5"
)

type createPlaceReviewPayload struct {
	Type      *placereviews.ReviewType `json:"type" validate:"omitempty,oneof=GOOGLE_REVIEW PHONE_CALL TWILIO"`
	DoItForMe *bool                    `json:"do_it_for_me"`
}

// consistencyCheck enforces that exactly one of type and do_it_for_me
// is chosen. The messages mirror what API clients already depend on.
func (p *createPlaceReviewPayload) consistencyCheck() error {
	doItForMe := p.DoItForMe != nil && *p.DoItForMe

	switch {
	case p.Type == nil && p.DoItForMe == nil:
		return errors.New("type or do_it_for_me fields should not be null")
	case doItForMe && p.Type != nil:
		return errors.New("type or do_it_for_me fields should be null")
	case !doItForMe && p.Type == nil:
		return errors.New("type field should not be null")
	}

	return nil
}

// CreatePlaceReview godoc
//
//	@Summary		File a review against a place
//	@Description	Persists a review for a known place. Either a self-service review type or do_it_for_me must be set, never both. After commit the event is forwarded to the configured webhook, best effort.
//	@Tags			Places
//	@Accept			json
//	@Produce		json
//	@Param			googlePlaceID	path		string						true	"Google place id"
//	@Param			payload			body		createPlaceReviewPayload	true	"Review payload"
//	@Success		200				{object}	statusResponse
//	@Failure		404				{object}	statusResponse	"Unknown place"
//	@Failure		422				{object}	statusResponse	"Validation failed"
//	@Failure		500				{object}	statusResponse	"Internal server error"
//	@Router			/places/{googlePlaceID}/reviews [post]
func (app *application) createPlaceReviewHandler(w http.ResponseWriter, r *http.Request) {
	googlePlaceID := chi.URLParam(r, "googlePlaceID")

	var payload createPlaceReviewPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}
	if err := payload.consistencyCheck(); err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	place, err := app.places.GetByID(r.Context(), googlePlaceID)
	if err != nil {
		if errors.Is(err, places.ErrNotFound) {
			app.notFoundResponse(w, r)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	doItForMe := payload.DoItForMe != nil && *payload.DoItForMe

	now := time.Now().UTC()
	review := &placereviews.Review{
		GooglePlaceID: place.GooglePlaceID,
		CreatedAt:     now,
		Type:          payload.Type,
		DoItForMe:     doItForMe,
	}
	// A deferred review stays open until someone does it on the
	// client's behalf.
	if !doItForMe {
		review.CompletedAt = &now
	}

	if err := app.reviews.Create(r.Context(), review); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	var reviewType *string
	if review.Type != nil {
		t := string(*review.Type)
		reviewType = &t
	}
	app.notifier.ReviewCreated(r.Context(), notifier.ReviewEvent{
		PlaceName:      place.Name,
		GooglePlaceURL: place.GooglePlaceURL,
		PlaceAddress:   place.Address,
		ReviewType:     reviewType,
	})

	app.okResponse(w, r)
}

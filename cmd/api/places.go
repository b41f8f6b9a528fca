package main

import (
	"net/http"

	"lightsoff/internal/domain/places"
)

type createPlacePayload struct {
	GooglePlaceID  string   `json:"google_place_id" validate:"required"`
	Name           string   `json:"name" validate:"required"`
	GooglePlaceURL string   `json:"google_place_url" validate:"required"`
	Address        string   `json:"address" validate:"required"`
	PhoneNumber    *string  `json:"phone_number,omitempty" validate:"omitempty,max=15"`
	Latitude       *float64 `json:"latitude" validate:"required"`
	Longitude      *float64 `json:"longitude" validate:"required"`
}

// CreatePlace godoc
//
//	@Summary		Report a place
//	@Description	Records a place submission. The first report of a google_place_id creates the row; later reports only increment its report_count. The response does not distinguish the two cases.
//	@Tags			Places
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		createPlacePayload	true	"Place payload"
//	@Success		200		{object}	statusResponse
//	@Failure		422		{object}	statusResponse	"Validation failed"
//	@Failure		500		{object}	statusResponse	"Internal server error"
//	@Router			/places [post]
func (app *application) createPlaceHandler(w http.ResponseWriter, r *http.Request) {
	var payload createPlacePayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.unprocessableEntityResponse(w, r, err)
		return
	}

	place := &places.Place{
		GooglePlaceID:  payload.GooglePlaceID,
		Name:           payload.Name,
		Address:        payload.Address,
		GooglePlaceURL: &payload.GooglePlaceURL,
		PhoneNumber:    payload.PhoneNumber,
		Latitude:       *payload.Latitude,
		Longitude:      *payload.Longitude,
	}

	if err := app.places.Report(r.Context(), place); err != nil {
		app.internalServerError(w, r, err)
		return
	}

	app.okResponse(w, r)
}

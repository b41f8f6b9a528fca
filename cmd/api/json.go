package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())
}

// statusResponse is the envelope both endpoints answer with, in the
// success and the structured-failure case alike.
type statusResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// it parses body into Go struct.
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1_048_578 //1mb
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(data)
}

func writeJSONError(w http.ResponseWriter, status int, message string) error {
	return writeJSON(w, status, &statusResponse{
		Code:    status,
		Message: message,
	})
}

func (app *application) okResponse(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, &statusResponse{Code: http.StatusOK, Message: "ok"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

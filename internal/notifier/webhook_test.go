package notifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func testEvent() ReviewEvent {
	url := "https://maps.google.com/?cid=42"
	reviewType := "GOOGLE_REVIEW"
	return ReviewEvent{
		PlaceName:      "Some Diner",
		GooglePlaceURL: &url,
		PlaceAddress:   "1 Main St",
		ReviewType:     &reviewType,
	}
}

func TestReviewCreatedPostsPayload(t *testing.T) {
	var (
		gotBody     map[string]any
		gotDelivery string
		gotType     string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		gotDelivery = r.Header.Get("X-Webhook-Delivery")
		gotType = r.Header.Get("Content-Type")
	}))
	defer srv.Close()

	hook := NewWebhook(srv.URL, zap.NewNop().Sugar())
	hook.ReviewCreated(context.Background(), testEvent())

	assert.Equal(t, "application/json", gotType)
	assert.NotEmpty(t, gotDelivery)
	assert.Equal(t, map[string]any{
		"place_name":       "Some Diner",
		"google_place_url": "https://maps.google.com/?cid=42",
		"place_address":    "1 Main St",
		"review_type":      "GOOGLE_REVIEW",
	}, gotBody)
}

func TestReviewCreatedNullFieldsSerializeAsNull(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &gotBody))
	}))
	defer srv.Close()

	event := testEvent()
	event.GooglePlaceURL = nil
	event.ReviewType = nil

	hook := NewWebhook(srv.URL, zap.NewNop().Sugar())
	hook.ReviewCreated(context.Background(), event)

	assert.Nil(t, gotBody["review_type"])
	assert.Nil(t, gotBody["google_place_url"])
}

func TestReviewCreatedDisabledWithoutURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("webhook must not fire when no URL is configured")
	}))
	defer srv.Close()

	hook := NewWebhook("", zap.NewNop().Sugar())
	hook.ReviewCreated(context.Background(), testEvent())
}

func TestReviewCreatedSwallowsRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	core, logs := observer.New(zap.ErrorLevel)
	hook := NewWebhook(srv.URL, zap.New(core).Sugar())
	hook.ReviewCreated(context.Background(), testEvent())

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "rejected")
}

func TestReviewCreatedSwallowsConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing is listening anymore

	core, logs := observer.New(zap.ErrorLevel)
	hook := NewWebhook(srv.URL, zap.New(core).Sugar())
	hook.ReviewCreated(context.Background(), testEvent())

	require.Equal(t, 1, logs.Len())
	assert.Contains(t, logs.All()[0].Message, "delivery failed")
}

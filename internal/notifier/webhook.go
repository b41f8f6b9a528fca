package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// The original service posted with no deadline; a slow receiver could
// stall a request forever. 10s bounds the damage.
const requestTimeout = 10 * time.Second

// ReviewEvent is the payload delivered to the hook after a review is
// committed.
type ReviewEvent struct {
	PlaceName      string  `json:"place_name"`
	GooglePlaceURL *string `json:"google_place_url"`
	PlaceAddress   string  `json:"place_address"`
	ReviewType     *string `json:"review_type"`
}

// Client delivers review events to an external sink. Delivery is best
// effort: implementations log failures and never surface them.
type Client interface {
	ReviewCreated(ctx context.Context, event ReviewEvent)
}

type Webhook struct {
	url    string
	client *http.Client
	logger *zap.SugaredLogger
}

// NewWebhook builds a webhook client for url. An empty url disables
// delivery entirely.
func NewWebhook(url string, logger *zap.SugaredLogger) *Webhook {
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: requestTimeout},
		logger: logger,
	}
}

func (w *Webhook) ReviewCreated(ctx context.Context, event ReviewEvent) {
	if w.url == "" {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		w.logger.Errorw("failed to encode review webhook payload", "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		w.logger.Errorw("failed to build review webhook request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Webhook-Delivery", uuid.New().String())

	resp, err := w.client.Do(req)
	if err != nil {
		w.logger.Errorw("review webhook delivery failed", "url", w.url, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		w.logger.Errorw("review webhook rejected", "url", w.url, "status", resp.StatusCode)
	}
}

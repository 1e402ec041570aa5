// Package partner implements the outbound HTTP adapter for the delivery
// partner service: status change notifications and driver availability polls.
package partner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"

	"github.com/google/uuid"
)

const defaultTimeout = 5 * time.Second

// Client talks to the delivery partner's HTTP API. It implements both
// ports.PartnerNotifier and ports.DriverAvailability.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a partner API client for the given base URL.
// Pass nil to use a default client with a 5 second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}

	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

type statusChangeRequest struct {
	Status string `json:"status"`
}

type driverStatusResponse struct {
	DriverStatus string `json:"driver_status"`
}

// NotifyStatusChange informs the partner that an order moved to a new status.
// Each call carries a fresh Idempotency-Key header so the partner can
// de-duplicate retries. Transport failures and non-2xx responses are wrapped
// in ports.ErrPartnerUnreachable.
func (c *Client) NotifyStatusChange(ctx context.Context, orderID int64, newStatus order.Status) error {
	body, err := json.Marshal(statusChangeRequest{Status: newStatus.String()})
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/orders/%d", c.baseURL, orderID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrPartnerUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: partner returned status %d", ports.ErrPartnerUnreachable, resp.StatusCode)
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// IsDriverAvailable polls the partner for the current driver status.
// Transport failures, non-2xx responses and malformed bodies are wrapped in
// ports.ErrDriverStatusUnavailable so the watcher can treat them uniformly as
// "no answer this tick".
func (c *Client) IsDriverAvailable(ctx context.Context) (bool, error) {
	url := c.baseURL + "/driver/status"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ports.ErrDriverStatusUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: partner returned status %d",
			ports.ErrDriverStatusUnavailable, resp.StatusCode)
	}

	var status driverStatusResponse
	if err = json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return false, fmt.Errorf("%w: %w", ports.ErrDriverStatusUnavailable, err)
	}

	return status.DriverStatus == "available", nil
}

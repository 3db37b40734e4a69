// Package customer talks to the Loccar customer-management API, which keeps
// its own record of every registered renter.
package customer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Loccar-Locadora/Loccar-Auth-API/internal/domain"
)

const registerPath = "/customer/register"

// ErrRejected is returned when the customer API answers with a non-2xx
// status. Transport failures are returned as-is so callers can tell the two
// apart.
var ErrRejected = errors.New("customer registry rejected the request")

// Client notifies the customer-management system of newly registered users.
type Client interface {
	Register(ctx context.Context, data *domain.UserData) error
}

type httpClient struct {
	baseURL string
	client  *http.Client
}

// NewClient builds an HTTP client for the customer API. The timeout bounds
// the whole call so a slow partner system cannot stall registration.
func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *httpClient) Register(ctx context.Context, data *domain.UserData) error {
	body, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal customer data: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+registerPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build customer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Correlation-ID", uuid.New().String())

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("post customer register: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}
	return nil
}

package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/meltforce/ftracker/internal/models"
	"github.com/meltforce/ftracker/internal/observability"
	"github.com/meltforce/ftracker/internal/workout"
)

// HTTPClient implements Calculator by calling the ftracker REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but the
// server is reached over the network (for example through Tailscale).
type HTTPClient struct {
	client *resty.Client
}

// Compile-time check: HTTPClient satisfies Calculator.
var _ Calculator = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. apiKey
// is sent as X-API-Key when non-empty.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")
	if apiKey != "" {
		client.SetHeader("X-API-Key", apiKey)
	}
	return &HTTPClient{client: client}
}

func (c *HTTPClient) Compute(ctx context.Context, req models.ComputeRequest, lang workout.Language) (*models.ComputeResponse, error) {
	const path = "/api/v1/workouts/compute"

	var out models.ComputeResponse
	var apiErr models.ErrorResponse
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("lang", string(lang)).
		SetBody(req).
		SetResult(&out).
		SetError(&apiErr).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, remoteError(req, resp.StatusCode(), apiErr)
	}
	return &out, nil
}

func (c *HTTPClient) WorkoutTypes(ctx context.Context) ([]models.WorkoutType, error) {
	const path = "/api/v1/workout-types"

	var types []models.WorkoutType
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&types).
		Get(path)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode(), resp.Body())
	}
	return types, nil
}

// remoteError maps an API error body back onto the local error values so
// callers can use errors.Is regardless of where the workout was computed.
func remoteError(req models.ComputeRequest, status int, apiErr models.ErrorResponse) error {
	switch apiErr.Reason {
	case observability.ReasonUnsupportedType:
		return &workout.UnsupportedTypeError{Code: req.Type}
	case observability.ReasonArity:
		return fmt.Errorf("%w: %s", workout.ErrArity, apiErr.Error)
	case observability.ReasonNonFinite:
		return fmt.Errorf("%w: %s", ErrNonFinite, apiErr.Error)
	}
	return fmt.Errorf("httpclient: compute returned %d: %s", status, apiErr.Error)
}

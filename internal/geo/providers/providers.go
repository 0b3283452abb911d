// Package providers contains the HTTP adapters for the upstream
// geocoding and POI sources. Every adapter normalizes its upstream
// payload into the unified result model and keeps its own bounded
// http.Client; failures surface as errors and are downgraded to empty
// contributions by the orchestrator.
package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const userAgent = "BookingAdminBackend/1.0"

// getJSON performs a GET against reqURL and decodes the JSON body into
// target. Non-2xx responses are errors.
func getJSON(ctx context.Context, client *http.Client, reqURL string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upstream api error: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

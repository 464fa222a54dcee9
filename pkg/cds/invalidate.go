package cds

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// Invalidate asks the service to drop its cached content so the next fetch
// regenerates it. It reports success as a bool and never fails hard: any
// transport or protocol problem logs and returns false.
func (c *Client) Invalidate(ctx context.Context) bool {
	req, err := c.newRequest(ctx, http.MethodPost, "/invalidate", nil, nil, true)
	if err != nil {
		c.log.ErrorContext(ctx, "cache invalidation request could not be built", slog.Any("error", err))
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "cache invalidation request failed", slog.Any("error", err))
		return false
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = responseBody(resp)
		c.log.ErrorContext(ctx, "cache invalidation rejected", slog.Int("status", resp.StatusCode))
		return false
	}

	raw, err := responseBody(resp)
	if err != nil {
		c.log.ErrorContext(ctx, "cache invalidation response unreadable", slog.Any("error", err))
		return false
	}

	var payload invalidateResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.log.ErrorContext(ctx, "cache invalidation response not parsable", slog.Any("error", err))
		return false
	}
	if payload.Data.Status != "success" {
		c.log.ErrorContext(ctx, "cache invalidation did not succeed", slog.String("status", payload.Data.Status))
		return false
	}

	c.log.InfoContext(ctx, "cache invalidated", slog.Int("count", payload.Data.Count))
	return true
}

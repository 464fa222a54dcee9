package cds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/otastrings/otastrings/pkg/translations"
)

// PushConfig carries the server-side flags for a push.
type PushConfig struct {
	// Purge deletes strings missing from this push instead of keeping them.
	Purge bool

	// OverrideTags replaces stored tags instead of merging them.
	OverrideTags bool

	// OverrideOccurrences replaces stored occurrences instead of merging.
	OverrideOccurrences bool

	// KeepTranslations preserves existing translations for strings whose
	// source text changed.
	KeepTranslations bool

	// DryRun asks the service to report what would change without
	// committing anything.
	DryRun bool
}

// PushResult is the outcome of a push, warnings included.
type PushResult struct {
	// OK reports whether the job resolved as completed.
	OK bool

	// Errors collects everything that went wrong, from serialization
	// through job resolution.
	Errors []error

	// Warnings lists non-fatal conditions found while preparing the
	// payload. A push can succeed with warnings.
	Warnings []Warning

	// Details holds the per-string counters a resolved job reported,
	// when the service provided them.
	Details *JobDetails
}

// Push submits source strings to the service and polls the resulting job
// until it resolves. It never panics or aborts the process: every failure
// mode comes back inside the PushResult.
func (c *Client) Push(ctx context.Context, strs []translations.SourceString, cfg PushConfig) PushResult {
	payload, warnings := serializeSourceStrings(strs)
	if len(payload) == 0 {
		return PushResult{Errors: []error{ErrNothingToPush}, Warnings: warnings}
	}

	body, err := json.Marshal(pushRequest{
		Data: payload,
		Meta: pushMeta{
			Purge:               cfg.Purge,
			OverrideTags:        cfg.OverrideTags,
			OverrideOccurrences: cfg.OverrideOccurrences,
			KeepTranslations:    cfg.KeepTranslations,
			DryRun:              cfg.DryRun,
		},
	})
	if err != nil {
		return PushResult{
			Errors:   []error{errors.Join(ErrSerializationFailed, err)},
			Warnings: warnings,
		}
	}

	jobPath, err := c.submitPush(ctx, body)
	if err != nil {
		return PushResult{Errors: []error{err}, Warnings: warnings}
	}

	ok, errs, details := c.pollJob(ctx, jobPath)
	return PushResult{OK: ok, Errors: errs, Warnings: warnings, Details: details}
}

// serializeSourceStrings shapes the payload and flags the conditions the
// caller should know about without failing the push over them.
func serializeSourceStrings(strs []translations.SourceString) (map[string]pushString, []Warning) {
	payload := make(map[string]pushString, len(strs))
	var warnings []Warning

	for _, s := range strs {
		key := s.ResolvedKey()
		if strings.TrimSpace(key) == "" {
			warnings = append(warnings, Warning{
				Type:    WarningEmptyKey,
				Key:     key,
				Message: fmt.Sprintf("source string %q has an empty key", s.SourceString),
			})
		}
		if prev, exists := payload[key]; exists {
			warnings = append(warnings, Warning{
				Type: WarningDuplicateKey,
				Key:  key,
				Message: fmt.Sprintf("key %q maps to both %q and %q; keeping the latter",
					key, prev.String, s.SourceString),
			})
		}

		entry := pushString{String: s.SourceString}
		meta := pushStringMeta{
			Context:          s.Context,
			DeveloperComment: s.DeveloperComment,
			CharacterLimit:   s.CharacterLimit,
			Tags:             s.Tags,
		}
		for _, occ := range s.Occurrences {
			meta.Occurrences = append(meta.Occurrences, occ.String())
		}
		if meta.Context != "" || meta.DeveloperComment != "" || meta.CharacterLimit != 0 ||
			len(meta.Tags) > 0 || len(meta.Occurrences) > 0 {
			m := meta
			entry.Meta = &m
		}
		payload[key] = entry
	}

	return payload, warnings
}

// submitPush sends the payload and returns the path of the job the service
// created to process it.
func (c *Client) submitPush(ctx context.Context, body []byte) (string, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/content", nil, body, true)
	if err != nil {
		return "", errors.Join(ErrRequestFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Join(ErrRequestFailed, err)
	}
	// Only a 202 carries a job reference; anything else is terminal.
	if resp.StatusCode != http.StatusAccepted {
		_, _ = responseBody(resp)
		return "", &ServerError{StatusCode: resp.StatusCode}
	}

	raw, err := responseBody(resp)
	if err != nil {
		return "", errors.Join(ErrRequestFailed, err)
	}

	var payload pushResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", errors.Join(ErrInvalidResponse, err)
	}
	if payload.Data.Links.Job == "" {
		return "", ErrInvalidResponse
	}
	return payload.Data.Links.Job, nil
}

// pollJob watches a push job until it resolves or the attempt budget runs
// out. Transient statuses re-poll after the configured interval; a failed
// status request ends polling immediately since the job path itself is in
// doubt at that point.
func (c *Client) pollJob(ctx context.Context, jobPath string) (bool, []error, *JobDetails) {
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return false, []error{ctx.Err()}, nil
		case <-time.After(c.pollInterval):
		}

		payload, err := c.jobStatus(ctx, jobPath)
		if err != nil {
			return false, []error{errors.Join(ErrFailedJobRequest, err)}, nil
		}

		switch payload.Data.Status {
		case jobStatusCompleted:
			return true, jobErrors(payload.Data.Errors), payload.Data.Details
		case jobStatusFailed:
			errs := jobErrors(payload.Data.Errors)
			if len(errs) == 0 {
				errs = []error{&JobError{Status: jobStatusFailed, Title: "job failed"}}
			}
			return false, errs, payload.Data.Details
		case jobStatusPending, jobStatusProcessing:
			c.log.DebugContext(ctx, "push job still running",
				slog.String("status", payload.Data.Status),
				slog.Int("attempt", attempt+1))
		default:
			return false, []error{fmt.Errorf("%w: unknown job status %q", ErrInvalidResponse, payload.Data.Status)}, nil
		}
	}

	return false, []error{ErrMaxRetriesReached}, nil
}

func (c *Client) jobStatus(ctx context.Context, jobPath string) (*jobResponse, error) {
	req, err := c.newRequest(ctx, http.MethodGet, jobPath, nil, nil, true)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_, _ = responseBody(resp)
		return nil, &ServerError{StatusCode: resp.StatusCode}
	}

	raw, err := responseBody(resp)
	if err != nil {
		return nil, err
	}

	var payload jobResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func jobErrors(errs []JobError) []error {
	if len(errs) == 0 {
		return nil
	}
	out := make([]error, 0, len(errs))
	for i := range errs {
		out = append(out, &errs[i])
	}
	return out
}

// Package cds implements the client side of the Content Delivery Service
// wire protocol: pulling translations per locale, pushing source strings,
// polling push jobs to completion, and forcing CDN cache invalidation.
//
// # Fetching
//
// Fetch issues one request per locale concurrently and merges the
// successful responses into a single TranslationSet. A locale the service
// is still preparing (HTTP 202) is retried up to a fixed attempt budget.
// Failures never abort the whole operation: callers get the translations
// that did arrive plus one error per locale that did not.
//
//	client, err := cds.New(cds.Config{Host: host, Token: token})
//	set, errs := client.Fetch(ctx, []string{"fr", "de"})
//
// # Pushing
//
// Push serializes the given source strings, submits them in one request,
// and polls the job the service creates until it resolves. Duplicate or
// empty keys are reported as warnings alongside the result, never as
// failures.
//
//	result := client.Push(ctx, strings, cds.PushConfig{})
//	if !result.OK { ... }
//
// All operations are non-fatal to the process: every failure mode is
// surfaced as a value.
package cds

package cds

import "github.com/otastrings/otastrings/pkg/translations"

// Wire envelopes for the CDS JSON protocol. Every payload nests under a
// top-level "data" member.

type pullResponse struct {
	Data translations.LocaleStringTable `json:"data"`
}

type pushString struct {
	String string          `json:"string"`
	Meta   *pushStringMeta `json:"meta,omitempty"`
}

type pushStringMeta struct {
	Context          string   `json:"context,omitempty"`
	DeveloperComment string   `json:"developer_comment,omitempty"`
	CharacterLimit   int      `json:"character_limit,omitempty"`
	Tags             []string `json:"tags,omitempty"`
	Occurrences      []string `json:"occurrences,omitempty"`
}

type pushMeta struct {
	Purge               bool `json:"purge"`
	OverrideTags        bool `json:"override_tags"`
	OverrideOccurrences bool `json:"override_occurrences"`
	KeepTranslations    bool `json:"keep_translations"`
	DryRun              bool `json:"dry_run"`
}

type pushRequest struct {
	Data map[string]pushString `json:"data"`
	Meta pushMeta              `json:"meta"`
}

type pushResponse struct {
	Data struct {
		Links struct {
			Job string `json:"job"`
		} `json:"links"`
	} `json:"data"`
}

// Job lifecycle statuses reported while a push resolves server side.
const (
	jobStatusPending    = "pending"
	jobStatusProcessing = "processing"
	jobStatusCompleted  = "completed"
	jobStatusFailed     = "failed"
)

type jobResponse struct {
	Data struct {
		Status  string      `json:"status"`
		Errors  []JobError  `json:"errors"`
		Details *JobDetails `json:"details"`
	} `json:"data"`
}

// JobDetails carries the per-string counters a completed push job reports.
type JobDetails struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
	Skipped int `json:"skipped"`
	Deleted int `json:"deleted"`
	Failed  int `json:"failed"`
}

type invalidateResponse struct {
	Data struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	} `json:"data"`
}

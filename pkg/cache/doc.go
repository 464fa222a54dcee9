// Package cache implements the layered translation cache as a chain of
// decorators over an in-memory store. Every layer exposes the same small
// capability (read the full set, read one template, apply an update) and
// wraps an owned inner cache, so any subset of behaviors can be composed.
//
// # Layers
//
//   - Memory: the innermost store holding the current TranslationSet.
//   - MergeFilter: applies a merge policy (replace-all or
//     update-using-translated) to incoming updates.
//   - ProviderSeed: feeds read-only snapshot providers into the inner cache
//     once, at construction.
//   - ReadOnly: swallows updates from its callers while passing reads
//     through.
//   - FileOutput: persists the merged set to a JSON file after every update
//     on a dedicated writer goroutine.
//   - Nop: the inert variant for contexts that need the interface but no
//     storage.
//
// # Standard composition
//
// NewStandardCache builds the default chain (outermost first):
//
//	FileOutput > ReadOnly > ProviderSeed > MergeFilter > Memory
//
// Reads reflect the seeded state; live updates are persisted to the output
// file (picked up by the file provider on next startup) without mutating the
// seeded in-memory state.
//
// # Providers
//
// Snapshot providers seed the chain from a JSON file on disk, an fs.FS
// bundle of per-locale JSON/YAML files, a Redis key shared across a server
// fleet, or an S3 object.
//
// # Concurrency
//
// Caches are not synchronized internally; callers must serialize concurrent
// Get/Update calls. The FileOutput disk path is the one exception: its
// writes always run one at a time on a dedicated goroutine.
package cache

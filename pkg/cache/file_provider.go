package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/otastrings/otastrings/pkg/translations"
)

// FileProvider loads a TranslationSet snapshot from a single JSON document
// on disk, the same format the FileOutput decorator writes. A missing file
// is not an error: it yields an empty set so a first launch before any
// fetch works quietly.
type FileProvider struct {
	path string
}

// NewFileProvider creates a provider reading the snapshot at path.
func NewFileProvider(path string) *FileProvider {
	return &FileProvider{path: path}
}

// Load implements Provider.
func (p *FileProvider) Load() (translations.TranslationSet, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return translations.TranslationSet{}, nil
		}
		return nil, fmt.Errorf("reading snapshot %q: %w", p.path, err)
	}

	var set translations.TranslationSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, errors.Join(ErrInvalidSnapshot, fmt.Errorf("parsing %q: %w", p.path, err))
	}

	return set, nil
}

var _ Provider = (*FileProvider)(nil)

package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/otastrings/otastrings/pkg/translations"
)

// BundleProvider loads a TranslationSet from per-locale snapshot files in an
// fs.FS, typically an embed.FS compiled into the application as the
// lowest-precedence seed layer.
//
// File convention: {locale}.json, {locale}.yaml or {locale}.yml at the root
// of the filesystem, each containing a flat key -> template mapping:
//
//	fr.json:   {"welcome": "Bienvenue"}
//	de.yaml:   welcome: Willkommen
type BundleProvider struct {
	fsys fs.FS
}

// NewBundleProvider creates a provider reading per-locale files from fsys.
func NewBundleProvider(fsys fs.FS) *BundleProvider {
	return &BundleProvider{fsys: fsys}
}

// Load implements Provider.
func (p *BundleProvider) Load() (translations.TranslationSet, error) {
	entries, err := fs.ReadDir(p.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading bundle: %w", err)
	}

	set := make(translations.TranslationSet)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))

		var unmarshal func([]byte, any) error
		switch ext {
		case ".json":
			unmarshal = json.Unmarshal
		case ".yaml", ".yml":
			unmarshal = func(data []byte, v any) error { return yaml.Unmarshal(data, v) }
		default:
			continue
		}

		data, err := fs.ReadFile(p.fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", name, err)
		}

		var templates map[string]string
		if err := unmarshal(data, &templates); err != nil {
			return nil, errors.Join(ErrInvalidSnapshot, fmt.Errorf("parsing %q: %w", name, err))
		}

		locale := strings.TrimSuffix(name, ext)
		for key, template := range templates {
			set.Put(locale, key, template)
		}
	}

	return set, nil
}

var _ Provider = (*BundleProvider)(nil)

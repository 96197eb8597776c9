package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/pders01/devtec/internal/config"
	"github.com/pders01/devtec/internal/debuglog"
	"github.com/pders01/devtec/internal/validation"
)

// Loader reads the catalog once from a local file or an http(s) URL.
type Loader struct {
	fetcher   *Fetcher
	validator *validation.LinkValidator
	paths     *validation.FilePathValidator
}

func NewLoader(cfg *config.Config) *Loader {
	return &Loader{
		fetcher:   NewFetcher(cfg),
		validator: validation.NewSourceValidator(),
		paths:     validation.NewFilePathValidator(),
	}
}

// Load reads and decodes source. There is no retry and no partial result.
func (l *Loader) Load(ctx context.Context, source string) ([]Entry, error) {
	var (
		data []byte
		err  error
	)

	if config.IsRemoteSource(source) {
		normalized, vErr := l.validator.ValidateAndNormalize(source)
		if vErr != nil {
			return nil, fmt.Errorf("invalid catalog URL: %w", vErr)
		}
		data, err = l.fetcher.Fetch(ctx, normalized)
	} else {
		path, vErr := l.paths.ValidateFile(source)
		if vErr != nil {
			return nil, fmt.Errorf("invalid catalog path: %w", vErr)
		}
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", source, err)
	}

	entries, err := Decode(data, FormatFor(source))
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", source, err)
	}

	debuglog.WithFields(map[string]interface{}{
		"source":  source,
		"entries": len(entries),
	}).Infof("catalog loaded")

	return entries, nil
}

// LoadOrEmpty is Load with the failure policy applied: the error is
// logged and an empty, non-nil catalog is returned alongside it.
func (l *Loader) LoadOrEmpty(ctx context.Context, source string) ([]Entry, error) {
	entries, err := l.Load(ctx, source)
	if err != nil {
		debuglog.Errorf("failed to load catalog: %v", err)
		return []Entry{}, err
	}
	return entries, nil
}

package catalog

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format is the encoding of a catalog file.
type Format int

const (
	FormatJSON Format = iota
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "json"
	}
}

// FormatFor picks the format from the source's extension. URLs are
// judged by their path, so query strings do not matter. Anything
// unrecognized is treated as JSON.
func FormatFor(source string) Format {
	p := source
	if u, err := url.Parse(source); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// tomlCatalog wraps the entries since TOML has no top-level arrays.
type tomlCatalog struct {
	Entries []Entry `toml:"entries"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Decode parses a catalog. JSON and YAML catalogs are a top-level list of
// entries; TOML catalogs use [[entries]] tables.
func Decode(data []byte, format Format) ([]Entry, error) {
	var entries []Entry

	switch format {
	case FormatTOML:
		var doc tomlCatalog
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing toml catalog: %w", err)
		}
		entries = doc.Entries
	case FormatYAML:
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parsing yaml catalog: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("parsing json catalog: %w", err)
		}
	}

	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}

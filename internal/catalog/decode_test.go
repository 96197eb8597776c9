package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFor(t *testing.T) {
	tests := []struct {
		source string
		want   Format
	}{
		{"data.json", FormatJSON},
		{"/srv/catalog/data.toml", FormatTOML},
		{"catalog.YAML", FormatYAML},
		{"catalog.yml", FormatYAML},
		{"catalog", FormatJSON},
		{"https://example.org/catalog.toml?rev=3", FormatTOML},
		{"https://example.org/catalog.yaml#top", FormatYAML},
		{"https://example.org/api/catalog", FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFor(tt.source))
		})
	}
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "json", FormatJSON.String())
	assert.Equal(t, "toml", FormatTOML.String())
	assert.Equal(t, "yaml", FormatYAML.String())
}

func TestDecode_JSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "data.json"))
	require.NoError(t, err)

	entries, err := Decode(data, FormatJSON)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	want := Entry{
		Name:         "Ábaco",
		Description:  "Ferramenta de cálculo anterior a qualquer computador.",
		Tags:         []string{"história"},
		CreationYear: -2700,
		Popularity:   3.5,
		Link:         "https://pt.wikipedia.org/wiki/%C3%81baco",
	}
	if diff := cmp.Diff(want, entries[2]); diff != "" {
		t.Errorf("entry mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_FormatsAgree(t *testing.T) {
	tomlData, err := os.ReadFile(filepath.Join("testdata", "data.toml"))
	require.NoError(t, err)
	yamlData, err := os.ReadFile(filepath.Join("testdata", "data.yaml"))
	require.NoError(t, err)

	fromTOML, err := Decode(tomlData, FormatTOML)
	require.NoError(t, err)
	fromYAML, err := Decode(yamlData, FormatYAML)
	require.NoError(t, err)

	if diff := cmp.Diff(fromTOML, fromYAML); diff != "" {
		t.Errorf("toml and yaml catalogs differ (-toml +yaml):\n%s", diff)
	}
	require.Len(t, fromTOML, 2)
	assert.Equal(t, "Rust", fromTOML[1].Name)
	assert.InDelta(t, 80.5, fromTOML[1].Popularity, 0.001)
	assert.Equal(t, 2010, fromTOML[1].CreationYear)
}

func TestDecode_EmptyDocuments(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"json array", "[]", FormatJSON},
		{"json null", "null", FormatJSON},
		{"toml without entries", "", FormatTOML},
		{"yaml empty", "", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := Decode([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.NotNil(t, entries)
			assert.Empty(t, entries)
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		format Format
	}{
		{"json", `[{"nome": "Go"`, FormatJSON},
		{"json object", `{"nome": "Go"}`, FormatJSON},
		{"toml", "[[entries]\nnome = ", FormatTOML},
		{"yaml", "- nome: [unclosed", FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.format.String())
		})
	}
}

func TestDecode_MissingFieldsAreZero(t *testing.T) {
	entries, err := Decode([]byte(`[{"nome": "Sem dados"}]`), FormatJSON)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "Sem dados", entries[0].Name)
	assert.Empty(t, entries[0].Tags)
	assert.Zero(t, entries[0].CreationYear)
	assert.Zero(t, entries[0].Popularity)
}

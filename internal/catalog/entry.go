package catalog

// Entry is one technology in the catalog. The serialized keys match the
// catalog data files.
type Entry struct {
	Name         string   `json:"nome" toml:"nome" yaml:"nome"`
	Description  string   `json:"descricao" toml:"descricao" yaml:"descricao"`
	Tags         []string `json:"tags" toml:"tags" yaml:"tags"`
	CreationYear int      `json:"data_criacao" toml:"data_criacao" yaml:"data_criacao"`
	Popularity   float64  `json:"popularidade" toml:"popularidade" yaml:"popularidade"`
	Link         string   `json:"link" toml:"link" yaml:"link"`
}

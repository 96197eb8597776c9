package browser

import (
	_ "embed"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

//go:embed openers.toml
var openersTOML []byte

// OpenerDefinition describes how to hand a URL to one program.
type OpenerDefinition struct {
	Description string   `toml:"description"`
	Platforms   []string `toml:"platforms"`
	Args        []string `toml:"args,omitempty"`
	ArgsDarwin  []string `toml:"args_darwin,omitempty"`
	ArgsLinux   []string `toml:"args_linux,omitempty"`
	ArgsWindows []string `toml:"args_windows,omitempty"`
}

type openersFile struct {
	Openers map[string]OpenerDefinition `toml:"openers"`
}

// Registry knows the arguments each opener needs.
type Registry struct {
	openers map[string]OpenerDefinition
	goos    string
}

// NewRegistry loads the built-in definitions, then any overrides from
// userFiles that exist. Unreadable or malformed user files are skipped.
func NewRegistry(userFiles ...string) (*Registry, error) {
	var builtin openersFile
	if err := toml.Unmarshal(openersTOML, &builtin); err != nil {
		return nil, fmt.Errorf("parsing openers.toml: %w", err)
	}

	r := &Registry{openers: builtin.Openers, goos: runtime.GOOS}
	if r.openers == nil {
		r.openers = make(map[string]OpenerDefinition)
	}

	for _, path := range userFiles {
		r.merge(path)
	}
	return r, nil
}

// DefaultUserFile is where user opener definitions are looked up.
func DefaultUserFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "devtec", "openers.toml")
}

func (r *Registry) merge(path string) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var user openersFile
	if err := toml.Unmarshal(data, &user); err != nil {
		return
	}
	for name, def := range user.Openers {
		r.openers[name] = def
	}
}

// Definition returns the definition for name, if any.
func (r *Registry) Definition(name string) (OpenerDefinition, bool) {
	def, ok := r.openers[name]
	return def, ok
}

// Command builds the command that opens url with name. Unknown openers
// get the URL as their only argument.
func (r *Registry) Command(name, url string) (*exec.Cmd, error) {
	def, ok := r.openers[name]
	if !ok {
		return exec.Command(name, url), nil
	}

	if len(def.Platforms) > 0 && !slices.Contains(def.Platforms, r.goos) {
		return nil, fmt.Errorf("%s not supported on %s", name, r.goos)
	}

	args := append(slices.Clone(r.args(def)), url)
	return exec.Command(name, args...), nil
}

func (r *Registry) args(def OpenerDefinition) []string {
	switch r.goos {
	case "darwin":
		if len(def.ArgsDarwin) > 0 {
			return def.ArgsDarwin
		}
	case "linux":
		if len(def.ArgsLinux) > 0 {
			return def.ArgsLinux
		}
	case "windows":
		if len(def.ArgsWindows) > 0 {
			return def.ArgsWindows
		}
	}
	return def.Args
}

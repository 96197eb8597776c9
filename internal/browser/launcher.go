package browser

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/pders01/devtec/internal/config"
	"github.com/pders01/devtec/internal/debuglog"
	"github.com/pders01/devtec/internal/validation"
)

// ErrNoOpener is returned when none of the configured openers is installed.
var ErrNoOpener = errors.New("no application found to open links")

// Launcher opens entry links in the user's browser, in a separate
// process that devtec neither waits on nor talks to.
type Launcher struct {
	candidates    []string
	defaultOpener string
	registry      *Registry
	validator     *validation.LinkValidator

	lookPath func(string) (string, error)
	start    func(*exec.Cmd) error
}

func NewLauncher(cfg *config.Config) *Launcher {
	registry, err := NewRegistry(DefaultUserFile())
	if err != nil {
		debuglog.Warnf("opener definitions unavailable: %v", err)
		registry = &Registry{openers: make(map[string]OpenerDefinition), goos: runtime.GOOS}
	}

	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = cfg.Browser.Darwin
	case "windows":
		candidates = cfg.Browser.Windows
	default:
		candidates = cfg.Browser.Linux
	}

	return &Launcher{
		candidates:    candidates,
		defaultOpener: cfg.Browser.DefaultOpener,
		registry:      registry,
		validator:     validation.NewLinkValidator(),
		lookPath:      exec.LookPath,
		start:         startDetached,
	}
}

// Opener returns the first installed candidate, falling back to the
// configured default opener.
func (l *Launcher) Opener() (string, error) {
	for _, name := range l.candidates {
		if _, err := l.lookPath(name); err == nil {
			return name, nil
		}
	}
	if l.defaultOpener != "" {
		if _, err := l.lookPath(l.defaultOpener); err == nil {
			return l.defaultOpener, nil
		}
	}
	return "", ErrNoOpener
}

// Open validates rawURL and hands it to the opener. It returns as soon as
// the opener has started.
func (l *Launcher) Open(rawURL string) error {
	link, err := l.validator.ValidateAndNormalize(rawURL)
	if err != nil {
		return fmt.Errorf("invalid link: %w", err)
	}

	opener, err := l.Opener()
	if err != nil {
		return err
	}

	cmd, err := l.registry.Command(opener, link)
	if err != nil {
		return err
	}

	if err := l.start(cmd); err != nil {
		return fmt.Errorf("failed to start %s: %w", opener, err)
	}

	debuglog.WithFields(map[string]interface{}{
		"opener": opener,
		"url":    link,
	}).Debugf("link opened")
	return nil
}

// startDetached starts cmd without attaching stdio and reaps it in the
// background.
func startDetached(cmd *exec.Cmd) error {
	cmd.Stdin, cmd.Stdout, cmd.Stderr = nil, nil, nil
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}

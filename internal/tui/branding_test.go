package tui

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/pders01/devtec/internal/config"
)

func TestShowBanner(t *testing.T) {
	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()

	ShowBanner("1.0.0-test")

	w.Close()
	os.Stdout = old
	out := <-outC

	if !strings.Contains(out, "Catálogo de tecnologias") {
		t.Errorf("Expected banner to contain the tagline, got: %s", out)
	}
	if !strings.Contains(out, "╔") || !strings.Contains(out, "╝") {
		t.Errorf("Expected banner to contain border characters, got: %s", out)
	}
	if !strings.Contains(out, "◆") {
		t.Errorf("Expected banner to contain separator symbols, got: %s", out)
	}
	if !strings.Contains(out, "v1.0.0-test") {
		t.Errorf("Expected banner to contain version 'v1.0.0-test', got: %s", out)
	}
}

func TestBannerDevVersion(t *testing.T) {
	out := Banner("dev")
	if strings.Contains(out, "vdev") {
		t.Errorf("dev builds should not get a version tag, got: %s", out)
	}

	out = Banner("v2.0.0")
	if !strings.Contains(out, "v2.0.0") || strings.Contains(out, "vv2.0.0") {
		t.Errorf("Expected an existing v prefix to be kept, got: %s", out)
	}
}

func TestGetCompactBanner(t *testing.T) {
	st := NewStyles(config.TestConfig().UI.Dark, 80)
	message := "Test message"
	result := GetCompactBanner(st, message)

	if !strings.Contains(result, message) {
		t.Errorf("Expected compact banner to contain '%s', got: %s", message, result)
	}
	if !strings.Contains(result, "█▀▄") {
		t.Errorf("Expected compact banner to contain logo elements, got: %s", result)
	}
}

func TestLogoConstants(t *testing.T) {
	if len(LogoLines) != 3 {
		t.Errorf("Expected 3 logo lines, got %d", len(LogoLines))
	}
	if len(BannerColors) != 5 {
		t.Errorf("Expected 5 banner colors, got %d", len(BannerColors))
	}
}

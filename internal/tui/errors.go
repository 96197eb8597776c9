package tui

import "fmt"

// wrapErr prefixes err with the action that failed, such as "abrir Go"
// or "tema", for display in the status bar. A nil err stays nil.
func wrapErr(action string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", action, err)
}

// Package errors defines the failure categories of an edition run.
//
// Configuration errors come from the catalogs, templates and run options.
// Artifact errors come from reading jars or writing outputs. Fetch errors come
// from downloading jars. A plugin with no release for a platform version is
// not an error at all and never reaches this package.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrConfig indicates invalid catalog, template or option input.
	ErrConfig = errors.New("configuration error")

	// ErrUnknownPlugin indicates a template names a plugin key missing from the catalog.
	ErrUnknownPlugin = fmt.Errorf("unknown plugin: %w", ErrConfig)

	// ErrArtifact indicates a jar could not be read or an output could not be written.
	ErrArtifact = errors.New("artifact error")

	// ErrFetch indicates a jar download failed.
	ErrFetch = errors.New("fetch error")
)

// Exit codes returned by the CLI per error category.
const (
	ExitGeneral  = 1
	ExitConfig   = 2
	ExitArtifact = 3
	ExitFetch    = 4
)

// DetailError carries the category, the offending key, file or path, and the
// underlying cause.
type DetailError struct {
	// Kind is one of the sentinel errors above.
	Kind error

	// Subject names the plugin key, edition key, file or path involved.
	Subject string

	// Message is the specific description.
	Message string

	// Cause is the underlying error (optional).
	Cause error
}

func (e *DetailError) Error() string {
	var b strings.Builder

	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	} else {
		b.WriteString("error")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Subject != "" && !strings.Contains(e.Message, e.Subject) {
		b.WriteString(" (")
		b.WriteString(e.Subject)
		b.WriteString(")")
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

// Unwrap exposes both the category and the cause to errors.Is and errors.As.
func (e *DetailError) Unwrap() []error {
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Cause != nil {
		out = append(out, e.Cause)
	}
	return out
}

// ExitCode maps the category to the process exit status.
func (e *DetailError) ExitCode() int {
	switch {
	case errors.Is(e.Kind, ErrConfig):
		return ExitConfig
	case errors.Is(e.Kind, ErrArtifact):
		return ExitArtifact
	case errors.Is(e.Kind, ErrFetch):
		return ExitFetch
	default:
		return ExitGeneral
	}
}

// NewConfigError creates a configuration error about subject.
func NewConfigError(subject, message string, cause error) error {
	return &DetailError{Kind: ErrConfig, Subject: subject, Message: message, Cause: cause}
}

// NewUnknownPluginError reports a plugin key required by an edition but absent
// from the plugin catalog.
func NewUnknownPluginError(key, edition string) error {
	message := fmt.Sprintf("plugin %q is not in the catalog", key)
	if edition != "" {
		message = fmt.Sprintf("plugin %q required by edition %q is not in the catalog", key, edition)
	}
	return &DetailError{Kind: ErrUnknownPlugin, Subject: key, Message: message}
}

// NewArtifactError creates an artifact I/O error about path.
func NewArtifactError(path, message string, cause error) error {
	return &DetailError{Kind: ErrArtifact, Subject: path, Message: message, Cause: cause}
}

// NewFetchError creates a download error about subject.
func NewFetchError(subject, message string, cause error) error {
	return &DetailError{Kind: ErrFetch, Subject: subject, Message: message, Cause: cause}
}

// ExitCode returns the exit status for any error, defaulting to ExitGeneral.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var detail *DetailError
	if errors.As(err, &detail) {
		return detail.ExitCode()
	}
	return ExitGeneral
}

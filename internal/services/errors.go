package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrScan marks a folder that could not be read; the load aborts and
	// prior session state is left untouched.
	ErrScan = errors.New("scan error")
	// ErrDecode marks a corrupt or unsupported image file; only the affected
	// record is left without a raster.
	ErrDecode = errors.New("decode error")
	// ErrTagWrite marks a failed color-label write; the in-memory status
	// still updates and the tag store is allowed to fall out of sync.
	ErrTagWrite = errors.New("tag write error")
	// ErrValidation marks rejected user input (bad folder path, bad command).
	ErrValidation = errors.New("validation error")
	// ErrConfiguration marks an unusable configuration file.
	ErrConfiguration = errors.New("configuration error")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrValidation
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// BestEffort reports whether err is one the session tolerates without
// interrupting the workflow: decode and tag-write failures are recorded and
// surfaced but never abort an operation.
func BestEffort(err error) bool {
	return errors.Is(err, ErrDecode) || errors.Is(err, ErrTagWrite)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}

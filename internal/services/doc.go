// Package services defines the shared error vocabulary consumed by the
// acquisition pipeline, tag store, and CLI.
//
// Errors are tagged with sentinel markers so callers can classify a failure
// (scan vs decode vs tag write) without string matching, and Wrap attaches
// component/operation context so a surfaced message reads the same everywhere.
// Nothing in the triage core treats an error as fatal; the markers exist so
// the session can decide what to report and what to quietly record.
package services

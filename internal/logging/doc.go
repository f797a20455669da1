// Package logging assembles structured slog loggers shared across shortlist.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes small Attr helpers so components emit fields with the
// same shape everywhere. A no-op logger is available for tests and wiring
// code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup.
package logging

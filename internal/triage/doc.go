// Package triage wires the tournament engine to the acquisition pipeline and
// owns the coordination discipline between them.
//
// A Session serializes every engine mutation behind one mutex and drains
// pipeline results on a single goroutine, so no operation ever observes a
// half-applied transition and worker decodes never touch engine state
// directly. Completed previews pass the pipeline's staleness check before any
// raster field is updated.
//
// A per-folder file lock stops two shortlist processes from rewriting the
// same folder's color labels concurrently.
package triage

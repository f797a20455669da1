// Package tags reads and writes the durable color label attached to each
// photo file.
//
// Labels live in an extended attribute next to the file itself, so they
// survive renames and are visible to other tools that understand the same
// vocabulary. The store is deliberately forgiving: a missing attribute or an
// unsupported filesystem reads as "no label", and callers treat writes as
// best-effort telemetry rather than a source of truth.
package tags

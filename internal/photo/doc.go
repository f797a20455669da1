// Package photo holds the data model for a triage session: individual photo
// records, the ordered library that owns them, and the elimination arenas that
// reference them.
//
// The library is the single owner of every Record. Arenas store record IDs
// rather than copies, so a status mutation performed through the library is
// visible from every arena that references the photo. Nothing in this package
// enforces tournament rules; that is the engine's job.
package photo

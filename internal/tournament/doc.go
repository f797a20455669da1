// Package tournament implements the elimination engine at the heart of a
// triage session.
//
// The engine owns the photo library, the cursor, and the stack of arenas. Its
// four operations (challenge, finalize, reject, navigate) are synchronous and
// must be serialized by the caller; the engine itself takes no locks. Every
// operation that changes what the user should be looking at emits explicit
// fetch requests, which the acquisition pipeline consumes, keeping the engine
// free of any rendering or decoding concern.
//
// History is strictly append-only: no operation removes a photo from the
// library, deletes an arena, or shrinks a displaced list.
package tournament

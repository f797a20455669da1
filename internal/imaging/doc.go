// Package imaging wraps image decoding behind one primitive parameterized by
// target size.
//
// Thumbnails and full previews run through the same Decode path so color and
// scaling behavior never diverge between the two; only the target edge
// differs. Decode cost scales with source resolution, which is why thumbnails
// use a much smaller edge than previews.
package imaging

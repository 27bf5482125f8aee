// Package crypto exposes the hashing used to identify puzzle inputs.
//
// Contents
//
//   - BLAKE2b-256 input digests, truncated for display and store keys (Digest)
//   - Digest comparison that ignores case and surrounding space (SameDigest)
//
// # Notes
//
// Digests identify an input file's contents, not its path: renaming or moving
// an input keeps its recorded answers.
package crypto

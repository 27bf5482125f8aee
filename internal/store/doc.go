// Package store provides file-based persistence for recorded puzzle answers.
//
// AnswerFileStore implements domain.AnswerStore, serialising records as JSON
// under the configured home directory. Writes go through a temp file and a
// rename so a crash never leaves a half-written journal. All methods are
// concurrency-safe via internal locking.
package store

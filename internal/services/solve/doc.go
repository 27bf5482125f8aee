// Package solve runs puzzles against input files and their embedded examples.
//
// Each run reads the input, digests it, solves it and compares the answers with
// any record stored for the same digest, so a changed solver that starts
// producing different answers for an already-solved input is reported as a
// mismatch. SolveAll fans days out over a bounded errgroup.
package solve

// Package commands defines the aoc CLI and wires dependencies for subcommands.
//
// Commands
//
//   - solve    Solve one day from its input file
//   - check    Run the embedded examples
//   - all      Solve every day from the default input files
//   - list     List the solved days
//   - answers  List recorded answers
//   - digest   Print the digest identifying an input file
//
// # Implementation
//
// The root command loads configuration and builds the dependency graph
// (logger, answer store, catalog, solve service) before any subcommand runs,
// so handlers share one app wiring. Answers go to stdout; logs and errors go
// to stderr.
package commands

// Package domain defines the types and contracts shared by the CLI, the
// services and the answer store. It contains plain types and interfaces only;
// the day solutions keep their own parsed structures private to each package.
package domain

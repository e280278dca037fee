// Package toolchain wraps the external programs a scaffolded project is
// bootstrapped with: a git repository via go-git, and a Python virtual
// environment via the configured interpreter. It also probes the interpreter
// version for the doctor command.
package toolchain

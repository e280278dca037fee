// Package cli defines the Cobra command tree for the pyforge CLI. Each file
// in this package registers one top-level command (create, templates, doctor,
// etc.) with the root command. Command implementations delegate to internal
// packages for business logic and only handle flag parsing, output formatting
// and operator interaction.
package cli

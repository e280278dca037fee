// Package doctor checks that the host can build the projects pyforge
// generates: a supported operating system, a recent enough Python
// interpreter and a git binary.
package doctor

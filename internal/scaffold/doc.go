// Package scaffold materializes a template descriptor on disk. It creates the
// project root (refusing to touch an existing one), the requirements
// subdirectory and the empty placeholder files a template declares. Nothing is
// rolled back: a failure partway leaves earlier files in place.
package scaffold

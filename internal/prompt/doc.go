// Package prompt is the interactive selection collaborator. Selectors return
// a typed Selection, either Cancelled or Selected, which callers consume with
// a type switch. SurveySelector drives a terminal UI; MenuSelector reads
// numbered answers from any reader and serves non-interactive input.
package prompt

// Package template discovers, loads and parses project templates.
//
// A Store lists the template files found in the templates location and loads
// one by identifier. Parse turns the raw YAML (or JSON) document into an
// immutable Descriptor after validating its shape against an embedded JSON
// schema: files, subdir_files and services must be lists of strings, and config
// must be present. Service names are not checked here; the dispatcher decides
// what it supports.
package template

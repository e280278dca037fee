// Package emit writes the configuration files requested by services during
// dispatch. Each recorded need maps to at most one file in the project root;
// needs without a writer are reported and skipped.
package emit

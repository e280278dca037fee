// Package pipeline runs a project generation end to end. The template path
// loads and parses a descriptor from the Template Store; the manual path uses
// a fixed descriptor and asks the operator for services. Both then
// materialize the tree, dispatch services and emit configuration, in that
// order, stopping at the first fatal error without rolling back.
package pipeline

// Package service defines the closed vocabulary of project services and the
// dispatcher that runs them against a freshly materialized project root.
//
// Unknown names coming from a template are reported and skipped. Names the
// vocabulary knows but pyforge deliberately does not implement (github,
// setup.cfg) stop the run with ErrUnsupportedService.
package service

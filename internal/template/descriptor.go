package template

import "slices"

// Descriptor is the parsed shape of a template. It is never mutated after
// construction; accessors hand out copies.
type Descriptor struct {
	files       []string
	subdirFiles []string
	services    []string
	config      any
}

// NewDescriptor builds a Descriptor from already-validated parts.
func NewDescriptor(files, subdirFiles, services []string, config any) *Descriptor {
	return &Descriptor{
		files:       slices.Clone(files),
		subdirFiles: slices.Clone(subdirFiles),
		services:    slices.Clone(services),
		config:      config,
	}
}

// Files returns the base file paths, relative to the project root.
func (d *Descriptor) Files() []string { return slices.Clone(d.files) }

// SubdirFiles returns the file paths created under the requirements subdirectory.
func (d *Descriptor) SubdirFiles() []string { return slices.Clone(d.subdirFiles) }

// Services returns the declared service names in declaration order.
func (d *Descriptor) Services() []string { return slices.Clone(d.services) }

// Config returns the opaque config value declared by the template.
// It is forwarded to the config emitter but not interpreted.
func (d *Descriptor) Config() any { return d.config }

// document mirrors the on-disk template format.
type document struct {
	Name        string   `yaml:"name,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Files       []string `yaml:"files"`
	SubdirFiles []string `yaml:"subdir_files"`
	Services    []string `yaml:"services"`
	Config      any      `yaml:"config"`
}

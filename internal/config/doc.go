// Package config manages user-level settings stored at ~/.pyforge/config.yaml.
// Values can be overridden with PYFORGE_* environment variables. It exposes the
// templates location, the requirements subdirectory name, the Python interpreter
// and the debug switch as a typed Settings snapshot.
package config

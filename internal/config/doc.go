// Package config loads the runtime options for analysis runs from defaults,
// an optional YAML file, and FINALYZER_* environment variables, with the
// environment taking precedence over the file.
package config

// Package config loads the tool configuration and expression documents.
//
// Tool configuration is layered with koanf: the embedded defaults, then the
// user file at $XDG_CONFIG_HOME/itemexpr/config.toml, then ITEMEXPR_*
// environment variables (ITEMEXPR_LOG_VERBOSITY=2 sets log.verbosity).
//
// Expression documents are TOML or YAML files. A selector "FILE:path" picks
// the expression at a key path inside the file, so one file can hold many
// named expressions.
package config

// Package core holds the configuration and numeric helpers shared by the
// synthesis and file-format packages.
//
// Sampling rates are passed per instance through [ProcessorOption] values;
// there is no package-level mutable state.
package core

// Package types defines the Store interface, the Config and User types,
// and the standard errors shared across the saltuser library.
package types

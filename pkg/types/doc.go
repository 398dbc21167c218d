// Package types defines the Record entity, the storage Backend interface,
// configuration, and the standard errors shared by the roster store, its
// storage backends, and the CLI.
package types

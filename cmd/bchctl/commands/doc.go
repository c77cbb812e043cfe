// Package commands implements the bchctl command line: encoding payloads,
// decoding received words, printing syndromes and serving the same operations
// over HTTP.
package commands

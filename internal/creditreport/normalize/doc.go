// Package normalize builds the canonical credit profile from decoded bureau
// payloads.
//
// Everything here is pure: no I/O, no context.Context, no clock reads. The
// caller supplies "now", which is only used as the fallback for required dates
// the bureau left missing or unparseable. Given the same input and the same
// now, every function returns identical output, so callers may run them
// concurrently without coordination.
package normalize

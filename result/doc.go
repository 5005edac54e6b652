// Package result builds the keyed status records emitted by health probes.
// A record maps exactly one check key to a detail object whose "status" tag
// is always "up" or "down", regardless of any caller-supplied extras. See
// ExampleNew and ExampleStatus_JSON for quick-start patterns.
package result

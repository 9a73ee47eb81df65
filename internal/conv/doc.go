// Package conv collects tiny helper functions that are not part of the public API
// but aid internal conversions.
//
// Bridge handlers receive their arguments as an ordered list of JSON-compatible
// values; the helpers here pick positional arguments out of that list and coerce
// them into plain Go types, reporting ERR_INVALID_ARGUMENT on a shape mismatch.
package conv

// Package example contains self-contained snippets that demonstrate how to
// build a bridge module and serve it to a host.
//
// The examples can be executed with `go test` and cover a custom method table
// as well as the CloudStore module over a local file container.
package example

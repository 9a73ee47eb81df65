// Package server exposes a bridge module to a scripting host over JSON-RPC 2.0.
//
// Requests carry the method name and a positional parameter array; each request
// is dispatched through the module and answered once its completion settles.
// Module events are forwarded to the host as notifications while the host
// observes them (startObserving / stopObserving notifications).
//
// Callers typically construct a server via `server.New` and expose it over stdio:
//
//	s, _ := server.New(module, server.WithEmitter(module.Emitter()))
//	log.Fatal(s.Stdio(ctx).ListenAndServe())
package server

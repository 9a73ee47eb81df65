// Package bridge implements a native bridge module: a named set of methods
// exposed to a scripting host through a promise-style calling convention.
//
// A Dispatcher holds the method table built at construction time and runs each
// invocation on its own goroutine. Every invocation ends with exactly one call
// to Completion.Resolve or Completion.Reject; failures are normalized into an
// *Error carrying a stable code so that nothing unstructured crosses the host
// boundary.
//
// Example:
//
//	d, err := bridge.New("CloudStore", []bridge.Registration{
//		{Name: "ping", Handler: bridge.HandlerFunc(func(ctx context.Context, args []any) (any, error) {
//			return "pong", nil
//		})},
//	})
//	if err != nil {
//		return err
//	}
//	promise := bridge.NewPromise()
//	_ = d.Invoke(ctx, "ping", nil, promise)
//	value, err := promise.Await(ctx)
package bridge

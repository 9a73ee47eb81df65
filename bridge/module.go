package bridge

import "context"

// Module is a named unit exposing native capabilities to a scripting host.
type Module interface {
	Name() string
	Invoke(ctx context.Context, method string, args []any, completion Completion) error
}

// Handler performs the work for a registered method. Args is the ordered list
// of JSON-compatible values supplied by the caller.
type Handler interface {
	Handle(ctx context.Context, args []any) (any, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, args []any) (any, error)

// Handle calls f(ctx, args)
func (f HandlerFunc) Handle(ctx context.Context, args []any) (any, error) {
	return f(ctx, args)
}

// Registration binds a method name to its handler.
type Registration struct {
	Name    string
	Handler Handler
}

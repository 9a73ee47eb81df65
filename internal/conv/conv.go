package conv

import (
	"fmt"
	"strconv"

	"github.com/viant/cloudbridge/schema"
)

// ArgumentError reports a missing or mistyped positional argument.
type ArgumentError struct {
	Index   int
	Name    string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %v (%v): %v", e.Index, e.Name, e.Message)
}

// Reason returns ERR_INVALID_ARGUMENT
func (e *ArgumentError) Reason() string {
	return schema.ReasonInvalidArgument
}

// String returns a required string argument.
func String(args []any, index int, name string) (string, error) {
	if index >= len(args) || args[index] == nil {
		return "", &ArgumentError{Index: index, Name: name, Message: "is required"}
	}
	ret, ok := args[index].(string)
	if !ok {
		return "", &ArgumentError{Index: index, Name: name, Message: fmt.Sprintf("expected string, but had %T", args[index])}
	}
	return ret, nil
}

// Options returns an optional object argument.
func Options(args []any, index int, name string) (map[string]any, error) {
	if index >= len(args) || args[index] == nil {
		return map[string]any{}, nil
	}
	ret, ok := args[index].(map[string]any)
	if !ok {
		return nil, &ArgumentError{Index: index, Name: name, Message: fmt.Sprintf("expected object, but had %T", args[index])}
	}
	return ret, nil
}

// AsBool coerces value to bool; unsupported values are false.
func AsBool(value any) bool {
	switch actual := value.(type) {
	case bool:
		return actual
	case string:
		ret, _ := strconv.ParseBool(actual)
		return ret
	case float64:
		return actual != 0
	case int:
		return actual != 0
	}
	return false
}

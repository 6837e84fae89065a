package types

import "context"

type executionContextKey string

// ExecutionContextKey execution context
var ExecutionContextKey = executionContextKey("execution-context")

// EnsureExecutionContext returns ctx carrying an execution value map with the
// supplied key/value pairs added.
func EnsureExecutionContext(ctx context.Context, pairs ...string) context.Context {
	v := ctx.Value(ExecutionContextKey)
	if v == nil {
		ctx = context.WithValue(ctx, ExecutionContextKey, map[string]string{})
	}
	values := ctx.Value(ExecutionContextKey).(map[string]string)
	for i := 0; i+1 < len(pairs); i += 2 {
		values[pairs[i]] = pairs[i+1]
	}
	return ctx
}

// ExecutionValues returns a copy of the execution values carried by ctx.
func ExecutionValues(ctx context.Context) map[string]string {
	result := map[string]string{}
	values, _ := ctx.Value(ExecutionContextKey).(map[string]string)
	for k, v := range values {
		result[k] = v
	}
	return result
}

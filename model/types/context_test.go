package types

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureExecutionContext(t *testing.T) {
	ctx := EnsureExecutionContext(context.Background(), "runID", "r1")
	ctx = EnsureExecutionContext(ctx, "format", "unified", "dangling")
	values := ExecutionValues(ctx)
	assert.Equal(t, map[string]string{"runID": "r1", "format": "unified"}, values)
	values["runID"] = "changed"
	assert.Equal(t, "r1", ExecutionValues(ctx)["runID"])
	assert.Empty(t, ExecutionValues(context.Background()))
}

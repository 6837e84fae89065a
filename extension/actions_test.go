package extension

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/textpatch/model/types"
)

type echoService struct{}

func (echoService) Name() string { return "test/echo" }

func (echoService) Methods() types.Signatures {
	return types.Signatures{{Name: "echo", Input: reflect.TypeOf(""), Output: reflect.TypeOf(new(string))}}
}

func (echoService) Method(name string) (types.Executable, error) {
	if name != "echo" {
		return nil, types.NewMethodNotFoundError(name)
	}
	return func(_ context.Context, in, out interface{}) error {
		text, ok := in.(string)
		if !ok {
			return types.NewInvalidInputError(in)
		}
		*(out.(*string)) = text
		return nil
	}, nil
}

func TestActions(t *testing.T) {
	actions := NewActions(echoService{}, nil)
	assert.Equal(t, []string{"test/echo"}, actions.Names())
	assert.NotNil(t, actions.Lookup("test/echo"))
	assert.Nil(t, actions.Lookup("system/patch"))

	testCases := []struct {
		name      string
		service   string
		method    string
		input     interface{}
		expect    string
		expectErr bool
	}{
		{name: "echo", service: "test/echo", method: "echo", input: "hello", expect: "hello"},
		{name: "unknown service", service: "system/patch", method: "apply", input: "x", expectErr: true},
		{name: "unknown method", service: "test/echo", method: "shout", input: "x", expectErr: true},
		{name: "invalid input", service: "test/echo", method: "echo", input: 1, expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var output string
			err := actions.Run(context.Background(), tc.service, tc.method, tc.input, &output)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, output)
		})
	}
}

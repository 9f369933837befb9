package js_test

import (
	"testing"

	"bennypowers.dev/swatchnorm/internal/parser/js"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCall(t *testing.T) {
	parser := js.AcquireParser()
	defer js.ReleaseParser(parser)

	t.Run("selectColor with three arguments", func(t *testing.T) {
		call := parser.Call("selectColor('#FF0000', 'Red', true)")
		require.NotNil(t, call)

		assert.Equal(t, "selectColor", call.Callee)
		require.Len(t, call.Arguments, 3)
		assert.Equal(t, js.Argument{Kind: "string", Raw: "'#FF0000'", Value: "#FF0000"}, call.Arguments[0])
		assert.Equal(t, "Red", call.Arguments[1].Value)
		assert.Equal(t, "true", call.Arguments[2].Kind)
		assert.Equal(t, "true", call.Arguments[2].Value)
	})

	t.Run("extra argument", func(t *testing.T) {
		call := parser.Call("selectColor('#FF0000', 'Red', true, 1)")
		require.NotNil(t, call)

		assert.Len(t, call.Arguments, 4)
		assert.Equal(t, "number", call.Arguments[3].Kind)
	})

	t.Run("member callee", func(t *testing.T) {
		call := parser.Call("picker.select('#000')")
		require.NotNil(t, call)

		assert.Equal(t, "picker.select", call.Callee)
		assert.Len(t, call.Arguments, 1)
	})

	t.Run("no arguments", func(t *testing.T) {
		call := parser.Call("reset()")
		require.NotNil(t, call)

		assert.Equal(t, "reset", call.Callee)
		assert.Empty(t, call.Arguments)
	})

	t.Run("no call", func(t *testing.T) {
		assert.Nil(t, parser.Call("selected = true"))
	})

	t.Run("syntax error", func(t *testing.T) {
		assert.Nil(t, parser.Call("selectColor('#FF0000', 'Red'"))
	})
}

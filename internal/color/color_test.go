package color_test

import (
	"testing"

	"bennypowers.dev/swatchnorm/internal/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{name: "uppercase hex", value: "#FF0000", want: "#ff0000"},
		{name: "short hex", value: "#0f0", want: "#00ff00"},
		{name: "surrounding whitespace", value: "  #0000FF ", want: "#0000ff"},
		{name: "named color", value: "navy", want: "#000080"},
		{name: "rgb function", value: "rgb(255, 255, 0)", want: "#ffff00"},
		{name: "transparent black", value: "rgba(0, 0, 0, 0)", want: "#00000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := color.Hex(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsNonColors(t *testing.T) {
	for _, value := range []string{"", "   ", "linear-gradient(#000, #fff)", "url(swatch.png)", "#GGGGGG"} {
		t.Run(value, func(t *testing.T) {
			_, err := color.Parse(value)
			assert.Error(t, err)
		})
	}
}

func TestEqual(t *testing.T) {
	t.Run("same color in different notations", func(t *testing.T) {
		same, err := color.Equal("#FF0000", "red")
		require.NoError(t, err)
		assert.True(t, same)
	})

	t.Run("different colors", func(t *testing.T) {
		same, err := color.Equal("#FF0000", "#FF0001")
		require.NoError(t, err)
		assert.False(t, same)
	})

	t.Run("unparseable side", func(t *testing.T) {
		_, err := color.Equal("#FF0000", "not-a-color")
		assert.Error(t, err)
	})
}

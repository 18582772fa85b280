package digest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	// BLAKE3 of the empty input.
	const empty = "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262"
	assert.Equal(t, empty, Sum(nil).String())

	a := Sum([]byte("MegaHALv8"))
	b := Sum([]byte("MegaHALv8"))
	c := Sum([]byte("MegaHALv9"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestFormatting(t *testing.T) {
	d := Sum([]byte("brain"))
	assert.Len(t, d.String(), Size*2)
	assert.Len(t, d.Short(), 16)
	assert.True(t, strings.HasPrefix(d.String(), d.Short()))

	text, err := d.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, d.String(), string(text))
}

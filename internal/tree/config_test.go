package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestParseState(t *testing.T) {
	s, err := ParseState(" Formed ")
	require.NoError(t, err)
	assert.Equal(t, Formed, s)

	s, err = ParseState("CHAOS")
	require.NoError(t, err)
	assert.Equal(t, Chaos, s)
	assert.Equal(t, Formed, s.Toggle())

	_, err = ParseState("molten")
	assert.Error(t, err)
}

func TestParseTopperMode(t *testing.T) {
	m, err := ParseTopperMode("progress")
	require.NoError(t, err)
	assert.Equal(t, TopperProgress, m)
	assert.Equal(t, "progress", m.String())

	_, err = ParseTopperMode("sometimes")
	assert.Error(t, err)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#D4AF37")
	require.NoError(t, err)
	r, g, b := c.RGBA8()
	assert.Equal(t, []uint8{0xD4, 0xAF, 0x37}, []uint8{r, g, b})
	assert.Equal(t, "#d4af37", c.Hex())

	_, err = ParseHex("gold")
	assert.Error(t, err)
}

package util

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D}

func TestSniffContentType(t *testing.T) {
	r := bytes.NewReader(pngHeader)
	mime, err := SniffContentType(r)
	require.NoError(t, err)
	assert.Equal(t, "image/png", mime)

	// reader 回到开头
	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, rest)

	mime, err = SniffContentType(strings.NewReader("plain text"))
	require.NoError(t, err)
	assert.Equal(t, unknownMimeType, mime)
}

type sample struct {
	Text string   `validate:"min=1,max=5"`
	Ids  []uint64 `validate:"max=2"`
}

func TestValidateDTO(t *testing.T) {
	assert.NoError(t, ValidateDTO(&sample{Text: "abc"}))
	assert.Error(t, ValidateDTO(&sample{Text: ""}))
	assert.Error(t, ValidateDTO(&sample{Text: "toolong"}))
	assert.Error(t, ValidateDTO(&sample{Text: "ok", Ids: []uint64{1, 2, 3}}))
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("42")
	assert.True(t, ok)
	assert.Equal(t, uint64(42), id)

	for _, raw := range []string{"", "0", "-1", "abc"} {
		_, ok = ParseID(raw)
		assert.False(t, ok, raw)
	}
}

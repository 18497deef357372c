package mapfile

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString_LeadingCommentDoesNotAffectResult(t *testing.T) {
	plain, err := FromString(`{ "k" "v" }`)
	require.NoError(t, err)

	commented, err := FromString("// c\n{ \"k\" \"v\" }")
	require.NoError(t, err)

	assert.Equal(t, plain, commented)
	require.Len(t, plain.Entities, 1)
	assert.Equal(t, map[string]string{"k": "v"}, plain.Entities[0].Properties)
	assert.Empty(t, plain.Entities[0].Brushes)
}

func TestFromStringFullDocument(t *testing.T) {
	src := `// Game: Eternal Combat
// Format: Valve
// entity 0
{
"mapversion" "220"
"classname" "worldspawn"
// brush 0
{
( -128 -128 -16 ) ( -128 -126 -16 ) ( -128 -128 -15 ) __TB_empty [ 0 -0.5 0 0 ] [ 0 0 -1 0 ] 0 1 1
( -128 -128 -16 ) ( -128 -126 -16 ) ( -128 -128 -15 ) __TB_empty [ 0 -0.5 0 0 ] [ 0 0 -1 0 ] 0 1 1
}
}
// entity 1
{
"classname" "info_player_start"
"origin" "0 0 44"
}
`
	m, err := FromString(src)
	require.NoError(t, err)
	require.Len(t, m.Entities, 2)

	assert.Equal(t, "worldspawn", m.Entities[0].Properties["classname"])
	require.Len(t, m.Entities[0].Brushes, 1)
	require.Len(t, m.Entities[0].Brushes[0].Faces, 2)

	assert.Equal(t, "info_player_start", m.Entities[1].Properties["classname"])
	assert.Empty(t, m.Entities[1].Brushes)

	ws, ok := m.Worldspawn()
	require.True(t, ok)
	assert.Equal(t, "220", ws.Properties["mapversion"])
}

func TestFromStringTrailingGarbageIsLenient(t *testing.T) {
	m, err := FromString(`{ "k" "v" } not a valid entity`)
	require.NoError(t, err)
	require.Len(t, m.Entities, 1)
}

func TestFromStringMalformedEntityErrors(t *testing.T) {
	_, err := FromString(`{ "k" "v" `)
	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
}

func TestFromBytesRejectsInvalidUTF8(t *testing.T) {
	_, err := FromBytes([]byte{0xff, 0xfe, 0xfd})
	require.Error(t, err)
	var uerr *Utf8Error
	require.True(t, errors.As(err, &uerr))
}

func TestFromReaderMatchesFromString(t *testing.T) {
	src := `{ "classname" "worldspawn" }`
	want, err := FromString(src)
	require.NoError(t, err)

	got, err := FromReader(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}

func TestFromReaderWrapsIOError(t *testing.T) {
	_, err := FromReader(brokenReader{})
	require.Error(t, err)
	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
}

func TestFromBytesEmptyDocument(t *testing.T) {
	m, err := FromBytes(bytes.TrimSpace([]byte("  \n\t ")))
	require.NoError(t, err)
	assert.Empty(t, m.Entities)
}

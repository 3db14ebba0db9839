package sip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsToken(t *testing.T) {
	assert.True(t, isToken("INVITE"))
	assert.True(t, isToken("a.b-c!d%e*f_g+h`i'j~k"))
	assert.False(t, isToken(""))
	assert.False(t, isToken("foo bar"))
	assert.False(t, isToken("foo;bar"))
}

func TestPercentEscapeRoundTrip(t *testing.T) {
	escaped := percentEscape("a b", isUserAllowed)
	assert.Equal(t, "a%20b", escaped)
	unescaped, err := percentUnescape(escaped)
	require.NoError(t, err)
	assert.Equal(t, "a b", unescaped)
}

func TestPercentUnescapeNoEscapes(t *testing.T) {
	s, err := percentUnescape("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", s)
}

func TestPercentUnescapeTruncatedEscape(t *testing.T) {
	_, err := percentUnescape("bad%2")
	require.Error(t, err)
}

func TestSplitHCOLON(t *testing.T) {
	name, _, value, ok := splitHCOLON("Via:   SIP/2.0/UDP pc33.atlanta.com")
	require.True(t, ok)
	assert.Equal(t, "Via", name)
	assert.Equal(t, "SIP/2.0/UDP pc33.atlanta.com", value)
}

func TestSplitHCOLONNoColon(t *testing.T) {
	_, _, _, ok := splitHCOLON("not a header line")
	assert.False(t, ok)
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	q := quote(`hello "world"`)
	assert.Equal(t, `"hello \"world\""`, q)
	back, ok := unquote(q)
	require.True(t, ok)
	assert.Equal(t, `hello "world"`, back)
}

func TestUnfoldHeaderLinesCollapsesContinuation(t *testing.T) {
	block := "Subject: I know\r\n you hear it in\r\n  my voice"
	lines := unfoldHeaderLines(block)
	require.Len(t, lines, 1)
	assert.Equal(t, "Subject: I know you hear it in my voice", lines[0])
}

func TestSplitCommentNested(t *testing.T) {
	inner, n, err := splitComment("(outer (inner) done)")
	require.NoError(t, err)
	assert.Equal(t, "outer (inner) done", inner)
	assert.Equal(t, len("(outer (inner) done)"), n)
}

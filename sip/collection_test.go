package sip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValueCollectionEqualPermutationInvariant(t *testing.T) {
	a := NewValueCollection(", ", genericToken("foo"), genericToken("bar"))
	b := NewValueCollection(", ", genericToken("bar"), genericToken("foo"))
	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestValueCollectionEqualRequiresSameLength(t *testing.T) {
	a := NewValueCollection(", ", genericToken("foo"))
	b := NewValueCollection(", ", genericToken("foo"), genericToken("bar"))
	assert.False(t, a.Equal(b))
}

func TestValueCollectionStringWriteUsesSeparator(t *testing.T) {
	c := NewValueCollection(", ", genericToken("foo"), genericToken("bar"))
	assert.Equal(t, "foo, bar", c.String())
}

func TestValueCollectionEqualIsCaseInsensitiveViaElement(t *testing.T) {
	a := NewValueCollection(", ", genericToken("INVITE"))
	b := NewValueCollection(", ", genericToken("invite"))
	assert.True(t, a.Equal(b))
}

package sortable_test

import (
	"testing"

	"github.com/amp-labs/amp-collections/sortable"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     sortable.Int
		expected int
	}{
		{name: "less", a: 1, b: 2, expected: -1},
		{name: "equal", a: 7, b: 7, expected: 0},
		{name: "greater", a: 9, b: -3, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, sortable.Compare(tt.a, tt.b))
		})
	}
}

func TestString_Ordering(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.String("apple").LessThan("banana"))
	assert.False(t, sortable.String("banana").LessThan("apple"))
	assert.True(t, sortable.String("kiwi").Equals("kiwi"))
	assert.Equal(t, 1, sortable.Compare[sortable.String]("b", "a"))
}

func TestByte_Ordering(t *testing.T) {
	t.Parallel()

	assert.True(t, sortable.Byte('a').LessThan('b'))
	assert.True(t, sortable.Byte('z').Equals('z'))
	assert.Equal(t, -1, sortable.Compare[sortable.Byte]('a', 'c'))
}

package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	assert.Equal(t, 42, ToInt("42"))
	assert.Equal(t, 0, ToInt(""))
	assert.Equal(t, 0, ToInt("ten"))
	assert.Equal(t, 7, ToInt(int64(7)))
	assert.Equal(t, 3, ToInt(3.9))
	assert.Equal(t, 12, ToInt([]byte("12")))
}

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "xyz", ToString([]byte("xyz")))
	assert.Equal(t, "5", ToString(5))
}

func TestToBool(t *testing.T) {
	for _, v := range []any{true, 1, "1", "true", "TRUE", []byte("true")} {
		assert.True(t, ToBool(v), "%v", v)
	}
	for _, v := range []any{false, 0, 2, "", "yes", 1.0} {
		assert.False(t, ToBool(v), "%v", v)
	}
}

type label string

func (l label) String() string { return "label:" + string(l) }

func TestToString_Stringer(t *testing.T) {
	assert.Equal(t, "label:x", ToString(label("x")))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Chair Red", "chair"))
	assert.True(t, ContainsFold("anything", ""))
	assert.False(t, ContainsFold("table", "chair"))
}

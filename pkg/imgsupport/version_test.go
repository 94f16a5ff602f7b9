package imgsupport_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/imgsupport/pkg/imgsupport"
)

func TestParseVersion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		offset   int
		expected imgsupport.Version
	}{
		{name: "major minor patch build", input: "91.0.4472.124", expected: imgsupport.V(91, 0)},
		{name: "major only", input: "16", expected: imgsupport.V(16, 0)},
		{name: "trailing dot", input: "16.", expected: imgsupport.V(16, 0)},
		{name: "dot without digits", input: "16.x", expected: imgsupport.V(16, 0)},
		{name: "minor", input: "14.1 Safari", expected: imgsupport.V(14, 1)},
		{name: "stops at space", input: "89 Gecko", expected: imgsupport.V(89, 0)},
		{name: "offset into string", input: "Firefox/93.0", offset: 8, expected: imgsupport.V(93, 0)},
		{name: "no digits", input: "abc"},
		{name: "leading dot", input: ".5"},
		{name: "leading space", input: " 91"},
		{name: "empty", input: ""},
		{name: "negative offset", input: "91", offset: -1},
		{name: "offset at end", input: "91", offset: 2},
		{name: "offset past end", input: "91", offset: 10},
		{name: "saturates major", input: strings.Repeat("9", 64), expected: imgsupport.V(imgsupport.MaxVersionComponent, 0)},
		{name: "saturates minor", input: "1." + strings.Repeat("7", 64), expected: imgsupport.V(1, imgsupport.MaxVersionComponent)},
		{name: "leading zeros", input: "007.01", expected: imgsupport.V(7, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := imgsupport.ParseVersion([]byte(tc.input), tc.offset)
			assert.Equal(t, tc.expected, got)
			assert.Equal(t, tc.expected.Valid(), got.Valid())
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	t.Parallel()
	var absent imgsupport.Version

	assert.Equal(t, 0, imgsupport.V(1, 2).Compare(imgsupport.V(1, 2)))
	assert.Equal(t, -1, imgsupport.V(1, 2).Compare(imgsupport.V(2, 0)))
	assert.Equal(t, 1, imgsupport.V(2, 0).Compare(imgsupport.V(1, 9)))
	assert.Equal(t, -1, imgsupport.V(16, 0).Compare(imgsupport.V(16, 1)))
	assert.Equal(t, 1, imgsupport.V(16, 4).Compare(imgsupport.V(16, 0)))
	assert.Equal(t, -1, absent.Compare(imgsupport.V(0, 0)))
	assert.Equal(t, 1, imgsupport.V(0, 0).Compare(absent))
	assert.Equal(t, 0, absent.Compare(absent))
}

func TestVersion_AtLeast(t *testing.T) {
	t.Parallel()
	var absent imgsupport.Version

	assert.True(t, imgsupport.V(85, 0).AtLeast(imgsupport.V(85, 0)))
	assert.True(t, imgsupport.V(85, 1).AtLeast(imgsupport.V(85, 0)))
	assert.False(t, imgsupport.V(84, 9).AtLeast(imgsupport.V(85, 0)))
	assert.False(t, absent.AtLeast(imgsupport.V(0, 0)))
	assert.False(t, absent.AtLeast(absent))
}

func TestVersion_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "91.0", imgsupport.V(91, 0).String())
	assert.Equal(t, "16.6", imgsupport.V(16, 6).String())
	assert.Empty(t, imgsupport.Version{}.String())
}

func TestV_Saturates(t *testing.T) {
	t.Parallel()
	v := imgsupport.V(1<<31, 1<<31)
	assert.Equal(t, uint32(imgsupport.MaxVersionComponent), v.Major)
	assert.Equal(t, uint32(imgsupport.MaxVersionComponent), v.Minor)
}

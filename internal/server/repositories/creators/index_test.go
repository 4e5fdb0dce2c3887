package creators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendID_DoesNotAlias(t *testing.T) {
	base := make([]string, 1, 4)
	base[0] = "a"

	x := appendID(base, "b")
	y := appendID(base, "c")

	assert.Equal(t, []string{"a", "b"}, x)
	assert.Equal(t, []string{"a", "c"}, y)
}

func TestRemoveID(t *testing.T) {
	tests := []struct {
		name   string
		ids    []string
		id     string
		want   []string
		wantOK bool
	}{
		{"middle", []string{"a", "b", "c"}, "b", []string{"a", "c"}, true},
		{"first", []string{"a", "b", "c"}, "a", []string{"b", "c"}, true},
		{"last", []string{"a", "b", "c"}, "c", []string{"a", "b"}, true},
		{"only", []string{"a"}, "a", []string{}, true},
		{"missing", []string{"a", "b"}, "z", []string{"a", "b"}, false},
		{"empty", nil, "a", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := removeID(tt.ids, tt.id)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeIDs_NilIsEmptyArray(t *testing.T) {
	b, err := encodeIDs(nil)
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	ids, err := decodeIDs([]byte(`["x","y"]`))
	assert.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, ids)

	_, err = decodeIDs([]byte(`{`))
	assert.ErrorContains(t, err, "decode document ids")
}

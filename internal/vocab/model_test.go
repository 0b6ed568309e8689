package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_Value(t *testing.T) {
	tests := []struct {
		name string
		list StringList
		want string
	}{
		{name: "nil encodes as an empty array", list: nil, want: "[]"},
		{name: "entries keep their order", list: StringList{"改札", "出口", "入口"}, want: `["改札","出口","入口"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.list.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestStringList_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    StringList
		wantErr bool
	}{
		{name: "bytes from postgres", src: []byte(`["a","b","c"]`), want: StringList{"a", "b", "c"}},
		{name: "string from sqlite", src: `["a"]`, want: StringList{"a"}},
		{name: "null column", src: nil, want: nil},
		{name: "unsupported type", src: 42, wantErr: true},
		{name: "corrupt payload", src: "[not json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list StringList
			err := list.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, list)
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	assert.True(t, StatusNew.Valid())
	assert.True(t, StatusReview.Valid())
	assert.True(t, StatusMastered.Valid())
	assert.False(t, Status("learned").Valid())
	assert.False(t, Status("").Valid())
}

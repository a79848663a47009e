// FILE: lixenwraith/optconfig/decode_test.go
package optconfig

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBool(t *testing.T) {
	tests := []struct {
		raw     any
		want    bool
		wantErr bool
	}{
		{"true", true, false},
		{"Yes", true, false},
		{" on ", true, false},
		{"1", true, false},
		{"false", false, false},
		{"NO", false, false},
		{"off", false, false},
		{"0", false, false},
		{"", false, false},
		{"t", true, false},
		{true, true, false},
		{int64(1), true, false},
		{"maybe", false, true},
		{nil, false, true},
	}

	for _, tt := range tests {
		got, err := decodeValue[bool](tt.raw)
		if tt.wantErr {
			assert.Error(t, err, "%#v", tt.raw)
			continue
		}
		require.NoError(t, err, "%#v", tt.raw)
		assert.Equal(t, tt.want, got, "%#v", tt.raw)
	}
}

func TestDecodeInt(t *testing.T) {
	tests := []struct {
		raw     any
		want    int64
		wantErr bool
	}{
		{"42", 42, false},
		{" -7 ", -7, false},
		{"2k", 2048, false},
		{"3M", 3 << 20, false},
		{"1g", 1 << 30, false},
		{int64(9), 9, false},
		{8, 8, false},
		{float64(16), 16, false},
		{json.Number("12"), 12, false},
		{json.Number("8.0"), 8, false},
		{"8.0", 8, false},
		{"1.0k", 1024, false},
		{json.Number("8.5"), 0, true},
		{"", 0, true},
		{"12x", 0, true},
		{"k", 0, true},
		{"9999999999g", 0, true},
		{2.5, 0, true},
		{nil, 0, true},
	}

	for _, tt := range tests {
		got, err := decodeValue[int64](tt.raw)
		if tt.wantErr {
			assert.Error(t, err, "%#v", tt.raw)
			continue
		}
		require.NoError(t, err, "%#v", tt.raw)
		assert.Equal(t, tt.want, got, "%#v", tt.raw)
	}
}

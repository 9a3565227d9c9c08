package rgb_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/boxkit/pkg/rgb"
)

func TestHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		color rgb.Color
		want  string
	}{
		{name: "mixed", color: rgb.New(200, 32, 97), want: "C82061"},
		{name: "zero padded", color: rgb.New(1, 2, 3), want: "010203"},
		{name: "black", color: rgb.Black, want: "000000"},
		{name: "white", color: rgb.White, want: "FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.color.Hex())
		})
	}
}

func TestParseHex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    rgb.Color
		wantErr bool
	}{
		{name: "uppercase", input: "C82061", want: rgb.New(200, 32, 97)},
		{name: "lowercase", input: "c82061", want: rgb.New(200, 32, 97)},
		{name: "white", input: "FFFFFF", want: rgb.White},
		{name: "too short", input: "C8206", wantErr: true},
		{name: "too long", input: "C820611", wantErr: true},
		{name: "with hash", input: "#C82061", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "not hex", input: "ZZ2061", wantErr: true},
		{name: "signed group", input: "+12061", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := rgb.ParseHex(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, rgb.ErrInvalidHex)
				assert.Contains(t, err.Error(), fmt.Sprintf("%q", tt.input))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHex_RoundTrip(t *testing.T) {
	t.Parallel()

	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 85 {
				c := rgb.New(r, g, b)
				got, err := rgb.ParseHex(c.Hex())
				require.NoError(t, err)
				require.Equal(t, c, got)
			}
		}
	}
}

func TestMustParseHex(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { rgb.MustParseHex("C82061") })
	assert.Panics(t, func() { rgb.MustParseHex("nope") })
}

func ExampleColor_Hex() {
	fmt.Println(rgb.New(200, 32, 97).Hex())
	// Output: C82061
}

func ExampleDistance() {
	a := rgb.New(255, 35, 194)
	b := rgb.MustParseHex("C82061")
	fmt.Println(rgb.Distance(a, b))
	// Output: 12443
}

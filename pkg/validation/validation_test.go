package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimAndValidate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		wantValid bool
	}{
		{name: "Plain", input: "London", expected: "London", wantValid: true},
		{name: "Padded", input: "  221B Baker Street \t", expected: "221B Baker Street", wantValid: true},
		{name: "Blank", input: "   ", expected: "", wantValid: false},
		{name: "Empty", input: "", expected: "", wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TrimAndValidate(tt.input)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.wantValid, ok)
			assert.Equal(t, tt.wantValid, IsNotEmpty(tt.input))
		})
	}
}

func TestHasControlCharacters(t *testing.T) {
	assert.False(t, HasControlCharacters("221B Baker Street, London"))
	assert.False(t, HasControlCharacters("São Paulo"))
	assert.True(t, HasControlCharacters("London\nParis"))
	assert.True(t, HasControlCharacters("bad\x00byte"))
}

func TestIsHTTPURL(t *testing.T) {
	assert.True(t, IsHTTPURL("https://api.weatherapi.com/v1"))
	assert.True(t, IsHTTPURL("http://localhost:9000"))
	assert.False(t, IsHTTPURL("ftp://example.com"))
	assert.False(t, IsHTTPURL("api.weatherapi.com"))
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain list", "Go,Rust,Python", []string{"Go", "Rust", "Python"}},
		{"whitespace trimmed", " Go , Rust ,  Python ", []string{"Go", "Rust", "Python"}},
		{"empty entries dropped", "Go,,Rust,", []string{"Go", "Rust"}},
		{"single entry", "Go", []string{"Go"}},
		{"empty input", "", []string{}},
		{"only commas", ",,,", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSkills(tt.input))
		})
	}
}

func TestEncodeSkills(t *testing.T) {
	assert.Equal(t, `["Go","Rust"]`, EncodeSkills([]string{"Go", "Rust"}))
	assert.Equal(t, `[]`, EncodeSkills(nil))
	assert.Equal(t, `[]`, EncodeSkills([]string{}))
}

func TestDecodeSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "Rust"}, DecodeSkills(`["Go","Rust"]`))
	assert.Equal(t, []string{}, DecodeSkills(""))
	assert.Equal(t, []string{}, DecodeSkills("not json"))
	assert.Equal(t, []string{}, DecodeSkills("null"))
}

func TestSkillsRoundTrip(t *testing.T) {
	parsed := ParseSkills("Go, Rust,  Python")
	stored := EncodeSkills(parsed)
	assert.Equal(t, parsed, DecodeSkills(stored))
}

package speech

import (
	"strings"
	"testing"

	"github.com/aymendh/edvox/internal/domain"
)

func TestSignedPercent(t *testing.T) {
	tests := []struct {
		mult float64
		want string
	}{
		{1.0, "+0%"},
		{1.15, "+15%"},
		{0.9, "-10%"},
		{0.75, "-25%"},
	}
	for _, tt := range tests {
		if got := signedPercent(tt.mult); got != tt.want {
			t.Errorf("signedPercent(%v) = %q, want %q", tt.mult, got, tt.want)
		}
	}
}

func TestBuildSSMLProsody(t *testing.T) {
	ssml := buildSSML("en-US-AvaNeural", "hello", domain.ProfileFor(domain.CategoryKeyword))

	for _, want := range []string{
		"name='en-US-AvaNeural'",
		"rate='-10%'",
		"pitch='-15%'",
		"volume='100'",
		">hello<",
	} {
		if !strings.Contains(ssml, want) {
			t.Errorf("ssml missing %q:\n%s", want, ssml)
		}
	}
}

func TestBuildSSMLRelativePitch(t *testing.T) {
	ssml := buildSSML("v", "gone", domain.DeletionProfile())

	if !strings.Contains(ssml, "pitch='-25%'") {
		t.Errorf("relative pitch not applied:\n%s", ssml)
	}
}

func TestBuildSSMLStripsPunctuationWhenDisabled(t *testing.T) {
	p := domain.DeletionProfile() // carries PunctuationNone
	ssml := buildSSML("v", "x.y();", p)

	if !strings.Contains(ssml, ">xy<") {
		t.Errorf("punctuation not stripped:\n%s", ssml)
	}
}

func TestBuildSSMLEscapesMarkup(t *testing.T) {
	ssml := buildSSML("v", "a < b", domain.DefaultProfile())

	if !strings.Contains(ssml, "a &lt; b") {
		t.Errorf("markup not escaped:\n%s", ssml)
	}
}

func TestStripPunctuation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"foo.bar();", "foobar"},
		{"a + b", "a  b"},
		{"plain words", "plain words"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := stripPunctuation(tt.in); got != tt.want {
			t.Errorf("stripPunctuation(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

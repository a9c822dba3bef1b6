package domain

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		tokenType string
		want      Category
	}{
		{"keyword", CategoryKeyword},
		{"keyword.control", CategoryKeyword},
		{"keyword.operator.assignment", CategoryKeyword},
		{"constant.numeric", CategoryConstant},
		{"constant.language", CategoryConstant},
		{"entity.name.function", CategoryEntity},
		{"storage.type", CategoryStorage},
		{"variable.parameter", CategoryVariable},
		{"text", CategoryPlain},
		{"comment", CategoryPlain},
		{"", CategoryPlain},
		{"keywordish", CategoryPlain},
	}

	for _, tt := range tests {
		t.Run(tt.tokenType, func(t *testing.T) {
			if got := ParseCategory(tt.tokenType); got != tt.want {
				t.Fatalf("ParseCategory(%q) = %s, want %s", tt.tokenType, got, tt.want)
			}
		})
	}
}

func TestProfileForType(t *testing.T) {
	if got := ProfileForType("keyword.control"); got != keywordProfile {
		t.Fatalf("keyword.control got %+v, want keyword profile", got)
	}
	if got := ProfileForType("text"); got != defaultProfile {
		t.Fatalf("text got %+v, want default profile", got)
	}
	if got := ProfileForType("meta.tag"); got != defaultProfile {
		t.Fatalf("unknown category got %+v, want default profile", got)
	}
}

func TestDeletionProfile(t *testing.T) {
	p := DeletionProfile()
	if p.RelativePitch >= 0 {
		t.Fatalf("deletion profile should lower pitch, got %+v", p.RelativePitch)
	}
	if p.Punctuation != PunctuationNone {
		t.Fatal("deletion profile should disable punctuation echo")
	}
}

package domain

import "strings"

// Category is the speech-profile lookup key derived from a token's
// outermost dot-segment. Anything outside the known set resolves to
// CategoryPlain, which carries the default profile.
type Category int

const (
	CategoryPlain Category = iota
	CategoryConstant
	CategoryEntity
	CategoryKeyword
	CategoryStorage
	CategoryVariable
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryConstant:
		return "constant"
	case CategoryEntity:
		return "entity"
	case CategoryKeyword:
		return "keyword"
	case CategoryStorage:
		return "storage"
	case CategoryVariable:
		return "variable"
	default:
		return "plain"
	}
}

// ParseCategory maps a dotted token type ("keyword.control") onto a
// Category via its first segment. Plain text, whitespace, and unknown
// categories all land on CategoryPlain.
func ParseCategory(tokenType string) Category {
	head := tokenType
	if i := strings.IndexByte(tokenType, '.'); i >= 0 {
		head = tokenType[:i]
	}
	switch head {
	case "constant":
		return CategoryConstant
	case "entity":
		return CategoryEntity
	case "keyword":
		return CategoryKeyword
	case "storage":
		return CategoryStorage
	case "variable":
		return CategoryVariable
	default:
		return CategoryPlain
	}
}

// Punctuation controls whether the voice service echoes punctuation
// characters while speaking.
type Punctuation int

const (
	PunctuationDefault Punctuation = iota
	PunctuationNone
)

// Profile is an immutable set of vocal styling parameters. Rate, Pitch
// and Volume are multipliers around 1.0; RelativePitch shifts pitch
// additively on top of Pitch.
type Profile struct {
	Rate          float64
	Pitch         float64
	Volume        float64
	RelativePitch float64
	Punctuation   Punctuation
}

var (
	defaultProfile  = Profile{Rate: 1.0, Pitch: 1.0, Volume: 1.0}
	constantProfile = Profile{Rate: 1.0, Pitch: 1.15, Volume: 1.0}
	entityProfile   = Profile{Rate: 0.95, Pitch: 1.1, Volume: 1.0}
	keywordProfile  = Profile{Rate: 0.9, Pitch: 0.85, Volume: 1.0}
	storageProfile  = Profile{Rate: 0.9, Pitch: 0.9, Volume: 1.0}
	variableProfile = Profile{Rate: 1.0, Pitch: 1.05, Volume: 1.0}

	// deletionProfile styles removed text: noticeably lower, with
	// punctuation echo off so deletions stay terse.
	deletionProfile = Profile{Rate: 1.0, Pitch: 1.0, Volume: 1.0, RelativePitch: -0.25, Punctuation: PunctuationNone}
)

// DefaultProfile returns the styling used for plain text and any
// unrecognized category.
func DefaultProfile() Profile { return defaultProfile }

// DeletionProfile returns the styling used when speaking removed text.
func DeletionProfile() Profile { return deletionProfile }

// ProfileFor returns the styling for a syntax category.
func ProfileFor(c Category) Profile {
	switch c {
	case CategoryConstant:
		return constantProfile
	case CategoryEntity:
		return entityProfile
	case CategoryKeyword:
		return keywordProfile
	case CategoryStorage:
		return storageProfile
	case CategoryVariable:
		return variableProfile
	default:
		return defaultProfile
	}
}

// ProfileForType is the token-type convenience form of ProfileFor.
func ProfileForType(tokenType string) Profile {
	return ProfileFor(ParseCategory(tokenType))
}

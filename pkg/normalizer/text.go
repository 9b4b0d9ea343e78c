package normalizer

import (
	"strings"
	"unicode"
)

const (
	// StepSeparator delimits instruction steps in the upstream text. Bare
	// "\n" is not a separator.
	StepSeparator = "\r\n"
	TagSeparator  = ","
)

type Strategy func(string) string

type Pipeline []Strategy

func (p Pipeline) Apply(s string) string {
	for _, fn := range p {
		s = fn(s)
	}
	return s
}

func Trim(s string) string {
	return strings.TrimSpace(s)
}

// SplitNonEmpty splits s on sep, runs each part through strategy and keeps
// the non-empty results in their original order. The result is never nil.
func SplitNonEmpty(s, sep string, strategy Strategy) []string {
	out := []string{}
	if s == "" {
		return out
	}

	for _, part := range strings.Split(s, sep) {
		part = strategy(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}

func SplitSteps(instructions string) []string {
	return SplitNonEmpty(instructions, StepSeparator, Trim)
}

func SplitTags(tags string) []string {
	return SplitNonEmpty(tags, TagSeparator, Trim)
}

// CollapseWhitespace folds every run of whitespace into one space.
func CollapseWhitespace(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

var displayName = Pipeline{Trim, CollapseWhitespace}

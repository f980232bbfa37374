package catalog

import (
	apperr "github.com/matzehuels/rustbrew/pkg/errors"
)

// MaxQueryLen is the longest accepted query, in bytes.
const MaxQueryLen = 30

// DefaultQuery is counted when no query is given.
const DefaultQuery = "rust"

// ValidateQuery rejects queries longer than [MaxQueryLen] bytes.
// No language, build system or library in Homebrew has a name that long, so
// a longer query is almost certainly a mistake.
func ValidateQuery(q string) error {
	if len(q) > MaxQueryLen {
		return apperr.New(apperr.ErrCodeInvalidInput,
			"the language is more than %d characters long, which is weird: language=%s", MaxQueryLen, q)
	}
	return nil
}

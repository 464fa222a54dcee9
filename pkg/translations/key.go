package translations

import (
	"crypto/md5" //nolint:gosec // key derivation, not security
	"encoding/hex"
	"strings"
)

// contextSeparator replaces commas inside a context string before hashing so
// the tag-join delimiter can never collide with a comma that is part of a tag.
const contextSeparator = ":"

// GenerateKey derives the stable translation key for a source string and its
// context. Context is a comma-joined list of free-form tags and may be empty.
// The same (sourceString, context) pair always yields the same key; reordering
// the tags yields a different key.
func GenerateKey(sourceString, context string) string {
	normalized := strings.ReplaceAll(context, ",", contextSeparator)
	sum := md5.Sum([]byte(sourceString + ":" + normalized))
	return hex.EncodeToString(sum[:])
}

// GenerateKeyFromTags derives a translation key from a source string and a
// tag list, joining the tags into a context string first.
func GenerateKeyFromTags(sourceString string, tags []string) string {
	return GenerateKey(sourceString, strings.Join(tags, ","))
}

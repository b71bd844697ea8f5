// Package reference classifies raw user-supplied tokens before entity
// resolution. It is pure: no cache or network access.
package reference

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/concordlib/concord/internal/core/domain"
)

// Kind is the classification outcome for a raw token.
type Kind int

const (
	// KindFreeText is anything that is neither a bare id nor a mention.
	KindFreeText Kind = iota

	// KindExplicitID is a bare base-10 snowflake.
	KindExplicitID

	// KindMentionID is a mention token wrapping a snowflake.
	KindMentionID
)

// mentionRegexp matches the fixed mention grammar <@ID> or <@!ID>, anchored
// at both ends.
var mentionRegexp = regexp.MustCompile(`^<@!?(\d+)>$`)

// Token is a raw token plus its classification. ID is set for the two id
// kinds; Raw always carries the trimmed input.
type Token struct {
	Raw  string
	Kind Kind
	ID   domain.Snowflake
}

// Parse classifies a raw token. A string that parses whole as an unsigned
// base-10 number is an explicit id; a string matching the mention grammar is
// a mention id; everything else is free text.
func Parse(raw string) Token {
	trimmed := strings.TrimSpace(raw)

	if id, err := strconv.ParseUint(trimmed, 10, 64); err == nil {
		return Token{Raw: trimmed, Kind: KindExplicitID, ID: domain.Snowflake(id)}
	}

	if match := mentionRegexp.FindStringSubmatch(trimmed); match != nil {
		if id, err := strconv.ParseUint(match[1], 10, 64); err == nil {
			return Token{Raw: trimmed, Kind: KindMentionID, ID: domain.Snowflake(id)}
		}
	}

	return Token{Raw: trimmed, Kind: KindFreeText}
}

// Package match ranks guild roster members against a free-text query.
package match

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/concordlib/concord/internal/core/domain"
)

// Threshold is the minimum fuzzy ratio (0-100 scale) for a candidate to
// qualify in any pass.
const Threshold = 85

// Member picks at most one member of the roster for the query.
//
// In the default mode every member is scored twice, against its username and
// against its effective display name. The username ranking is consulted
// first; only if no member reaches the threshold there does the display-name
// ranking get a turn. The two rankings are independent: a low username score
// does not disqualify a member from winning on display name.
//
// In exact-only mode the first member whose username equals the query
// case-insensitively wins; failing that, a single fuzzy pass over display
// names runs with the same threshold.
//
// Ties on equal scores go to the member appearing earlier in roster order,
// so results are deterministic for a given roster snapshot.
func Member(roster []*domain.Member, query string, exactUsernameOnly bool) (*domain.Member, bool) {
	if len(roster) == 0 || query == "" {
		return nil, false
	}

	if exactUsernameOnly {
		for _, member := range roster {
			if strings.EqualFold(member.Username(), query) {
				return member, true
			}
		}

		return bestScoring(roster, query, (*domain.Member).DisplayName)
	}

	if member, ok := bestScoring(roster, query, (*domain.Member).Username); ok {
		return member, true
	}

	return bestScoring(roster, query, (*domain.Member).DisplayName)
}

// bestScoring runs one ranking pass over the roster using the given field.
// A strict comparison keeps the earliest member on equal scores.
func bestScoring(
	roster []*domain.Member,
	query string,
	field func(*domain.Member) string,
) (*domain.Member, bool) {
	var best *domain.Member
	bestScore := -1

	for _, member := range roster {
		if score := Ratio(field(member), query); score > bestScore {
			best = member
			bestScore = score
		}
	}

	if bestScore < Threshold {
		return nil, false
	}

	return best, true
}

// Ratio is the normalized edit-distance similarity between two strings on a
// 0-100 scale, case-insensitive. Identical strings score 100.
func Ratio(candidate, query string) int {
	return fuzzy.Ratio(strings.ToLower(candidate), strings.ToLower(query))
}

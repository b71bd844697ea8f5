package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/concordlib/concord/internal/core/domain"
)

type mapSource map[domain.Snowflake]*domain.User

func (s mapSource) UserByID(id domain.Snowflake) (*domain.User, bool) {
	user, ok := s[id]

	return user, ok
}

// buildRoster constructs an ordered roster; each entry is (id, username,
// nickname), with an empty nickname meaning the username is the display name.
func buildRoster(entries [][3]string) []*domain.Member {
	source := mapSource{}
	roster := make([]*domain.Member, 0, len(entries))

	for i, entry := range entries {
		id := domain.Snowflake(i + 1)
		if entry[0] != "" {
			parsed, err := domain.ParseSnowflake(entry[0])
			if err == nil {
				id = parsed
			}
		}

		source[id] = &domain.User{ID: id, Username: entry[1]}
		member := domain.NewMember(id, 900, source)
		member.Nickname = entry[2]
		roster = append(roster, member)
	}

	return roster
}

func TestMember_UsernamePrecedesDisplayName(t *testing.T) {
	// Second member matches the query perfectly on display name, but the
	// first qualifies on username, and the username pass runs first.
	roster := buildRoster([][3]string{
		{"1", "marin", "zzzz"},
		{"2", "qqqq", "marin"},
	})

	member, ok := Member(roster, "marin", false)

	require.True(t, ok)
	assert.Equal(t, domain.Snowflake(1), member.UserID)
}

func TestMember_DisplayNamePassIsIndependent(t *testing.T) {
	// No username qualifies, so the display-name ranking gets its turn even
	// though this member's username score is near zero.
	roster := buildRoster([][3]string{
		{"1", "xqw93k", "Moonlight"},
	})

	member, ok := Member(roster, "moonlight", false)

	require.True(t, ok)
	assert.Equal(t, domain.Snowflake(1), member.UserID)
}

func TestMember_TieBreaksByRosterOrder(t *testing.T) {
	roster := buildRoster([][3]string{
		{"7", "lucas", ""},
		{"3", "lucas", ""},
	})

	member, ok := Member(roster, "lucas", false)

	require.True(t, ok)
	assert.Equal(t, domain.Snowflake(7), member.UserID)
}

func TestMember_Deterministic(t *testing.T) {
	roster := buildRoster([][3]string{
		{"1", "patrick", ""},
		{"2", "patricia", ""},
		{"3", "pat", ""},
	})

	first, ok := Member(roster, "patrik", false)
	require.True(t, ok)

	for i := 0; i < 10; i++ {
		member, ok := Member(roster, "patrik", false)
		require.True(t, ok)
		assert.Equal(t, first.UserID, member.UserID)
	}
}

func TestMember_CaseInsensitiveExactScoresFull(t *testing.T) {
	roster := buildRoster([][3]string{
		{"1", "Jorts", ""},
	})

	member, ok := Member(roster, "jorts", false)

	require.True(t, ok)
	assert.Equal(t, domain.Snowflake(1), member.UserID)
	assert.Equal(t, 100, Ratio("Jorts", "jorts"))
}

func TestMember_BelowThresholdMisses(t *testing.T) {
	roster := buildRoster([][3]string{
		{"1", "zebra", ""},
		{"2", "rhino", ""},
	})

	member, ok := Member(roster, "marin", false)

	assert.False(t, ok)
	assert.Nil(t, member)
}

func TestMember_EmptyRosterMisses(t *testing.T) {
	_, ok := Member(nil, "anyone", false)

	assert.False(t, ok)
}

func TestMember_ExactOnly(t *testing.T) {
	tests := []struct {
		name       string
		roster     [][3]string
		query      string
		expectedID domain.Snowflake
		expectMiss bool
	}{
		{
			name: "case-insensitive username equality wins",
			roster: [][3]string{
				{"1", "Jortsy", ""},
				{"2", "Jorts", ""},
			},
			query:      "jorts",
			expectedID: 2,
		},
		{
			name: "close username is not good enough",
			roster: [][3]string{
				{"1", "jortsy", "zw81x"},
			},
			query:      "jorts",
			expectMiss: true,
		},
		{
			name: "falls back to a fuzzy display-name pass",
			roster: [][3]string{
				{"1", "xqw93k", "Moonlight"},
			},
			query:      "moonligh",
			expectedID: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member, ok := Member(buildRoster(tt.roster), tt.query, true)

			if tt.expectMiss {
				assert.False(t, ok)

				return
			}

			require.True(t, ok)
			assert.Equal(t, tt.expectedID, member.UserID)
		})
	}
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 100, Ratio("same", "same"))
	assert.Equal(t, 100, Ratio("SAME", "same"))
	assert.GreaterOrEqual(t, Ratio("jorts", "jort"), Threshold)
	assert.Less(t, Ratio("zebra", "marin"), Threshold)
}

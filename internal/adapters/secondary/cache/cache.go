package cache

import "github.com/concordlib/concord/internal/core/domain"

// Cache is the process-wide identity cache: canonical users keyed by
// snowflake, per-guild member rosters keyed the same way, and known channels.
// Implementations are internally synchronized; callers never take locks.
// All writes are insert-or-overwrite by key, and there is no eviction.
type Cache interface {
	// UserByID retrieves a canonical user by id.
	// Returns the user and true if found, nil and false otherwise.
	UserByID(id domain.Snowflake) (*domain.User, bool)

	// StoreUser inserts or replaces the canonical user for its id.
	// Last write wins; the previous value is replaced, never merged.
	StoreUser(user *domain.User)

	// Users retrieves a snapshot of all cached users, in no particular order.
	Users() []*domain.User

	// MemberByID retrieves a member of the given guild by user id.
	MemberByID(guildID, userID domain.Snowflake) (*domain.Member, bool)

	// StoreMember inserts or replaces a member in its guild's roster.
	StoreMember(member *domain.Member)

	// GuildMembers retrieves a snapshot of the guild's roster in insertion
	// order. Insertion order is observable: fuzzy matching breaks score ties
	// by it.
	GuildMembers(guildID domain.Snowflake) []*domain.Member

	// ChannelByID retrieves a known channel by id.
	ChannelByID(id domain.Snowflake) (*domain.Channel, bool)

	// StoreChannel inserts or replaces a known channel.
	StoreChannel(channel *domain.Channel)
}

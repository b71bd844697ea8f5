package cache

import (
	"sync"

	"github.com/concordlib/concord/internal/core/domain"
)

// InMemoryCache is an in-memory thread-safe identity cache. Users and
// channels live in sync.Maps; rosters keep a side index of insertion order
// under a read-write lock because iteration order is part of the contract.
type InMemoryCache struct {
	users    sync.Map // map[domain.Snowflake]*domain.User
	channels sync.Map // map[domain.Snowflake]*domain.Channel

	mu      sync.RWMutex
	rosters map[domain.Snowflake]*roster
}

type roster struct {
	order []domain.Snowflake
	byID  map[domain.Snowflake]*domain.Member
}

// NewInMemoryCache creates a new in-memory cache instance.
func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{
		rosters: make(map[domain.Snowflake]*roster),
	}
}

// UserByID retrieves a canonical user by id.
func (c *InMemoryCache) UserByID(id domain.Snowflake) (*domain.User, bool) {
	if cached, ok := c.users.Load(id); ok {
		if user, ok := cached.(*domain.User); ok {
			return user, true
		}
	}

	return nil, false
}

// StoreUser inserts or replaces the canonical user for its id. The stored
// value is replaced whole; readers holding the previous pointer keep a valid
// snapshot and observe the new identity on their next lookup.
func (c *InMemoryCache) StoreUser(user *domain.User) {
	c.users.Store(user.ID, user)
}

// Users retrieves a snapshot of all cached users.
func (c *InMemoryCache) Users() []*domain.User {
	var users []*domain.User

	c.users.Range(func(_ any, value any) bool {
		if user, ok := value.(*domain.User); ok {
			users = append(users, user)
		}

		return true
	})

	return users
}

// MemberByID retrieves a member of the given guild by user id.
func (c *InMemoryCache) MemberByID(guildID, userID domain.Snowflake) (*domain.Member, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.rosters[guildID]
	if !ok {
		return nil, false
	}

	member, ok := r.byID[userID]

	return member, ok
}

// StoreMember inserts or replaces a member in its guild's roster. A replaced
// member keeps its original position in the roster order.
func (c *InMemoryCache) StoreMember(member *domain.Member) {
	c.mu.Lock()
	defer c.mu.Unlock()

	r, ok := c.rosters[member.GuildID]
	if !ok {
		r = &roster{byID: make(map[domain.Snowflake]*domain.Member)}
		c.rosters[member.GuildID] = r
	}

	if _, exists := r.byID[member.UserID]; !exists {
		r.order = append(r.order, member.UserID)
	}

	r.byID[member.UserID] = member
}

// GuildMembers retrieves a snapshot of the guild's roster in insertion order.
func (c *InMemoryCache) GuildMembers(guildID domain.Snowflake) []*domain.Member {
	c.mu.RLock()
	defer c.mu.RUnlock()

	r, ok := c.rosters[guildID]
	if !ok {
		return nil
	}

	members := make([]*domain.Member, 0, len(r.order))
	for _, id := range r.order {
		members = append(members, r.byID[id])
	}

	return members
}

// ChannelByID retrieves a known channel by id.
func (c *InMemoryCache) ChannelByID(id domain.Snowflake) (*domain.Channel, bool) {
	if cached, ok := c.channels.Load(id); ok {
		if channel, ok := cached.(*domain.Channel); ok {
			return channel, true
		}
	}

	return nil, false
}

// StoreChannel inserts or replaces a known channel.
func (c *InMemoryCache) StoreChannel(channel *domain.Channel) {
	c.channels.Store(channel.ID, channel)
}

// Package cached layers the identity cache over the REST repository. It is
// the remote fallback fetcher: lookups hit the cache first and only go to
// the network on a miss, and every complete response is written back.
package cached

import (
	"context"
	"fmt"

	"github.com/concordlib/concord/internal/adapters/secondary/cache"
	"github.com/concordlib/concord/internal/core/domain"
)

// Remote is the slice of the REST repository the fetcher needs.
type Remote interface {
	FetchUser(ctx context.Context, id domain.Snowflake) (domain.UserPayload, error)
	FetchGuildMember(ctx context.Context, guildID, userID domain.Snowflake) (domain.MemberPayload, error)
	ListGuildMembers(ctx context.Context, guildID domain.Snowflake) ([]domain.MemberPayload, error)
	FetchChannel(ctx context.Context, id domain.Snowflake) (domain.ChannelPayload, error)
	FetchMessage(ctx context.Context, channelID, messageID domain.Snowflake) (domain.MessagePayload, error)
}

// Repository implements the app.Directory port.
type Repository struct {
	remote Remote
	cache  cache.Cache
}

// NewRepository creates a new cached repository instance.
func NewRepository(remote Remote, cache cache.Cache) *Repository {
	return &Repository{
		remote: remote,
		cache:  cache,
	}
}

// User gets a global user from the cache, falling back to the API. The cache
// write happens only after a complete response, so a cancelled fetch never
// leaves a partial entry.
func (r *Repository) User(ctx context.Context, id domain.Snowflake) (*domain.User, error) {
	if user, ok := r.cache.UserByID(id); ok {
		return user, nil
	}

	payload, err := r.remote.FetchUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user := payload.User()
	r.cache.StoreUser(user)

	return user, nil
}

// Member gets a guild member from the roster, falling back to the API. A
// fetched member replaces both the cached user and the roster entry.
func (r *Repository) Member(ctx context.Context, guildID, userID domain.Snowflake) (*domain.Member, error) {
	if member, ok := r.cache.MemberByID(guildID, userID); ok {
		return member, nil
	}

	payload, err := r.remote.FetchGuildMember(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	r.cache.StoreUser(payload.User.User())
	member := r.materializeMember(guildID, payload)
	r.cache.StoreMember(member)

	return member, nil
}

// Channel gets a channel from the cache, falling back to the API.
func (r *Repository) Channel(ctx context.Context, id domain.Snowflake) (*domain.Channel, error) {
	if channel, ok := r.cache.ChannelByID(id); ok {
		return channel, nil
	}

	payload, err := r.remote.FetchChannel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel: %w", err)
	}

	channel := payload.Channel()
	r.cache.StoreChannel(channel)

	return channel, nil
}

// ListGuildMembers fetches the guild's full roster, caching every returned
// user and member.
func (r *Repository) ListGuildMembers(
	ctx context.Context,
	guildID domain.Snowflake,
) ([]*domain.Member, error) {
	payloads, err := r.remote.ListGuildMembers(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list guild members: %w", err)
	}

	members := make([]*domain.Member, 0, len(payloads))
	for _, payload := range payloads {
		r.cache.StoreUser(payload.User.User())
		member := r.materializeMember(guildID, payload)
		r.cache.StoreMember(member)
		members = append(members, member)
	}

	return members, nil
}

// FetchMessage fetches a raw message payload. Reconciliation, not this
// repository, decides what ends up in the cache.
func (r *Repository) FetchMessage(
	ctx context.Context,
	channelID, messageID domain.Snowflake,
) (domain.MessagePayload, error) {
	payload, err := r.remote.FetchMessage(ctx, channelID, messageID)
	if err != nil {
		return domain.MessagePayload{}, fmt.Errorf("failed to fetch message: %w", err)
	}

	return payload, nil
}

// CachedUser retrieves a user from the cache only.
func (r *Repository) CachedUser(id domain.Snowflake) (*domain.User, bool) {
	return r.cache.UserByID(id)
}

// CachedMember retrieves a guild member from the cache only.
func (r *Repository) CachedMember(guildID, userID domain.Snowflake) (*domain.Member, bool) {
	return r.cache.MemberByID(guildID, userID)
}

// CachedChannel retrieves a channel from the cache only.
func (r *Repository) CachedChannel(id domain.Snowflake) (*domain.Channel, bool) {
	return r.cache.ChannelByID(id)
}

// GuildMembers retrieves the guild's roster snapshot in insertion order.
func (r *Repository) GuildMembers(guildID domain.Snowflake) []*domain.Member {
	return r.cache.GuildMembers(guildID)
}

// PutUser reconciles an ingested user payload against the cache: the cached
// identity is reused when present, created from the payload otherwise, and
// re-stored either way.
func (r *Repository) PutUser(payload domain.UserPayload) *domain.User {
	user, ok := r.cache.UserByID(payload.ID)
	if !ok {
		user = payload.User()
	}

	r.cache.StoreUser(user)

	return user
}

// PutMember reconciles an ingested member payload against the guild roster,
// upgrading the payload's user to a member. The user is reconciled first so
// the member wrapper always dereferences a cached identity.
func (r *Repository) PutMember(guildID domain.Snowflake, payload domain.MemberPayload) *domain.Member {
	r.PutUser(payload.User)

	member, ok := r.cache.MemberByID(guildID, payload.User.ID)
	if !ok {
		member = r.materializeMember(guildID, payload)
	}

	r.cache.StoreMember(member)

	return member
}

func (r *Repository) materializeMember(guildID domain.Snowflake, payload domain.MemberPayload) *domain.Member {
	member := domain.NewMember(payload.User.ID, guildID, r.cache)
	member.Nickname = payload.Nickname
	member.Roles = payload.Roles

	return member
}

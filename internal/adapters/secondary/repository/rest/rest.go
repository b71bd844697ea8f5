// Package rest wraps the Concord REST endpoints consumed by entity
// resolution. It returns wire payloads; materializing them into cached
// domain objects is the cached repository's job.
package rest

import (
	"context"
	"fmt"

	"github.com/concordlib/concord/internal/adapters/secondary/transport"
	"github.com/concordlib/concord/internal/core/domain"
)

// memberPageLimit is the page size for guild member listing.
const memberPageLimit = 1000

// Repository issues typed requests against the Concord API.
type Repository struct {
	client *transport.Client
}

// NewRepository creates a new REST repository instance.
func NewRepository(client *transport.Client) *Repository {
	return &Repository{client: client}
}

// FetchUser fetches a global user by id.
func (r *Repository) FetchUser(ctx context.Context, id domain.Snowflake) (domain.UserPayload, error) {
	var payload domain.UserPayload
	if err := r.client.Get(ctx, fmt.Sprintf("/users/%s", id), &payload); err != nil {
		return domain.UserPayload{}, fmt.Errorf("failed to fetch user %s: %w", id, err)
	}

	return payload, nil
}

// FetchGuildMember fetches a guild member by guild and user id.
func (r *Repository) FetchGuildMember(
	ctx context.Context,
	guildID, userID domain.Snowflake,
) (domain.MemberPayload, error) {
	var payload domain.MemberPayload
	path := fmt.Sprintf("/guilds/%s/members/%s", guildID, userID)
	if err := r.client.Get(ctx, path, &payload); err != nil {
		return domain.MemberPayload{}, fmt.Errorf("failed to fetch member %s of guild %s: %w", userID, guildID, err)
	}

	return payload, nil
}

// ListGuildMembers fetches the full member roster of a guild, paging until
// the API returns a short page.
func (r *Repository) ListGuildMembers(
	ctx context.Context,
	guildID domain.Snowflake,
) ([]domain.MemberPayload, error) {
	var members []domain.MemberPayload
	var after domain.Snowflake

	for {
		path := fmt.Sprintf("/guilds/%s/members?limit=%d", guildID, memberPageLimit)
		if after != 0 {
			path += "&after=" + after.String()
		}

		var page []domain.MemberPayload
		if err := r.client.Get(ctx, path, &page); err != nil {
			return nil, fmt.Errorf("failed to list members of guild %s: %w", guildID, err)
		}

		members = append(members, page...)

		if len(page) < memberPageLimit {
			return members, nil
		}

		after = page[len(page)-1].User.ID
	}
}

// FetchChannel fetches a channel by id.
func (r *Repository) FetchChannel(ctx context.Context, id domain.Snowflake) (domain.ChannelPayload, error) {
	var payload domain.ChannelPayload
	if err := r.client.Get(ctx, fmt.Sprintf("/channels/%s", id), &payload); err != nil {
		return domain.ChannelPayload{}, fmt.Errorf("failed to fetch channel %s: %w", id, err)
	}

	return payload, nil
}

// FetchMessage fetches a single message from a channel.
func (r *Repository) FetchMessage(
	ctx context.Context,
	channelID, messageID domain.Snowflake,
) (domain.MessagePayload, error) {
	var payload domain.MessagePayload
	path := fmt.Sprintf("/channels/%s/messages/%s", channelID, messageID)
	if err := r.client.Get(ctx, path, &payload); err != nil {
		return domain.MessagePayload{}, fmt.Errorf("failed to fetch message %s from channel %s: %w", messageID, channelID, err)
	}

	return payload, nil
}

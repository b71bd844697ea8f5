package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/concordlib/concord/internal/config"
	"github.com/concordlib/concord/internal/core/domain"
	"github.com/concordlib/concord/internal/match"
	"github.com/concordlib/concord/internal/reference"
)

// Directory is the port through which the app reaches identities (port).
// The ctx-taking methods may suspend on network I/O; the Cached*, Guild* and
// Put* methods only touch resident data and never block.
type Directory interface {
	User(ctx context.Context, id domain.Snowflake) (*domain.User, error)
	Member(ctx context.Context, guildID, userID domain.Snowflake) (*domain.Member, error)
	Channel(ctx context.Context, id domain.Snowflake) (*domain.Channel, error)
	ListGuildMembers(ctx context.Context, guildID domain.Snowflake) ([]*domain.Member, error)
	FetchMessage(ctx context.Context, channelID, messageID domain.Snowflake) (domain.MessagePayload, error)
	CachedUser(id domain.Snowflake) (*domain.User, bool)
	CachedMember(guildID, userID domain.Snowflake) (*domain.Member, bool)
	CachedChannel(id domain.Snowflake) (*domain.Channel, bool)
	GuildMembers(guildID domain.Snowflake) []*domain.Member
	PutUser(payload domain.UserPayload) *domain.User
	PutMember(guildID domain.Snowflake, payload domain.MemberPayload) *domain.Member
}

// ResolveOptions carries the invocation context for a resolution: the
// current guild scope (zero when none), pre-resolved entities supplied by
// structured invocations, and the per-parameter fuzzy-matching opt-out.
type ResolveOptions struct {
	GuildID           domain.Snowflake
	Resolved          *domain.ResolvedData
	ExactUsernameOnly bool
}

// App represents the core application with all resolution logic.
//
// Resolution methods return (entity, ok, err): ok=false with a nil error is
// the routine miss caused by untrusted input and is never logged; a non-nil
// error is a transport fault worth surfacing.
type App struct {
	dir Directory
}

// NewApp creates a new application instance, preloading the rosters of the
// configured guilds. A failed preload degrades to an empty cache rather than
// failing construction.
func NewApp(cfg *config.Config, dir Directory) (*App, error) {
	a := &App{dir: dir}

	if len(cfg.Guilds) > 0 {
		if err := a.PreloadGuilds(context.Background(), cfg.Guilds); err != nil {
			fmt.Printf("Warning: failed to preload guilds: %v\n", err)
		}
	}

	return a, nil
}

// ResolveMember resolves a raw token to a guild member.
//
// The pipeline: the pre-resolved fast path, then token classification, then
// either a fuzzy roster match (free text) or a cache-then-network fetch by
// id. Free-text queries never reach the network, and member resolution
// without a guild scope is always a miss.
func (a *App) ResolveMember(
	ctx context.Context,
	token string,
	opts ResolveOptions,
) (*domain.Member, bool, error) {
	tok := reference.Parse(token)

	if member, ok := resolvedMember(tok, opts.Resolved); ok {
		return member, true, nil
	}

	if opts.GuildID == 0 || tok.Raw == "" {
		return nil, false, nil
	}

	if tok.Kind == reference.KindFreeText {
		roster := a.dir.GuildMembers(opts.GuildID)
		member, ok := match.Member(roster, tok.Raw, opts.ExactUsernameOnly)

		return member, ok, nil
	}

	member, err := a.dir.Member(ctx, opts.GuildID, tok.ID)
	if err != nil {
		if domain.IsMiss(err) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to resolve member: %w", err)
	}

	return member, true, nil
}

// ResolveUser resolves a raw token to a global user.
//
// Free text requires a guild scope, since fuzzy matching is roster-bound.
// The id path prefers the guild roster when a scope is available, so a
// cached member answers without a network call; otherwise it falls back to
// the user cache and finally the global user endpoint.
func (a *App) ResolveUser(
	ctx context.Context,
	token string,
	opts ResolveOptions,
) (*domain.User, bool, error) {
	tok := reference.Parse(token)

	if opts.Resolved != nil && tok.Kind == reference.KindExplicitID {
		if user, ok := opts.Resolved.Users[tok.ID]; ok {
			return user, true, nil
		}
	}

	if tok.Raw == "" {
		return nil, false, nil
	}

	if tok.Kind == reference.KindFreeText {
		if opts.GuildID == 0 {
			// Free text cannot resolve a bare global user.
			return nil, false, nil
		}

		roster := a.dir.GuildMembers(opts.GuildID)
		member, ok := match.Member(roster, tok.Raw, opts.ExactUsernameOnly)
		if !ok {
			return nil, false, nil
		}

		return member.User(), true, nil
	}

	if opts.GuildID != 0 {
		if member, ok := a.dir.CachedMember(opts.GuildID, tok.ID); ok {
			return member.User(), true, nil
		}
	}

	user, err := a.dir.User(ctx, tok.ID)
	if err != nil {
		if domain.IsMiss(err) {
			return nil, false, nil
		}

		return nil, false, fmt.Errorf("failed to resolve user: %w", err)
	}

	return user, true, nil
}

// FetchMessage fetches a message over REST and reconciles its author and
// channel against the cache.
func (a *App) FetchMessage(
	ctx context.Context,
	channelID, messageID domain.Snowflake,
) (*domain.Message, error) {
	payload, err := a.dir.FetchMessage(ctx, channelID, messageID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message: %w", err)
	}

	return a.ReconcileMessage(payload), nil
}

// PreloadGuilds fetches and caches the member rosters of the given guilds in
// parallel.
func (a *App) PreloadGuilds(ctx context.Context, guildIDs []domain.Snowflake) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, guildID := range guildIDs {
		guildID := guildID
		g.Go(func() error {
			if _, err := a.dir.ListGuildMembers(ctx, guildID); err != nil {
				return fmt.Errorf("failed to preload guild %s: %w", guildID, err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to preload guilds: %w", err)
	}

	return nil
}

// GuildRoster returns the cached roster snapshot of a guild in insertion
// order, without touching the network.
func (a *App) GuildRoster(guildID domain.Snowflake) []*domain.Member {
	return a.dir.GuildMembers(guildID)
}

// resolvedMember checks the structured-invocation fast path: an explicit id
// present in the pre-resolved member map resolves immediately, with no cache
// or network access.
func resolvedMember(tok reference.Token, resolved *domain.ResolvedData) (*domain.Member, bool) {
	if resolved == nil || tok.Kind != reference.KindExplicitID {
		return nil, false
	}

	member, ok := resolved.Members[tok.ID]

	return member, ok
}

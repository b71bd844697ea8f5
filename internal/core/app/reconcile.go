package app

import "github.com/concordlib/concord/internal/core/domain"

// ReconcileMessage resolves an ingested message payload's channel, guild and
// author against the identity cache.
//
// This runs on the ingestion hot path and performs no network calls: any
// piece not locally known is filled with a synthesized placeholder instead
// of triggering a fetch. Placeholders are never written to the cache.
func (a *App) ReconcileMessage(payload domain.MessagePayload) *domain.Message {
	message := &domain.Message{
		ID:        payload.ID,
		ChannelID: payload.ChannelID,
		Content:   payload.Content,
		Timestamp: payload.Timestamp,
		Type:      payload.Type,
	}

	guildID := payload.GuildID

	channel, known := a.dir.CachedChannel(payload.ChannelID)
	if known && guildID == 0 {
		guildID = channel.GuildID
	}

	if !known {
		channel = placeholderChannel(payload.ChannelID, guildID)
	}

	message.Channel = channel
	message.GuildID = guildID

	a.reconcileAuthor(message, payload, guildID)

	if payload.Type == domain.MessageTypeReply && payload.ReferencedMessage != nil {
		// The reply target carries its own author and channel; it is
		// reconciled independently, not inherited from the parent.
		message.ReferencedMessage = a.ReconcileMessage(*payload.ReferencedMessage)
	}

	return message
}

func (a *App) reconcileAuthor(message *domain.Message, payload domain.MessagePayload, guildID domain.Snowflake) {
	if payload.Author.Webhook() {
		// Webhook actors are not addressable accounts; caching them would
		// pollute the identity cache with transient identities.
		message.Author = payload.Author.User()

		return
	}

	user := a.dir.PutUser(payload.Author)
	message.Author = user

	if guildID == 0 {
		return
	}

	memberPayload := domain.MemberPayload{User: payload.Author}
	if payload.Member != nil {
		memberPayload.Nickname = payload.Member.Nickname
		memberPayload.Roles = payload.Member.Roles
	}

	message.Member = a.dir.PutMember(guildID, memberPayload)
}

// placeholderChannel synthesizes a minimal stand-in for a channel that is
// referenced by id but not locally known. With a guild id it takes guild
// shape, otherwise private shape. It lives only on the reconciled message.
func placeholderChannel(id, guildID domain.Snowflake) *domain.Channel {
	if guildID == 0 {
		return &domain.Channel{
			ID:   id,
			Type: domain.ChannelTypePrivate,
		}
	}

	return &domain.Channel{
		ID:      id,
		GuildID: guildID,
		Type:    domain.ChannelTypeGuildText,
	}
}

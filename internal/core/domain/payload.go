package domain

import (
	"strconv"
	"time"
)

// UserPayload is the wire form of a user as decoded from a REST response or
// an ingested event.
type UserPayload struct {
	ID            Snowflake `json:"id"`
	Username      string    `json:"username"`
	GlobalName    string    `json:"global_name,omitempty"`
	Discriminator string    `json:"discriminator,omitempty"`
	Bot           bool      `json:"bot,omitempty"`
}

// Webhook reports whether the payload describes a webhook or system actor: a
// bot-flagged identity whose discriminator parses to zero. Such actors are
// not addressable accounts and must stay out of the identity cache.
func (p UserPayload) Webhook() bool {
	if !p.Bot {
		return false
	}

	disc, err := strconv.Atoi(p.Discriminator)

	return err == nil && disc == 0
}

// User materializes the canonical user described by the payload.
func (p UserPayload) User() *User {
	return &User{
		ID:            p.ID,
		Username:      p.Username,
		GlobalName:    p.GlobalName,
		Discriminator: p.Discriminator,
		Bot:           p.Bot,
	}
}

// MemberPayload is the wire form of a guild member.
type MemberPayload struct {
	User     UserPayload `json:"user"`
	Nickname string      `json:"nick,omitempty"`
	Roles    []Snowflake `json:"roles,omitempty"`
}

// ChannelPayload is the wire form of a channel.
type ChannelPayload struct {
	ID      Snowflake   `json:"id"`
	GuildID Snowflake   `json:"guild_id,omitempty"`
	Name    string      `json:"name,omitempty"`
	Type    ChannelType `json:"type"`
}

// Channel materializes the channel described by the payload.
func (p ChannelPayload) Channel() *Channel {
	return &Channel{
		ID:      p.ID,
		GuildID: p.GuildID,
		Name:    p.Name,
		Type:    p.Type,
	}
}

// MessagePayload is the wire form of a message as decoded from a REST
// response or an ingest webhook. GuildID is zero for direct messages and for
// REST responses, which omit it.
type MessagePayload struct {
	ID                Snowflake       `json:"id"`
	ChannelID         Snowflake       `json:"channel_id"`
	GuildID           Snowflake       `json:"guild_id,omitempty"`
	Author            UserPayload     `json:"author"`
	Member            *MemberPayload  `json:"member,omitempty"`
	Content           string          `json:"content"`
	Timestamp         time.Time       `json:"timestamp"`
	Type              MessageType     `json:"type"`
	ReferencedMessage *MessagePayload `json:"referenced_message,omitempty"`
}

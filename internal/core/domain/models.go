package domain

import "time"

// ChannelType discriminates guild channels from direct-message channels.
type ChannelType int

const (
	ChannelTypeGuildText ChannelType = 0
	ChannelTypePrivate   ChannelType = 1
)

// MessageType is the kind of a message. Only the reply type matters to this
// library; everything else passes through untouched.
type MessageType int

const (
	MessageTypeDefault MessageType = 0
	MessageTypeReply   MessageType = 19
)

// User is the canonical, guild-independent identity of an account. Users are
// owned by the identity cache; every other component holds a shared reference.
type User struct {
	ID            Snowflake
	Username      string
	GlobalName    string
	Discriminator string
	Bot           bool
}

// DisplayName returns the user's default display name.
func (u *User) DisplayName() string {
	if u.GlobalName != "" {
		return u.GlobalName
	}

	return u.Username
}

// UserSource resolves a user id to the canonical cached user. It exists so a
// Member can reference its underlying User by id rather than holding a copy,
// making identity updates visible through every member wrapper.
type UserSource interface {
	UserByID(id Snowflake) (*User, bool)
}

// Member is a user's guild-scoped membership record. It does not own its
// user; it dereferences the identity cache by id on every access.
type Member struct {
	UserID   Snowflake
	GuildID  Snowflake
	Nickname string
	Roles    []Snowflake

	users UserSource
}

// NewMember creates a member wrapping the user identified by userID. The user
// must already be present in the given source.
func NewMember(userID, guildID Snowflake, users UserSource) *Member {
	return &Member{
		UserID:  userID,
		GuildID: guildID,
		users:   users,
	}
}

// User returns the canonical cached user backing this member, or nil if the
// user is no longer present in the source.
func (m *Member) User() *User {
	if m.users == nil {
		return nil
	}

	user, ok := m.users.UserByID(m.UserID)
	if !ok {
		return nil
	}

	return user
}

// Username returns the username of the underlying user.
func (m *Member) Username() string {
	if user := m.User(); user != nil {
		return user.Username
	}

	return ""
}

// DisplayName returns the guild-effective display name: the nickname if one
// is set, otherwise the user's default display name.
func (m *Member) DisplayName() string {
	if m.Nickname != "" {
		return m.Nickname
	}

	if user := m.User(); user != nil {
		return user.DisplayName()
	}

	return ""
}

// Channel is a message container. Reconciliation synthesizes placeholder
// channels when a referenced channel is not locally known; placeholders are
// never inserted into any cache to avoid polluting it with synthesized data.
type Channel struct {
	ID      Snowflake
	GuildID Snowflake
	Name    string
	Type    ChannelType
}

// Message is an ingested message with its author and channel resolved.
// Author is always set; Member is additionally set when the message was
// resolved against a guild.
type Message struct {
	ID                Snowflake
	ChannelID         Snowflake
	GuildID           Snowflake
	Content           string
	Timestamp         time.Time
	Type              MessageType
	Author            *User
	Member            *Member
	Channel           *Channel
	ReferencedMessage *Message
}

// AuthorDisplayName returns the richest display name available for the
// message author.
func (m *Message) AuthorDisplayName() string {
	if m.Member != nil {
		return m.Member.DisplayName()
	}

	if m.Author != nil {
		return m.Author.DisplayName()
	}

	return ""
}

// ResolvedData is the pre-resolved entity map supplied by structured
// invocation contexts. When the platform has already resolved a reference,
// resolution short-circuits here without touching cache or network.
type ResolvedData struct {
	Users   map[Snowflake]*User
	Members map[Snowflake]*Member
}

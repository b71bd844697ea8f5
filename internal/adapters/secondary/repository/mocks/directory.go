package mocks

import (
	"context"

	"github.com/concordlib/concord/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// MockDirectory is a mock implementation of app.Directory.
type MockDirectory struct {
	mock.Mock
}

// User mocks the User method.
func (m *MockDirectory) User(ctx context.Context, id domain.Snowflake) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.User), args.Error(1)
}

// Member mocks the Member method.
func (m *MockDirectory) Member(ctx context.Context, guildID, userID domain.Snowflake) (*domain.Member, error) {
	args := m.Called(ctx, guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Member), args.Error(1)
}

// Channel mocks the Channel method.
func (m *MockDirectory) Channel(ctx context.Context, id domain.Snowflake) (*domain.Channel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*domain.Channel), args.Error(1)
}

// ListGuildMembers mocks the ListGuildMembers method.
func (m *MockDirectory) ListGuildMembers(
	ctx context.Context,
	guildID domain.Snowflake,
) ([]*domain.Member, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*domain.Member), args.Error(1)
}

// FetchMessage mocks the FetchMessage method.
func (m *MockDirectory) FetchMessage(
	ctx context.Context,
	channelID, messageID domain.Snowflake,
) (domain.MessagePayload, error) {
	args := m.Called(ctx, channelID, messageID)

	return args.Get(0).(domain.MessagePayload), args.Error(1)
}

// CachedUser mocks the CachedUser method.
func (m *MockDirectory) CachedUser(id domain.Snowflake) (*domain.User, bool) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}

	return args.Get(0).(*domain.User), args.Bool(1)
}

// CachedMember mocks the CachedMember method.
func (m *MockDirectory) CachedMember(guildID, userID domain.Snowflake) (*domain.Member, bool) {
	args := m.Called(guildID, userID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}

	return args.Get(0).(*domain.Member), args.Bool(1)
}

// CachedChannel mocks the CachedChannel method.
func (m *MockDirectory) CachedChannel(id domain.Snowflake) (*domain.Channel, bool) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}

	return args.Get(0).(*domain.Channel), args.Bool(1)
}

// GuildMembers mocks the GuildMembers method.
func (m *MockDirectory) GuildMembers(guildID domain.Snowflake) []*domain.Member {
	args := m.Called(guildID)
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).([]*domain.Member)
}

// PutUser mocks the PutUser method.
func (m *MockDirectory) PutUser(payload domain.UserPayload) *domain.User {
	args := m.Called(payload)
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(*domain.User)
}

// PutMember mocks the PutMember method.
func (m *MockDirectory) PutMember(guildID domain.Snowflake, payload domain.MemberPayload) *domain.Member {
	args := m.Called(guildID, payload)
	if args.Get(0) == nil {
		return nil
	}

	return args.Get(0).(*domain.Member)
}

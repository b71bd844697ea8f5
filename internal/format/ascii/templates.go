package ascii

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/concordlib/concord/internal/core/domain"
)

var (
	//go:embed user.tmpl
	userTemplate string

	//go:embed member.tmpl
	memberTemplate string

	//go:embed roster.tmpl
	rosterTemplate string
)

// UserData holds data for the user template.
type UserData struct {
	User       *domain.User
	ProfileURL string
}

// MemberData holds data for the member template.
type MemberData struct {
	Member     *domain.Member
	ProfileURL string
}

// RosterData holds data for the roster template.
type RosterData struct {
	GuildID domain.Snowflake
	Members []*domain.Member
}

// Formatter renders resolved entities as plain text for the CLI.
type Formatter struct {
	user   *template.Template
	member *template.Template
	roster *template.Template
}

// NewFormatter creates a new Formatter instance.
func NewFormatter() *Formatter {
	return &Formatter{
		user:   template.Must(template.New("user").Parse(userTemplate)),
		member: template.Must(template.New("member").Parse(memberTemplate)),
		roster: template.Must(template.New("roster").Parse(rosterTemplate)),
	}
}

// FormatUser renders a resolved user.
func (f *Formatter) FormatUser(user *domain.User, profileURL string) (string, error) {
	return f.execute(f.user, UserData{User: user, ProfileURL: profileURL})
}

// FormatMember renders a resolved member.
func (f *Formatter) FormatMember(member *domain.Member, profileURL string) (string, error) {
	return f.execute(f.member, MemberData{Member: member, ProfileURL: profileURL})
}

// FormatRoster renders a guild roster.
func (f *Formatter) FormatRoster(guildID domain.Snowflake, members []*domain.Member) (string, error) {
	return f.execute(f.roster, RosterData{GuildID: guildID, Members: members})
}

func (f *Formatter) execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

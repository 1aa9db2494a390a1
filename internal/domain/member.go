package domain

import "strings"

// Member is a person taking part in one or more generations.
type Member struct {
	ID             MemberID
	GithubUsername string
	DiscordID      *string
	Name           string
}

func NewMember(githubUsername, name string, discordID *string) (*Member, error) {
	githubUsername = strings.TrimSpace(githubUsername)
	if githubUsername == "" {
		return nil, newDomainError(CodeInvalidMember, "github username must not be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = githubUsername
	}
	return &Member{GithubUsername: githubUsername, Name: name, DiscordID: discordID}, nil
}

package dtos

type MemberInput struct {
	GithubUsername string  `json:"github_username" binding:"required"`
	Name           string  `json:"name"`
	DiscordID      *string `json:"discord_id"`
	GenerationID   *uint   `json:"generation_id"`
}

type JoinGenerationInput struct {
	MemberID uint `json:"member_id" binding:"required"`
}

type MemberResponse struct {
	ID             uint    `json:"id"`
	GithubUsername string  `json:"github_username"`
	Name           string  `json:"name"`
	DiscordID      *string `json:"discord_id,omitempty"`
}

type MultiMembersResponse struct {
	Members  []MemberResponse `json:"members"`
	PageInfo PagingInfo       `json:"page_info"`
}

type PagingInfo struct {
	TotalCount  int64 `json:"total_count"`
	Count       int   `json:"count"`
	Page        int   `json:"page"`
	HasNextPage bool  `json:"has_next_page"`
}

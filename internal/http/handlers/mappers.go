package handlers

import (
	"github.com/just-nibble/cycle-tracker/internal/domain"
	"github.com/just-nibble/cycle-tracker/internal/http/dtos"
	"github.com/just-nibble/cycle-tracker/internal/repository"
)

func toGenerationResponse(g *domain.Generation) dtos.GenerationResponse {
	return dtos.GenerationResponse{
		ID:        uint(g.ID),
		Name:      g.Name,
		StartedAt: g.StartedAt,
		IsActive:  g.IsActive,
	}
}

func toMemberResponse(m *domain.Member) dtos.MemberResponse {
	return dtos.MemberResponse{
		ID:             uint(m.ID),
		GithubUsername: m.GithubUsername,
		Name:           m.Name,
		DiscordID:      m.DiscordID,
	}
}

func toMemberResponses(members []domain.Member) []dtos.MemberResponse {
	out := make([]dtos.MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, toMemberResponse(&members[i]))
	}
	return out
}

func toPagingInfo(info repository.PageInfo) dtos.PagingInfo {
	return dtos.PagingInfo{
		TotalCount:  info.TotalCount,
		Count:       info.Count,
		Page:        info.Page,
		HasNextPage: info.HasNextPage,
	}
}

func toCycleResponse(c *domain.Cycle) dtos.CycleResponse {
	return dtos.CycleResponse{
		ID:             uint(c.ID),
		GenerationID:   uint(c.GenerationID),
		Name:           c.Name(),
		Week:           c.Week,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		GithubIssueURL: c.GithubIssueURL,
	}
}

func toSubmissionResponse(s *domain.Submission) dtos.SubmissionResponse {
	resp := dtos.SubmissionResponse{
		ID:          uint(s.ID),
		CycleID:     uint(s.CycleID),
		MemberID:    uint(s.MemberID),
		BlogURL:     s.BlogURL.String(),
		SubmittedAt: s.SubmittedAt,
	}
	if s.GithubCommentID != nil {
		id := s.GithubCommentID.String()
		resp.GithubCommentID = &id
	}
	return resp
}

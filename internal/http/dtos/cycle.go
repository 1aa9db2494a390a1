package dtos

import "time"

type CycleInput struct {
	GenerationID   uint      `json:"generation_id" binding:"required"`
	Week           int       `json:"week" binding:"required"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required"`
	GithubIssueURL *string   `json:"github_issue_url"`
}

type CycleResponse struct {
	ID             uint      `json:"id"`
	GenerationID   uint      `json:"generation_id"`
	Name           string    `json:"name"`
	Week           int       `json:"week"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	GithubIssueURL *string   `json:"github_issue_url,omitempty"`
}

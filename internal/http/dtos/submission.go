package dtos

import "time"

type SubmissionInput struct {
	CycleID  uint   `json:"cycle_id" binding:"required"`
	MemberID uint   `json:"member_id" binding:"required"`
	BlogURL  string `json:"blog_url" binding:"required"`
}

type SubmissionResponse struct {
	ID              uint      `json:"id"`
	CycleID         uint      `json:"cycle_id"`
	MemberID        uint      `json:"member_id"`
	BlogURL         string    `json:"blog_url"`
	SubmittedAt     time.Time `json:"submitted_at"`
	GithubCommentID *string   `json:"github_comment_id,omitempty"`
}

package dtos

import "time"

type GenerationInput struct {
	Name      string     `json:"name" binding:"required"`
	StartedAt *time.Time `json:"started_at"`
	// Activate makes the new generation the active one.
	Activate bool `json:"activate"`
}

type GenerationResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	StartedAt time.Time `json:"started_at"`
	IsActive  bool      `json:"is_active"`
}

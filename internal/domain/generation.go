package domain

import (
	"strings"
	"time"
)

// Generation is a cohort of members running through weekly cycles.
type Generation struct {
	ID        GenerationID
	Name      string
	StartedAt time.Time
	IsActive  bool
}

func NewGeneration(name string, startedAt time.Time) (*Generation, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, newDomainError(CodeInvalidGeneration, "generation name must not be empty")
	}
	return &Generation{Name: name, StartedAt: startedAt}, nil
}

func (g *Generation) Activate()   { g.IsActive = true }
func (g *Generation) Deactivate() { g.IsActive = false }

// Package session records derivations: sequences of transformation-rule
// applications starting from a premise graph.
//
// The rule engines themselves are stateless; a Session is the piece of state
// an external driver keeps while exploring transformations. Each step stores
// the rule, the address it was applied at, and the canonical result, so a
// finished derivation is fully replayable.
//
// Three Store backends are provided:
//   - memory: for tests and development
//   - file: JSON files under a directory, for CLI usage
//   - mongo: for server deployments
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Step is one rule application within a derivation.
type Step struct {
	Rule      string    `json:"rule" bson:"rule"`
	Address   []int     `json:"address" bson:"address"`
	Result    string    `json:"result" bson:"result"` // canonical graph after this step
	AppliedAt time.Time `json:"applied_at" bson:"applied_at"`
}

// Session is a recorded derivation: a premise graph plus the steps applied
// to it so far. Premise and Current hold canonical textual forms.
type Session struct {
	ID        string    `json:"id" bson:"_id"`
	Premise   string    `json:"premise" bson:"premise"`
	Current   string    `json:"current" bson:"current"`
	Steps     []Step    `json:"steps,omitempty" bson:"steps,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// New creates a session starting from the given canonical premise.
func New(premise string) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:        uuid.NewString(),
		Premise:   premise,
		Current:   premise,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Record appends one rule application and advances the current graph.
func (s *Session) Record(rule string, address []int, result string) {
	now := time.Now().UTC()
	s.Steps = append(s.Steps, Step{
		Rule:      rule,
		Address:   address,
		Result:    result,
		AppliedAt: now,
	})
	s.Current = result
	s.UpdatedAt = now
}

// Store persists sessions. Get returns a SESSION_NOT_FOUND coded error for
// unknown IDs; Put inserts or replaces; Delete of a missing ID is not an
// error.
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Put(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*Session, error)
	Close(ctx context.Context) error
}

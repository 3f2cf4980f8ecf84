// Package session holds the client-side profile state: the last-loaded
// aggregate and the page-level edit session with its draft bio.
package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/ntmai/folio-api/internal/client/api"
	"github.com/ntmai/folio-api/pkg/logger"
)

// Store is the slice of the access layer the session depends on.
type Store interface {
	LoadComplete(ctx context.Context) (*api.CompleteProfile, error)
	UpsertBio(ctx context.Context, bio string) (*api.Profile, error)
}

// ProfileSession is not safe for concurrent use: one user flow drives it,
// one operation in flight at a time.
type ProfileSession struct {
	store  Store
	logger logger.Logger

	aggregate *api.CompleteProfile
	draftBio  string
	editing   bool
	closed    bool
}

func NewProfileSession(store Store, log logger.Logger) *ProfileSession {
	return &ProfileSession{
		store:  store,
		logger: log,
	}
}

// Reload replaces the aggregate wholesale and resynchronizes the draft bio
// from the freshly loaded value. On failure the previous aggregate stays in
// place so the view never blanks out. After Close, any completion is a
// no-op.
func (s *ProfileSession) Reload(ctx context.Context) error {
	cp, err := s.store.LoadComplete(ctx)
	if err != nil {
		s.logger.Warn("Reload failed, keeping previous aggregate", zap.Error(err))
		return err
	}
	if s.closed {
		return nil
	}
	s.aggregate = cp
	s.draftBio = loadedBio(cp)
	return nil
}

func (s *ProfileSession) Aggregate() *api.CompleteProfile {
	return s.aggregate
}

func (s *ProfileSession) IsEditing() bool {
	return s.editing
}

// DraftBio returns the in-progress bio text; it only diverges from the
// loaded value while editing.
func (s *ProfileSession) DraftBio() string {
	return s.draftBio
}

// ToggleEdit flips between Viewing and Editing with no side effects.
func (s *ProfileSession) ToggleEdit() {
	s.editing = !s.editing
}

// SetBio mutates the draft. Outside of an edit session it is a no-op.
func (s *ProfileSession) SetBio(bio string) {
	if !s.editing {
		return
	}
	s.draftBio = bio
}

// Save persists the draft bio only when it differs from the last-loaded
// value, then always reloads to pick up concurrent edits, then returns to
// Viewing. On a failed write the session stays in Editing with the draft
// intact.
func (s *ProfileSession) Save(ctx context.Context) error {
	if !s.editing {
		return nil
	}

	if s.draftBio != loadedBio(s.aggregate) {
		if _, err := s.store.UpsertBio(ctx, s.draftBio); err != nil {
			s.logger.Error("Failed to save bio", err)
			return err
		}
	}

	// The write is already durable at this point; a failed reload keeps
	// the previous aggregate but still ends the edit session.
	reloadErr := s.Reload(ctx)
	if s.closed {
		return reloadErr
	}
	s.editing = false
	return reloadErr
}

// Cancel discards the draft, restores the last-loaded bio, and returns to
// Viewing without any store interaction.
func (s *ProfileSession) Cancel() {
	s.draftBio = loadedBio(s.aggregate)
	s.editing = false
}

// Close tears the session down: subsequent reload completions no longer
// touch its state.
func (s *ProfileSession) Close() {
	s.closed = true
}

func loadedBio(cp *api.CompleteProfile) string {
	if cp == nil || cp.Profile == nil {
		return ""
	}
	return cp.Profile.Bio
}

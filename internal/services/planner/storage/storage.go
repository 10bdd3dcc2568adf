// Package storage defines the persistence contracts for saved character
// builds. Only authoritative state crosses this boundary: identity, metadata,
// and invested points. Derived values such as trickle-down, caps, and the IP
// ledger are recomputed by the rules engine on load and never persisted.
package storage

import (
	"context"
	"time"

	apperrors "github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/errors"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/domain/anarchy"
)

// ErrNotFound indicates a requested persistence record is missing.
// Callers use this to differentiate between legitimate "no such profile"
// states and transport or data corruption failures.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// ProfileRecord is the authoritative build state for one saved character.
type ProfileRecord struct {
	ID         string
	Name       string
	Level      int
	Breed      string
	Profession string
	Faction    string
	// AbilityPoints holds invested IP points per ability in canonical order.
	AbilityPoints [anarchy.AbilityCount]int
	// SkillPoints holds invested IP points per skill. Skills with zero
	// invested points are omitted.
	SkillPoints map[anarchy.SkillID]int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProfileSummary is the metadata-only view used by list screens.
type ProfileSummary struct {
	ID         string
	Name       string
	Level      int
	Breed      string
	Profession string
	Faction    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProfilePage describes one page of profile summaries.
type ProfilePage struct {
	Profiles      []ProfileSummary
	NextPageToken string
}

// ProfileStore owns saved character builds.
type ProfileStore interface {
	// PutProfile inserts or replaces a profile and its invested points.
	PutProfile(ctx context.Context, record ProfileRecord) error
	// GetProfile returns ErrNotFound when no profile has the id.
	GetProfile(ctx context.Context, id string) (ProfileRecord, error)
	// ListProfiles returns a page of summaries ordered by id, starting after
	// the page token.
	ListProfiles(ctx context.Context, pageSize int, pageToken string) (ProfilePage, error)
	// DeleteProfile returns ErrNotFound when no profile has the id.
	DeleteProfile(ctx context.Context, id string) error
}

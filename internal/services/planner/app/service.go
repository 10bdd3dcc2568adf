// Package app exposes the planner's application operations: profile CRUD
// plus the build edits (level, abilities, skills) that route through the
// rules engine. The engine stays pure; this layer owns persistence, identity,
// and clocks, and every mutation persists the recomputed state before it
// returns.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/id"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/domain/anarchy"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/storage"
)

var tracer = otel.Tracer("planner/app")

// Page size bounds for profile listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Service bundles the reference tables with profile persistence.
type Service struct {
	tables *anarchy.Tables
	store  storage.ProfileStore
	now    func() time.Time
	newID  func() (string, error)
}

// Option configures optional Service dependencies.
type Option func(*Service)

// WithClock overrides the wall clock, primarily for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides profile ID generation, primarily for tests.
func WithIDGenerator(generate func() (string, error)) Option {
	return func(s *Service) {
		if generate != nil {
			s.newID = generate
		}
	}
}

// NewService wires the planner operations over the given tables and store.
func NewService(tables *anarchy.Tables, store storage.ProfileStore, opts ...Option) (*Service, error) {
	if tables == nil {
		return nil, fmt.Errorf("reference tables are required")
	}
	if store == nil {
		return nil, fmt.Errorf("profile store is required")
	}
	svc := &Service{
		tables: tables,
		store:  store,
		now:    time.Now,
		newID:  id.NewID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(svc)
		}
	}
	return svc, nil
}

// Tables exposes the reference tables backing this service.
func (s *Service) Tables() *anarchy.Tables {
	return s.tables
}

// CreateProfileParams describes a new build request. Breed is required;
// empty name, profession, faction, and level fall back to defaults.
type CreateProfileParams struct {
	Name       string
	Breed      string
	Profession string
	Faction    string
	Level      int
}

// CreateProfile builds a fresh profile at breed-base stats and persists it.
func (s *Service) CreateProfile(ctx context.Context, params CreateProfileParams) (ProfileView, error) {
	ctx, span := tracer.Start(ctx, "app.CreateProfile")
	defer span.End()

	profile, err := anarchy.NewDefaultProfile(s.tables, params.Name, params.Breed, params.Profession)
	if err != nil {
		return ProfileView{}, err
	}
	if faction := strings.TrimSpace(params.Faction); faction != "" {
		profile.Faction = faction
	}
	if params.Level != 0 {
		if err := anarchy.SetLevel(s.tables, profile, params.Level); err != nil {
			return ProfileView{}, err
		}
	}

	profileID, err := s.newID()
	if err != nil {
		return ProfileView{}, fmt.Errorf("generate profile id: %w", err)
	}
	profile.ID = profileID
	span.SetAttributes(attribute.String("profile.id", profileID))

	now := s.now().UTC()
	if err := s.store.PutProfile(ctx, profileToRecord(profile, now, now)); err != nil {
		return ProfileView{}, fmt.Errorf("save profile: %w", err)
	}
	return s.profileView(profile, now, now), nil
}

// GetProfile loads a saved build and recomputes all derived values.
func (s *Service) GetProfile(ctx context.Context, profileID string) (ProfileView, error) {
	ctx, span := tracer.Start(ctx, "app.GetProfile")
	defer span.End()
	span.SetAttributes(attribute.String("profile.id", profileID))

	record, profile, err := s.load(ctx, profileID)
	if err != nil {
		return ProfileView{}, err
	}
	return s.profileView(profile, record.CreatedAt, record.UpdatedAt), nil
}

// ListProfiles returns a page of profile summaries ordered by id.
func (s *Service) ListProfiles(ctx context.Context, pageSize int, pageToken string) (ProfileListView, error) {
	ctx, span := tracer.Start(ctx, "app.ListProfiles")
	defer span.End()

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	page, err := s.store.ListProfiles(ctx, pageSize, pageToken)
	if err != nil {
		return ProfileListView{}, fmt.Errorf("list profiles: %w", err)
	}

	view := ProfileListView{
		Profiles:      make([]ProfileSummaryView, 0, len(page.Profiles)),
		NextPageToken: page.NextPageToken,
	}
	for _, summary := range page.Profiles {
		view.Profiles = append(view.Profiles, summaryView(summary))
	}
	return view, nil
}

// DeleteProfile removes a saved build.
func (s *Service) DeleteProfile(ctx context.Context, profileID string) error {
	ctx, span := tracer.Start(ctx, "app.DeleteProfile")
	defer span.End()
	span.SetAttributes(attribute.String("profile.id", profileID))

	if err := s.store.DeleteProfile(ctx, profileID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// load fetches a record and rebuilds the full derived profile state.
func (s *Service) load(ctx context.Context, profileID string) (storage.ProfileRecord, *anarchy.Profile, error) {
	record, err := s.store.GetProfile(ctx, profileID)
	if err != nil {
		return storage.ProfileRecord{}, nil, fmt.Errorf("load profile: %w", err)
	}
	return record, recordToProfile(s.tables, record), nil
}

// persist writes the profile back with a refreshed update timestamp and
// renders the caller-facing view.
func (s *Service) persist(ctx context.Context, profile *anarchy.Profile, createdAt time.Time) (ProfileView, error) {
	now := s.now().UTC()
	if err := s.store.PutProfile(ctx, profileToRecord(profile, createdAt, now)); err != nil {
		return ProfileView{}, fmt.Errorf("save profile: %w", err)
	}
	return s.profileView(profile, createdAt, now), nil
}

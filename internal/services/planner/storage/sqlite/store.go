// Package sqlite implements the planner profile store on SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	apperrors "github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/errors"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/storage/sqlitemigrate"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/domain/anarchy"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/storage"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store implements planner persistence over SQLite.
//
// A single SQLite file holds profile metadata and invested points so a saved
// build round-trips through one transaction boundary.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.ProfileStore = (*Store)(nil)

// Open opens a planner SQLite store and applies bundled migrations.
//
// This keeps startup and schema evolution in one place, instead of requiring
// callers to coordinate migrations independently.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.ProfilesFS, "profiles"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite database.
//
// Close is intentionally nil-safe so callers can defer it in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

const upsertProfileSQL = `
INSERT INTO profiles (id, name, level, breed, profession, faction, created_at, updated_at)
VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8)
ON CONFLICT(id) DO UPDATE SET
    name = excluded.name,
    level = excluded.level,
    breed = excluded.breed,
    profession = excluded.profession,
    faction = excluded.faction,
    updated_at = excluded.updated_at;
`

// PutProfile inserts or replaces a profile and its invested points.
//
// Point rows are rewritten wholesale inside one transaction; a partially
// updated build can never become visible to readers.
func (s *Store) PutProfile(ctx context.Context, record storage.ProfileRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(record.ID) == "" {
		return apperrors.New(apperrors.CodeProfileEmptyID, "profile id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put profile: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, upsertProfileSQL,
		record.ID,
		record.Name,
		record.Level,
		record.Breed,
		record.Profession,
		record.Faction,
		toMillis(record.CreatedAt),
		toMillis(record.UpdatedAt),
	); err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM profile_abilities WHERE profile_id = ?1", record.ID); err != nil {
		return fmt.Errorf("clear profile abilities: %w", err)
	}
	for ability, points := range record.AbilityPoints {
		if points == 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO profile_abilities (profile_id, ability, points) VALUES (?1, ?2, ?3)",
			record.ID, ability, points,
		); err != nil {
			return fmt.Errorf("insert profile ability: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM profile_skills WHERE profile_id = ?1", record.ID); err != nil {
		return fmt.Errorf("clear profile skills: %w", err)
	}
	for skillID, points := range record.SkillPoints {
		if points == 0 {
			continue
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO profile_skills (profile_id, skill_id, points) VALUES (?1, ?2, ?3)",
			record.ID, int(skillID), points,
		); err != nil {
			return fmt.Errorf("insert profile skill: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put profile: %w", err)
	}
	return nil
}

const getProfileSQL = `
SELECT id, name, level, breed, profession, faction, created_at, updated_at
FROM profiles
WHERE id = ?1;
`

// GetProfile loads one profile with its invested points.
func (s *Store) GetProfile(ctx context.Context, id string) (storage.ProfileRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.ProfileRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ProfileRecord{}, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return storage.ProfileRecord{}, apperrors.New(apperrors.CodeProfileEmptyID, "profile id is required")
	}

	var record storage.ProfileRecord
	var createdAt, updatedAt int64
	err := s.sqlDB.QueryRowContext(ctx, getProfileSQL, id).Scan(
		&record.ID,
		&record.Name,
		&record.Level,
		&record.Breed,
		&record.Profession,
		&record.Faction,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ProfileRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.ProfileRecord{}, fmt.Errorf("get profile: %w", err)
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)

	rows, err := s.sqlDB.QueryContext(ctx,
		"SELECT ability, points FROM profile_abilities WHERE profile_id = ?1", id)
	if err != nil {
		return storage.ProfileRecord{}, fmt.Errorf("get profile abilities: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var ability, points int
		if err := rows.Scan(&ability, &points); err != nil {
			return storage.ProfileRecord{}, fmt.Errorf("scan profile ability: %w", err)
		}
		if ability < 0 || ability >= anarchy.AbilityCount {
			continue
		}
		record.AbilityPoints[ability] = points
	}
	if err := rows.Err(); err != nil {
		return storage.ProfileRecord{}, fmt.Errorf("read profile abilities: %w", err)
	}

	skillRows, err := s.sqlDB.QueryContext(ctx,
		"SELECT skill_id, points FROM profile_skills WHERE profile_id = ?1", id)
	if err != nil {
		return storage.ProfileRecord{}, fmt.Errorf("get profile skills: %w", err)
	}
	defer skillRows.Close()
	record.SkillPoints = make(map[anarchy.SkillID]int)
	for skillRows.Next() {
		var skillID, points int
		if err := skillRows.Scan(&skillID, &points); err != nil {
			return storage.ProfileRecord{}, fmt.Errorf("scan profile skill: %w", err)
		}
		record.SkillPoints[anarchy.SkillID(skillID)] = points
	}
	if err := skillRows.Err(); err != nil {
		return storage.ProfileRecord{}, fmt.Errorf("read profile skills: %w", err)
	}

	return record, nil
}

const listProfilesFirstSQL = `
SELECT id, name, level, breed, profession, faction, created_at, updated_at
FROM profiles
ORDER BY id
LIMIT ?1;
`

const listProfilesAfterSQL = `
SELECT id, name, level, breed, profession, faction, created_at, updated_at
FROM profiles
WHERE id > ?1
ORDER BY id
LIMIT ?2;
`

// ListProfiles returns a page of profile summaries ordered by storage key.
func (s *Store) ListProfiles(ctx context.Context, pageSize int, pageToken string) (storage.ProfilePage, error) {
	if err := ctx.Err(); err != nil {
		return storage.ProfilePage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ProfilePage{}, fmt.Errorf("storage is not configured")
	}
	if pageSize <= 0 {
		return storage.ProfilePage{}, fmt.Errorf("page size must be greater than zero")
	}

	var rows *sql.Rows
	var err error
	if pageToken == "" {
		rows, err = s.sqlDB.QueryContext(ctx, listProfilesFirstSQL, pageSize+1)
	} else {
		rows, err = s.sqlDB.QueryContext(ctx, listProfilesAfterSQL, pageToken, pageSize+1)
	}
	if err != nil {
		return storage.ProfilePage{}, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	page := storage.ProfilePage{
		Profiles: make([]storage.ProfileSummary, 0, pageSize),
	}
	for rows.Next() {
		var summary storage.ProfileSummary
		var createdAt, updatedAt int64
		if err := rows.Scan(
			&summary.ID,
			&summary.Name,
			&summary.Level,
			&summary.Breed,
			&summary.Profession,
			&summary.Faction,
			&createdAt,
			&updatedAt,
		); err != nil {
			return storage.ProfilePage{}, fmt.Errorf("scan profile summary: %w", err)
		}
		summary.CreatedAt = fromMillis(createdAt)
		summary.UpdatedAt = fromMillis(updatedAt)
		if len(page.Profiles) >= pageSize {
			page.NextPageToken = page.Profiles[pageSize-1].ID
			break
		}
		page.Profiles = append(page.Profiles, summary)
	}
	if err := rows.Err(); err != nil {
		return storage.ProfilePage{}, fmt.Errorf("read profile summaries: %w", err)
	}

	return page, nil
}

// DeleteProfile removes a profile and, via cascade, its invested points.
func (s *Store) DeleteProfile(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(id) == "" {
		return apperrors.New(apperrors.CodeProfileEmptyID, "profile id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, "DELETE FROM profiles WHERE id = ?1", id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete profile rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

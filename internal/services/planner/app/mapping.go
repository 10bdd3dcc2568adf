package app

import (
	"time"

	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/domain/anarchy"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/storage"
)

// recordToProfile rebuilds the full derived profile state from the
// authoritative invested points. Recalculate materializes catalog skills the
// record omitted and re-derives every value, cap, and the IP ledger.
func recordToProfile(tables *anarchy.Tables, record storage.ProfileRecord) *anarchy.Profile {
	p := &anarchy.Profile{
		ID:         record.ID,
		Name:       record.Name,
		Level:      record.Level,
		Breed:      record.Breed,
		Profession: record.Profession,
		Faction:    record.Faction,
		Skills:     make(map[anarchy.SkillID]anarchy.Skill, len(record.SkillPoints)),
	}
	for i := range p.Abilities {
		p.Abilities[i].PointsFromIP = record.AbilityPoints[i]
	}
	for skillID, points := range record.SkillPoints {
		p.Skills[skillID] = anarchy.Skill{ID: skillID, PointsFromIP: points}
	}
	anarchy.Recalculate(tables, p)
	return p
}

// profileToRecord strips the profile down to its authoritative fields.
func profileToRecord(p *anarchy.Profile, createdAt, updatedAt time.Time) storage.ProfileRecord {
	record := storage.ProfileRecord{
		ID:          p.ID,
		Name:        p.Name,
		Level:       p.Level,
		Breed:       p.Breed,
		Profession:  p.Profession,
		Faction:     p.Faction,
		SkillPoints: make(map[anarchy.SkillID]int),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	for i := range p.Abilities {
		record.AbilityPoints[i] = p.Abilities[i].PointsFromIP
	}
	for skillID, skill := range p.Skills {
		if skill.PointsFromIP != 0 {
			record.SkillPoints[skillID] = skill.PointsFromIP
		}
	}
	return record
}

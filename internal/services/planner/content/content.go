// Package content loads the embedded Anarchy Online rules pack: breeds,
// professions, the skill registry, and the IP grant schedule. Every JSON
// document is validated against its schema before it is decoded, so a broken
// pack fails at startup instead of mispricing builds later.
package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	apperrors "github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/platform/errors"
	"github.com/TheTinkeringIdiot/Tinkertools-sub006/internal/services/planner/domain/anarchy"
)

//go:embed pack
var packFS embed.FS

const (
	packSystemID      = "anarchy"
	packSystemVersion = "v1"
)

// Load builds the reference tables from the pack compiled into the binary.
func Load() (*anarchy.Tables, error) {
	return load(packFS, "pack")
}

// LoadDir builds reference tables from a pack directory on disk, applying the
// same schema validation as the embedded pack. The directory must carry the
// data files and a schema/ subdirectory.
func LoadDir(dir string) (*anarchy.Tables, error) {
	return load(os.DirFS(dir), ".")
}

func load(fsys fs.FS, root string) (*anarchy.Tables, error) {
	breedsDoc, err := loadValidated[breedPayload](fsys, path.Join(root, "breeds.json"), path.Join(root, "schema/breeds.schema.json"))
	if err != nil {
		return nil, err
	}
	professionsDoc, err := loadValidated[professionPayload](fsys, path.Join(root, "professions.json"), path.Join(root, "schema/professions.schema.json"))
	if err != nil {
		return nil, err
	}
	skillsDoc, err := loadValidated[skillPayload](fsys, path.Join(root, "skills.json"), path.Join(root, "schema/skills.schema.json"))
	if err != nil {
		return nil, err
	}
	if err := checkEnvelope("breeds.json", breedsDoc.SystemID, breedsDoc.SystemVersion, breedsDoc.Source); err != nil {
		return nil, err
	}
	if err := checkEnvelope("professions.json", professionsDoc.SystemID, professionsDoc.SystemVersion, professionsDoc.Source); err != nil {
		return nil, err
	}
	if err := checkEnvelope("skills.json", skillsDoc.SystemID, skillsDoc.SystemVersion, skillsDoc.Source); err != nil {
		return nil, err
	}

	schedule, err := loadTuning(fsys, path.Join(root, "tuning.yaml"))
	if err != nil {
		return nil, err
	}

	breeds, err := toBreeds(breedsDoc.Items)
	if err != nil {
		return nil, err
	}
	professions, err := toProfessions(professionsDoc.Items)
	if err != nil {
		return nil, err
	}
	skills, err := toSkills(skillsDoc.Items)
	if err != nil {
		return nil, err
	}

	return anarchy.NewTables(breeds, professions, skills, schedule)
}

// loadValidated reads a pack document, checks it against its JSON schema, and
// decodes it into the typed payload.
func loadValidated[T any](fsys fs.FS, dataPath, schemaPath string) (*T, error) {
	schemaRaw, err := fs.ReadFile(fsys, schemaPath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeContentInvalidPack, fmt.Sprintf("read %s", schemaPath), err)
	}
	schema, err := jsonschema.CompileString(path.Base(schemaPath), string(schemaRaw))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeContentInvalidPack, fmt.Sprintf("compile %s", schemaPath), err)
	}

	raw, err := fs.ReadFile(fsys, dataPath)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeContentInvalidPack, fmt.Sprintf("read %s", dataPath), err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeContentInvalidPack, fmt.Sprintf("decode %s", dataPath), err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeContentInvalidPack, fmt.Sprintf("validate %s", dataPath), err)
	}

	var payload T
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeContentInvalidPack, fmt.Sprintf("decode %s", dataPath), err)
	}
	return &payload, nil
}

func loadTuning(fsys fs.FS, tuningPath string) (anarchy.IPSchedule, error) {
	raw, err := fs.ReadFile(fsys, tuningPath)
	if err != nil {
		return anarchy.IPSchedule{}, apperrors.Wrap(apperrors.CodeContentInvalidPack, fmt.Sprintf("read %s", tuningPath), err)
	}
	var tuning tuningPayload
	if err := yaml.Unmarshal(raw, &tuning); err != nil {
		return anarchy.IPSchedule{}, apperrors.Wrap(apperrors.CodeContentInvalidPack, fmt.Sprintf("decode %s", tuningPath), err)
	}
	if tuning.SchemaVersion != packSystemVersion {
		return anarchy.IPSchedule{}, apperrors.New(
			apperrors.CodeContentInvalidPack,
			fmt.Sprintf("tuning schema version %q, want %q", tuning.SchemaVersion, packSystemVersion),
		)
	}

	schedule := anarchy.IPSchedule{Base: tuning.IPSchedule.Base}
	for _, bracket := range tuning.IPSchedule.Brackets {
		schedule.Brackets = append(schedule.Brackets, anarchy.IPBracket{
			From:     bracket.From,
			To:       bracket.To,
			PerLevel: bracket.PerLevel,
		})
	}
	return schedule, nil
}

func checkEnvelope(name, systemID, systemVersion, source string) error {
	if systemID != packSystemID {
		return apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("%s: unsupported system id %q", name, systemID))
	}
	if systemVersion != packSystemVersion {
		return apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("%s: unsupported system version %q", name, systemVersion))
	}
	if strings.TrimSpace(source) == "" {
		return apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("%s: source is required", name))
	}
	return nil
}

// abilityVector resolves a map keyed by ability name into the fixed six-slot
// array. When required is set, every ability must be present.
func abilityVector(owner string, byName map[string]int, required bool) ([anarchy.AbilityCount]int, error) {
	var out [anarchy.AbilityCount]int
	seen := 0
	for name, value := range byName {
		id, err := anarchy.ParseAbility(name)
		if err != nil {
			return out, apperrors.Wrap(apperrors.CodeContentInvalidPack, fmt.Sprintf("%s: unknown ability %q", owner, name), err)
		}
		out[id] = value
		seen++
	}
	if required && seen != anarchy.AbilityCount {
		return out, apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("%s: all six abilities are required", owner))
	}
	return out, nil
}

func toBreeds(items []breedRecord) ([]anarchy.Breed, error) {
	breeds := make([]anarchy.Breed, 0, len(items))
	for _, item := range items {
		breed := anarchy.Breed{ID: item.ID, Name: item.Name}
		if len(item.Abilities) != anarchy.AbilityCount {
			return nil, apperrors.New(apperrors.CodeContentInvalidPack, fmt.Sprintf("breed %q: all six abilities are required", item.ID))
		}
		for name, stats := range item.Abilities {
			id, err := anarchy.ParseAbility(name)
			if err != nil {
				return nil, apperrors.Wrap(apperrors.CodeContentInvalidPack, fmt.Sprintf("breed %q: unknown ability %q", item.ID, name), err)
			}
			breed.Base[id] = stats.Base
			breed.GrowthTenths[id] = stats.GrowthTenths
			breed.HardCap[id] = stats.HardCap
			breed.CostTenths[id] = stats.CostTenths
		}
		breeds = append(breeds, breed)
	}
	return breeds, nil
}

func toProfessions(items []professionRecord) ([]anarchy.Profession, error) {
	professions := make([]anarchy.Profession, 0, len(items))
	for _, item := range items {
		prof := anarchy.Profession{ID: item.ID, Name: item.Name}
		if len(item.CapShift) > 0 {
			shift, err := abilityVector(fmt.Sprintf("profession %q", item.ID), item.CapShift, false)
			if err != nil {
				return nil, err
			}
			prof.CapShift = shift
		}
		if len(item.Specializations) > 0 {
			prof.Specializations = make(map[anarchy.SkillID]int, len(item.Specializations))
			for _, spec := range item.Specializations {
				prof.Specializations[anarchy.SkillID(spec.SkillID)] = spec.CostTenths
			}
		}
		professions = append(professions, prof)
	}
	return professions, nil
}

func toSkills(items []skillRecord) ([]anarchy.SkillDef, error) {
	skills := make([]anarchy.SkillDef, 0, len(items))
	for _, item := range items {
		weights, err := abilityVector(fmt.Sprintf("skill %q", item.Name), item.TrickleTenths, true)
		if err != nil {
			return nil, err
		}
		skills = append(skills, anarchy.SkillDef{
			ID:         anarchy.SkillID(item.ID),
			Name:       item.Name,
			Category:   item.Category,
			BaseValue:  item.Base,
			CostTenths: item.CostTenths,
			Weights:    anarchy.Weights(weights),
		})
	}
	return skills, nil
}

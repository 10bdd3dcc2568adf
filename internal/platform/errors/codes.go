// Package errors provides structured error handling for planner services.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Planner engine errors
	CodePlannerInvalidLevel      Code = "PLANNER_INVALID_LEVEL"
	CodePlannerUnknownBreed      Code = "PLANNER_UNKNOWN_BREED"
	CodePlannerUnknownProfession Code = "PLANNER_UNKNOWN_PROFESSION"
	CodePlannerUnknownAbility    Code = "PLANNER_UNKNOWN_ABILITY"
	CodePlannerUnknownSkill      Code = "PLANNER_UNKNOWN_SKILL"

	// Profile errors
	CodeProfileEmptyID Code = "PROFILE_EMPTY_ID"

	// Content pack errors
	CodeContentInvalidPack Code = "CONTENT_INVALID_PACK"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// Class groups codes by how callers should treat them.
type Class int

const (
	// ClassInternal covers unexpected failures.
	ClassInternal Class = iota
	// ClassInvalidArgument covers contract violations in caller-supplied input.
	ClassInvalidArgument
	// ClassNotFound covers lookups for resources that do not exist.
	ClassNotFound
)

// ErrorClass maps domain codes to caller-facing classes.
func (c Code) ErrorClass() Class {
	switch c {
	case CodePlannerInvalidLevel,
		CodePlannerUnknownBreed,
		CodePlannerUnknownProfession,
		CodePlannerUnknownAbility,
		CodePlannerUnknownSkill,
		CodeProfileEmptyID,
		CodeContentInvalidPack:
		return ClassInvalidArgument

	case CodeNotFound:
		return ClassNotFound

	default:
		return ClassInternal
	}
}

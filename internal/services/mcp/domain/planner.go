package domain

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AbilityEntry represents one core ability on a rendered build.
type AbilityEntry struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Value        int    `json:"value"`
	PointsFromIP int    `json:"points_from_ip"`
	Cap          int    `json:"cap"`
	BreedBase    int    `json:"breed_base"`
	CostTenths   int    `json:"cost_tenths"`
}

// SkillEntry represents one trainable skill on a rendered build.
type SkillEntry struct {
	ID           int    `json:"id"`
	Name         string `json:"name,omitempty"`
	Category     string `json:"category,omitempty"`
	Value        int    `json:"value"`
	BaseValue    int    `json:"base_value"`
	TrickleDown  int    `json:"trickle_down"`
	PointsFromIP int    `json:"points_from_ip"`
	Cap          int    `json:"cap"`
	CostTenths   int    `json:"cost_tenths"`
}

// BudgetEntry represents the Improvement Point ledger of a build.
type BudgetEntry struct {
	TotalAvailable int     `json:"total_available"`
	TotalUsed      int     `json:"total_used"`
	AbilityIP      int     `json:"ability_ip"`
	SkillIP        int     `json:"skill_ip"`
	Remaining      int     `json:"remaining"`
	Efficiency     float64 `json:"efficiency"`
}

// AdjustmentEntry reports what a stat edit actually applied and why it was
// clamped, if it was.
type AdjustmentEntry struct {
	Kind      string `json:"kind"`
	Stat      string `json:"stat"`
	Requested int    `json:"requested"`
	Applied   int    `json:"applied"`
	Clamped   bool   `json:"clamped"`
	Reason    string `json:"reason,omitempty"`
}

// ProfileCreateInput represents the MCP tool input for profile creation.
type ProfileCreateInput struct {
	Name       string `json:"name,omitempty" jsonschema:"character name (defaults when empty)"`
	Breed      string `json:"breed" jsonschema:"breed identifier (solitus, opifex, nanomage, atrox)"`
	Profession string `json:"profession,omitempty" jsonschema:"profession identifier (defaults when empty)"`
	Faction    string `json:"faction,omitempty" jsonschema:"faction label (defaults to Neutral)"`
	Level      int    `json:"level,omitempty" jsonschema:"character level 1..220 (defaults to 1)"`
}

// ProfileGetInput represents the MCP tool input for loading one profile.
type ProfileGetInput struct {
	ProfileID string `json:"profile_id" jsonschema:"profile identifier"`
}

// ProfileListInput represents the MCP tool input for listing profiles.
type ProfileListInput struct {
	PageSize  int    `json:"page_size,omitempty" jsonschema:"maximum profiles per page (defaults to 20)"`
	PageToken string `json:"page_token,omitempty" jsonschema:"token from a previous page"`
}

// ProfileDeleteInput represents the MCP tool input for deleting one profile.
type ProfileDeleteInput struct {
	ProfileID string `json:"profile_id" jsonschema:"profile identifier"`
}

// AbilitySetInput represents the MCP tool input for targeting an ability value.
type AbilitySetInput struct {
	ProfileID string `json:"profile_id" jsonschema:"profile identifier"`
	Ability   string `json:"ability" jsonschema:"ability name (Strength, Agility, Stamina, Intelligence, Sense, Psychic)"`
	Target    int    `json:"target" jsonschema:"desired ability value; clamps to breed floor, cap, and budget"`
}

// SkillSetInput represents the MCP tool input for targeting a skill value.
type SkillSetInput struct {
	ProfileID string `json:"profile_id" jsonschema:"profile identifier"`
	SkillID   int    `json:"skill_id,omitempty" jsonschema:"numeric skill identifier"`
	Skill     string `json:"skill,omitempty" jsonschema:"skill name; takes precedence over skill_id when set"`
	Target    int    `json:"target" jsonschema:"desired skill value; clamps to trickle floor, level ceiling, and budget"`
}

// SkillResetInput represents the MCP tool input for withdrawing a skill's points.
type SkillResetInput struct {
	ProfileID string `json:"profile_id" jsonschema:"profile identifier"`
	SkillID   int    `json:"skill_id,omitempty" jsonschema:"numeric skill identifier"`
	Skill     string `json:"skill,omitempty" jsonschema:"skill name; takes precedence over skill_id when set"`
}

// LevelSetInput represents the MCP tool input for changing a profile's level.
type LevelSetInput struct {
	ProfileID string `json:"profile_id" jsonschema:"profile identifier"`
	Level     int    `json:"level" jsonschema:"character level 1..220"`
}

// IPReportInput represents the MCP tool input for the IP spending report.
type IPReportInput struct {
	ProfileID string `json:"profile_id" jsonschema:"profile identifier"`
}

// SkillsListInput represents the MCP tool input for browsing the skill catalog.
type SkillsListInput struct {
	Category string `json:"category,omitempty" jsonschema:"optional category filter (case-insensitive)"`
}

// ProfileResult represents a fully recomputed build.
type ProfileResult struct {
	ID         string         `json:"id" jsonschema:"profile identifier"`
	Name       string         `json:"name"`
	Level      int            `json:"level"`
	Breed      string         `json:"breed"`
	Profession string         `json:"profession"`
	Faction    string         `json:"faction"`
	Abilities  []AbilityEntry `json:"abilities"`
	Skills     []SkillEntry   `json:"skills"`
	Budget     BudgetEntry    `json:"budget"`
	CreatedAt  string         `json:"created_at" jsonschema:"RFC3339 timestamp when the profile was created"`
	UpdatedAt  string         `json:"updated_at" jsonschema:"RFC3339 timestamp when the profile was last updated"`
}

// StatChangeResult represents the MCP tool output for ability and skill edits.
type StatChangeResult struct {
	Adjustment AdjustmentEntry `json:"adjustment"`
	Profile    ProfileResult   `json:"profile"`
}

// ProfileListEntry represents one profile summary row.
type ProfileListEntry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Level      int    `json:"level"`
	Breed      string `json:"breed"`
	Profession string `json:"profession"`
	Faction    string `json:"faction"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

// ProfileListResult represents the MCP tool output for profile listings.
type ProfileListResult struct {
	Profiles      []ProfileListEntry `json:"profiles"`
	NextPageToken string             `json:"next_page_token,omitempty" jsonschema:"token for the next page; empty on the last page"`
}

// ProfileDeleteResult represents the MCP tool output for profile deletion.
type ProfileDeleteResult struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

// CategoryBudgetEntry represents per-category IP spending.
type CategoryBudgetEntry struct {
	Category string `json:"category"`
	Skills   int    `json:"skills"`
	Invested int    `json:"invested"`
	Points   int    `json:"points"`
	SkillIP  int    `json:"skill_ip"`
	AtCap    int    `json:"at_cap"`
}

// IPReportResult represents the MCP tool output for the IP spending report.
type IPReportResult struct {
	ProfileID  string                `json:"profile_id"`
	Name       string                `json:"name"`
	Level      int                   `json:"level"`
	Breed      string                `json:"breed"`
	Profession string                `json:"profession"`
	Budget     BudgetEntry           `json:"budget"`
	Categories []CategoryBudgetEntry `json:"categories"`
}

// SkillCatalogResultEntry represents one catalog skill.
type SkillCatalogResultEntry struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	Category   string         `json:"category"`
	BaseValue  int            `json:"base_value"`
	CostTenths int            `json:"cost_tenths"`
	Trickle    map[string]int `json:"trickle,omitempty" jsonschema:"trickle-down weights in tenths per contributing ability"`
}

// SkillsListResult represents the MCP tool output for the skill catalog.
type SkillsListResult struct {
	Skills []SkillCatalogResultEntry `json:"skills"`
}

// SkillCatalogPayload represents the MCP resource payload for the catalog.
type SkillCatalogPayload struct {
	Skills []SkillCatalogResultEntry `json:"skills"`
}

// ProfileCreateTool defines the MCP tool schema for creating profiles.
func ProfileCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "profile_create",
		Description: "Creates a new character build at breed-base stats",
	}
}

// ProfileGetTool defines the MCP tool schema for loading a profile.
func ProfileGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "profile_get",
		Description: "Loads a saved build and recomputes all derived values",
	}
}

// ProfileListTool defines the MCP tool schema for listing profiles.
func ProfileListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "profile_list",
		Description: "Lists saved builds a page at a time",
	}
}

// ProfileDeleteTool defines the MCP tool schema for deleting a profile.
func ProfileDeleteTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "profile_delete",
		Description: "Deletes a saved build",
	}
}

// AbilitySetTool defines the MCP tool schema for ability edits.
func AbilitySetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "ability_set",
		Description: "Raises or lowers a core ability toward a target value",
	}
}

// SkillSetTool defines the MCP tool schema for skill edits.
func SkillSetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "skill_set",
		Description: "Raises or lowers a trainable skill toward a target value",
	}
}

// SkillResetTool defines the MCP tool schema for skill resets.
func SkillResetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "skill_reset",
		Description: "Withdraws every invested point from a skill",
	}
}

// LevelSetTool defines the MCP tool schema for level changes.
func LevelSetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "level_set",
		Description: "Changes the character level and recomputes caps and budget",
	}
}

// IPReportTool defines the MCP tool schema for the IP report.
func IPReportTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "ip_report",
		Description: "Summarizes Improvement Point spending by category",
	}
}

// SkillsListTool defines the MCP tool schema for catalog browsing.
func SkillsListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "skills_list",
		Description: "Browses the trainable skill catalog",
	}
}

// SkillCatalogResource defines the MCP resource for the skill catalog.
func SkillCatalogResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "skill_catalog",
		Title:       "Skill Catalog",
		Description: "Readable listing of every trainable skill and its trickle-down weights",
		MIMEType:    "application/json",
		URI:         "skills://catalog",
	}
}

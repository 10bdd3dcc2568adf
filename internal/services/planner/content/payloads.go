package content

type breedPayload struct {
	SystemID      string        `json:"system_id"`
	SystemVersion string        `json:"system_version"`
	Source        string        `json:"source"`
	Items         []breedRecord `json:"items"`
}

type breedRecord struct {
	ID        string                  `json:"id"`
	Name      string                  `json:"name"`
	Abilities map[string]abilityStats `json:"abilities"`
}

type abilityStats struct {
	Base         int `json:"base"`
	GrowthTenths int `json:"growth_tenths"`
	HardCap      int `json:"hard_cap"`
	CostTenths   int `json:"cost_tenths"`
}

type professionPayload struct {
	SystemID      string             `json:"system_id"`
	SystemVersion string             `json:"system_version"`
	Source        string             `json:"source"`
	Items         []professionRecord `json:"items"`
}

type professionRecord struct {
	ID              string                 `json:"id"`
	Name            string                 `json:"name"`
	CapShift        map[string]int         `json:"cap_shift,omitempty"`
	Specializations []specializationRecord `json:"specializations,omitempty"`
}

type specializationRecord struct {
	SkillID    int `json:"skill_id"`
	CostTenths int `json:"cost_tenths"`
}

type skillPayload struct {
	SystemID      string        `json:"system_id"`
	SystemVersion string        `json:"system_version"`
	Source        string        `json:"source"`
	Items         []skillRecord `json:"items"`
}

type skillRecord struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Base       int    `json:"base"`
	CostTenths int    `json:"cost_tenths"`
	// TrickleTenths maps ability names to trickle-down weights in tenths.
	TrickleTenths map[string]int `json:"trickle_tenths"`
}

type tuningPayload struct {
	SchemaVersion string          `yaml:"schema_version"`
	IPSchedule    schedulePayload `yaml:"ip_schedule"`
}

type schedulePayload struct {
	Base     int              `yaml:"base"`
	Brackets []bracketPayload `yaml:"brackets"`
}

type bracketPayload struct {
	From     int `yaml:"from"`
	To       int `yaml:"to"`
	PerLevel int `yaml:"per_level"`
}

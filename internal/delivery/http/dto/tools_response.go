package dto

// SkillGapResponse is the wire shape existing clients of the
// skill-gap-analyzer tool already consume. Field names and types are
// load-bearing; do not rename.
type SkillGapResponse struct {
	MatchScore      int      `json:"match_score"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
	SuggestedSkills []string `json:"suggested_skills"`
}

type SalaryResponse struct {
	Currency       string  `json:"currency"`
	MinSalary      int     `json:"min_salary"`
	MedianSalary   int     `json:"median_salary"`
	MaxSalary      int     `json:"max_salary"`
	LocationFactor float64 `json:"location_factor"`
}

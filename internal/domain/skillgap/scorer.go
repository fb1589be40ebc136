package skillgap

import (
	"math"
	"strings"
)

// ExperienceLevel selects which suggested skills are surfaced first. It has
// no effect on the match percentage.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

// ParseLevel is lenient: the scorer is strict on role identity only, so an
// unrecognized level falls back to intermediate instead of failing.
func ParseLevel(s string) ExperienceLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(LevelBeginner):
		return LevelBeginner
	case string(LevelAdvanced):
		return LevelAdvanced
	default:
		return LevelIntermediate
	}
}

const maxSuggested = 3

// Result is the outcome of one skill-gap computation. MatchingSkills and
// MissingSkills carry the role table's canonical casing; together the
// core subset of MatchingSkills and MissingSkills partition the role's
// core skill list.
type Result struct {
	MatchScore      int
	MatchingSkills  []string
	MissingSkills   []string
	SuggestedSkills []string
}

// Compute compares a user's self-reported skills against the reference
// profile for roleID.
//
// Skill comparison is exact string match after normalization; there is no
// fuzzy or synonym matching ("js" does not match "javascript"). That is a
// deliberate simplicity choice, not an oversight: anything looser needs
// product sign-off on the synonym table first.
func Compute(roleID, userSkillsText string, level ExperienceLevel) (Result, error) {
	role, err := LookupRole(roleID)
	if err != nil {
		return Result{}, err
	}

	userSet := toSet(Normalize(userSkillsText))

	matching := make([]string, 0, len(role.CoreSkills)+len(role.OptionalSkills))
	coreMatched := 0
	for _, s := range role.CoreSkills {
		if _, ok := userSet[strings.ToLower(s)]; ok {
			matching = append(matching, s)
			coreMatched++
		}
	}
	for _, s := range role.OptionalSkills {
		if _, ok := userSet[strings.ToLower(s)]; ok {
			matching = append(matching, s)
		}
	}

	missing := make([]string, 0, len(role.CoreSkills))
	for _, s := range role.CoreSkills {
		if _, ok := userSet[strings.ToLower(s)]; !ok {
			missing = append(missing, s)
		}
	}

	score := 0
	if len(role.CoreSkills) > 0 {
		score = int(math.Round(100 * float64(coreMatched) / float64(len(role.CoreSkills))))
	}

	return Result{
		MatchScore:      score,
		MatchingSkills:  matching,
		MissingSkills:   missing,
		SuggestedSkills: suggest(role, userSet, level),
	}, nil
}

// suggest picks up to maxSuggested optional skills the user does not
// already have. The ordering rule per level is fixed and testable:
// beginner and intermediate see the role-list order (foundational first);
// advanced sees it reversed, surfacing the later, more specialized entries.
func suggest(role RoleProfile, userSet map[string]struct{}, level ExperienceLevel) []string {
	candidates := make([]string, 0, len(role.OptionalSkills))
	for _, s := range role.OptionalSkills {
		if _, ok := userSet[strings.ToLower(s)]; ok {
			continue
		}
		candidates = append(candidates, s)
	}

	if level == LevelAdvanced {
		for i, j := 0, len(candidates)-1; i < j; i, j = i+1, j-1 {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		}
	}

	if len(candidates) > maxSuggested {
		candidates = candidates[:maxSuggested]
	}
	return candidates
}

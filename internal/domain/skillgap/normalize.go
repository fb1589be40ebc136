package skillgap

import "strings"

// Normalize turns free-text comma-separated skill input into a clean token
// list: split on commas, trim whitespace, case-fold, drop empties, dedupe.
// First-seen order is preserved. Empty or whitespace-only input yields an
// empty list, never an error.
func Normalize(userSkillsText string) []string {
	parts := strings.Split(userSkillsText, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		tok := strings.ToLower(strings.TrimSpace(p))
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

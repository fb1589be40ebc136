package skillgap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// RoleTableVersion identifies the reference role table below. Bump it when
// the role set or any skill list changes.
const RoleTableVersion = 1

var ErrUnknownRole = errors.New("unknown role")

// RoleProfile is immutable reference data: the skills a role requires and
// the complementary skills that strengthen a candidate for it. Optional
// skills are listed foundational-first.
type RoleProfile struct {
	ID             string
	Name           string
	CoreSkills     []string
	OptionalSkills []string
}

var roleTable = map[string]RoleProfile{
	"frontend": {
		ID:             "frontend",
		Name:           "Frontend Developer",
		CoreSkills:     []string{"HTML", "CSS", "JavaScript", "React"},
		OptionalSkills: []string{"TypeScript", "Testing", "Next.js", "GraphQL", "Web Performance"},
	},
	"backend": {
		ID:             "backend",
		Name:           "Backend Developer",
		CoreSkills:     []string{"Python", "SQL", "REST APIs"},
		OptionalSkills: []string{"Docker", "Kubernetes"},
	},
	"fullstack": {
		ID:             "fullstack",
		Name:           "Fullstack Developer",
		CoreSkills:     []string{"JavaScript", "Node.js", "React", "SQL"},
		OptionalSkills: []string{"TypeScript", "Docker", "GraphQL", "AWS"},
	},
	"data-scientist": {
		ID:             "data-scientist",
		Name:           "Data Scientist",
		CoreSkills:     []string{"Python", "Statistics", "Machine Learning", "SQL"},
		OptionalSkills: []string{"Pandas", "Data Visualization", "Deep Learning", "MLOps"},
	},
	"devops": {
		ID:             "devops",
		Name:           "DevOps Engineer",
		CoreSkills:     []string{"Linux", "Docker", "CI/CD", "Cloud Infrastructure"},
		OptionalSkills: []string{"Kubernetes", "Terraform", "Monitoring", "Security"},
	},
	"mobile": {
		ID:             "mobile",
		Name:           "Mobile Developer",
		CoreSkills:     []string{"Swift", "Kotlin", "Mobile UI Design"},
		OptionalSkills: []string{"React Native", "Flutter", "App Store Optimization"},
	},
	"ml-engineer": {
		ID:             "ml-engineer",
		Name:           "Machine Learning Engineer",
		CoreSkills:     []string{"Python", "Machine Learning", "Deep Learning", "MLOps"},
		OptionalSkills: []string{"TensorFlow", "PyTorch", "Kubernetes", "Distributed Training"},
	},
}

// LookupRole resolves a role identifier to its profile. The identifier is
// trimmed and case-folded before lookup; anything not in the closed role
// enumeration yields ErrUnknownRole with the offending value attached.
func LookupRole(roleID string) (RoleProfile, error) {
	key := strings.ToLower(strings.TrimSpace(roleID))
	p, ok := roleTable[key]
	if !ok {
		return RoleProfile{}, fmt.Errorf("%w: %q", ErrUnknownRole, strings.TrimSpace(roleID))
	}

	out := RoleProfile{ID: p.ID, Name: p.Name}
	out.CoreSkills = append(out.CoreSkills, p.CoreSkills...)
	out.OptionalSkills = append(out.OptionalSkills, p.OptionalSkills...)
	return out, nil
}

// RoleIDs returns the supported role identifiers, sorted.
func RoleIDs() []string {
	ids := make([]string, 0, len(roleTable))
	for id := range roleTable {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

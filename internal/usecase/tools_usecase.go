package usecase

import (
	"context"

	"skillsync-ai/internal/domain/salary"
	"skillsync-ai/internal/domain/skillgap"
)

type SkillGapInput struct {
	TargetRole      string
	CurrentSkills   string
	ExperienceLevel string
}

type SalaryInput struct {
	TargetRole      string
	ExperienceLevel string
	Location        string
}

// ToolsUsecase exposes the deterministic career tools. Both operations are
// pure lookups over the versioned reference tables; role identity is the
// only thing they reject.
type ToolsUsecase interface {
	AnalyzeSkillGap(ctx context.Context, in SkillGapInput) (skillgap.Result, error)
	CalculateSalary(ctx context.Context, in SalaryInput) (salary.Estimate, error)
}

type Tools struct{}

func NewToolsUsecase() *Tools {
	return &Tools{}
}

func (u *Tools) AnalyzeSkillGap(_ context.Context, in SkillGapInput) (skillgap.Result, error) {
	return skillgap.Compute(in.TargetRole, in.CurrentSkills, skillgap.ParseLevel(in.ExperienceLevel))
}

func (u *Tools) CalculateSalary(_ context.Context, in SalaryInput) (salary.Estimate, error) {
	return salary.EstimateSalary(in.TargetRole, skillgap.ParseLevel(in.ExperienceLevel), in.Location)
}

package salary

import (
	"errors"
	"testing"

	"skillsync-ai/internal/domain/skillgap"
)

func TestEstimateSalary_UnknownRole(t *testing.T) {
	_, err := EstimateSalary("quantum-pilot", skillgap.LevelBeginner, "remote")
	if !errors.Is(err, skillgap.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestEstimateSalary_LevelOrdering(t *testing.T) {
	for _, roleID := range skillgap.RoleIDs() {
		beginner, err := EstimateSalary(roleID, skillgap.LevelBeginner, "remote")
		if err != nil {
			t.Fatalf("%s beginner: %v", roleID, err)
		}
		intermediate, err := EstimateSalary(roleID, skillgap.LevelIntermediate, "remote")
		if err != nil {
			t.Fatalf("%s intermediate: %v", roleID, err)
		}
		advanced, err := EstimateSalary(roleID, skillgap.LevelAdvanced, "remote")
		if err != nil {
			t.Fatalf("%s advanced: %v", roleID, err)
		}

		if !(beginner.Median < intermediate.Median && intermediate.Median < advanced.Median) {
			t.Fatalf("%s: medians not increasing with level: %d %d %d",
				roleID, beginner.Median, intermediate.Median, advanced.Median)
		}
	}
}

func TestEstimateSalary_BandShape(t *testing.T) {
	for _, roleID := range skillgap.RoleIDs() {
		est, err := EstimateSalary(roleID, skillgap.LevelIntermediate, "europe")
		if err != nil {
			t.Fatalf("%s: %v", roleID, err)
		}
		if est.Currency != "USD" {
			t.Fatalf("%s: currency %q", roleID, est.Currency)
		}
		if !(est.Min <= est.Median && est.Median <= est.Max) {
			t.Fatalf("%s: band out of order: %d %d %d", roleID, est.Min, est.Median, est.Max)
		}
		if est.Min <= 0 {
			t.Fatalf("%s: non-positive minimum %d", roleID, est.Min)
		}
	}
}

func TestEstimateSalary_UnknownLocationIsRemote(t *testing.T) {
	known, err := EstimateSalary("backend", skillgap.LevelIntermediate, "remote")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	unknown, err := EstimateSalary("backend", skillgap.LevelIntermediate, "atlantis")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if known != unknown {
		t.Fatalf("unknown location should fall back to remote: %+v vs %+v", known, unknown)
	}
	if unknown.LocationFactor != 1.0 {
		t.Fatalf("expected factor 1.0, got %v", unknown.LocationFactor)
	}
}

func TestEstimateSalary_LocationFactorApplied(t *testing.T) {
	us, err := EstimateSalary("frontend", skillgap.LevelIntermediate, "United-States")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if us.LocationFactor != 1.15 {
		t.Fatalf("expected factor 1.15, got %v", us.LocationFactor)
	}

	remote, _ := EstimateSalary("frontend", skillgap.LevelIntermediate, "remote")
	if us.Median <= remote.Median {
		t.Fatalf("US median %d should exceed remote median %d", us.Median, remote.Median)
	}
}

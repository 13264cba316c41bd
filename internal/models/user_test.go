package models

import (
	"testing"
	"time"
)

func TestEffectiveRole_EmptyMeansParent(t *testing.T) {
	t.Parallel()

	if got := (User{}).EffectiveRole(); got != RoleParent {
		t.Fatalf("EffectiveRole() = %q, want parent", got)
	}
	if (User{Role: RoleAdmin}).EffectiveRole() != RoleAdmin {
		t.Fatal("admin role not preserved")
	}
	if (User{}).IsAdmin() {
		t.Fatal("empty role reported as admin")
	}
}

func TestProgressApply_PartialPatch(t *testing.T) {
	t.Parallel()

	progress := Progress{
		CurrentLevel: "Beginner",
		TotalHours:   5,
		Notes:        "keep me",
	}

	hours := 10.0
	now := time.Now().UTC()
	progress.Apply(ProgressPatch{TotalHours: &hours}, now)

	if progress.TotalHours != 10 {
		t.Fatalf("total_hours = %v, want 10", progress.TotalHours)
	}
	if progress.CurrentLevel != "Beginner" || progress.Notes != "keep me" {
		t.Fatalf("untouched fields changed: %+v", progress)
	}
	if !progress.LastUpdated.Equal(now) {
		t.Fatalf("last_updated = %v, want %v", progress.LastUpdated, now)
	}
}

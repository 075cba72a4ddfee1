package repository

import (
	"context"
	"testing"

	"github.com/pathiram/backend/internal/model"
)

func TestLocationRepositoryHierarchy(t *testing.T) {
	repo := NewLocationRepository(newTestDB(t))
	ctx := context.Background()

	count, err := repo.CountStates(ctx)
	if err != nil || count != 0 {
		t.Fatalf("CountStates = %d, %v", count, err)
	}

	states := []model.State{{
		Name: "தமிழ்நாடு",
		Code: "TN",
		Districts: []model.District{{
			Name: "மதுரை",
			Taluks: []model.Taluk{{
				Name:     "மேலூர்",
				Villages: []model.Village{{Name: "கொட்டாம்பட்டி"}, {Name: "அழகர்கோவில்"}},
			}},
		}},
	}}
	if err := repo.CreateStates(ctx, states); err != nil {
		t.Fatalf("CreateStates error: %v", err)
	}

	got, err := repo.States(ctx)
	if err != nil || len(got) != 1 || got[0].Code != "TN" {
		t.Fatalf("States = %+v, %v", got, err)
	}
	districts, err := repo.Districts(ctx, got[0].ID)
	if err != nil || len(districts) != 1 {
		t.Fatalf("Districts = %+v, %v", districts, err)
	}
	taluks, err := repo.Taluks(ctx, districts[0].ID)
	if err != nil || len(taluks) != 1 {
		t.Fatalf("Taluks = %+v, %v", taluks, err)
	}
	villages, err := repo.Villages(ctx, taluks[0].ID)
	if err != nil || len(villages) != 2 {
		t.Fatalf("Villages = %+v, %v", villages, err)
	}

	if err := repo.CreateStates(ctx, nil); err != nil {
		t.Fatalf("CreateStates(nil) error: %v", err)
	}
	if missing, _ := repo.Districts(ctx, 999); len(missing) != 0 {
		t.Fatalf("expected no districts for unknown state")
	}
}

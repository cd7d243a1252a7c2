package seed

import (
	"context"
	"fmt"

	"github.com/dom/nightreign-guide/internal/repository"
)

// Load wipes every collection and inserts the fixed catalog. It runs once
// before serving and is destructive to user-submitted data: ratings and
// custom builds do not survive a restart.
func Load(ctx context.Context, repos *repository.Repositories) (*Catalog, error) {
	catalog := NewCatalog()

	if err := repos.Rating.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear ratings: %w", err)
	}
	if err := repos.CustomBuild.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear custom builds: %w", err)
	}

	if err := repos.Boss.ReplaceAll(ctx, catalog.Bosses); err != nil {
		return nil, fmt.Errorf("failed to seed bosses: %w", err)
	}
	if err := repos.Character.ReplaceAll(ctx, catalog.Characters); err != nil {
		return nil, fmt.Errorf("failed to seed characters: %w", err)
	}
	if err := repos.Build.ReplaceAll(ctx, catalog.Builds); err != nil {
		return nil, fmt.Errorf("failed to seed builds: %w", err)
	}
	if err := repos.Achievement.ReplaceAll(ctx, catalog.Achievements); err != nil {
		return nil, fmt.Errorf("failed to seed achievements: %w", err)
	}
	if err := repos.Walkthrough.ReplaceAll(ctx, catalog.Walkthroughs); err != nil {
		return nil, fmt.Errorf("failed to seed walkthroughs: %w", err)
	}
	if err := repos.Creature.ReplaceAll(ctx, catalog.Creatures); err != nil {
		return nil, fmt.Errorf("failed to seed creatures: %w", err)
	}
	if err := repos.Secret.ReplaceAll(ctx, catalog.Secrets); err != nil {
		return nil, fmt.Errorf("failed to seed secrets: %w", err)
	}
	if err := repos.WeaponSkill.ReplaceAll(ctx, catalog.WeaponSkills); err != nil {
		return nil, fmt.Errorf("failed to seed weapon skills: %w", err)
	}
	if err := repos.WeaponPassive.ReplaceAll(ctx, catalog.WeaponPassives); err != nil {
		return nil, fmt.Errorf("failed to seed weapon passives: %w", err)
	}

	return catalog, nil
}

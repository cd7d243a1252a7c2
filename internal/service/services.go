package service

import (
	"github.com/dom/nightreign-guide/internal/repository"
)

type Services struct {
	Boss        *BossService
	Character   *CharacterService
	Build       *BuildService
	Achievement *AchievementService
	Walkthrough *WalkthroughService
	Creature    *CreatureService
	Secret      *SecretService
	Weapon      *WeaponService
	Search      *SearchService
	CustomBuild *CustomBuildService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Boss:        NewBossService(repos.Boss, repos.Character, repos.Build, repos.Rating),
		Character:   NewCharacterService(repos.Character),
		Build:       NewBuildService(repos.Build),
		Achievement: NewAchievementService(repos.Achievement),
		Walkthrough: NewWalkthroughService(repos.Walkthrough),
		Creature:    NewCreatureService(repos.Creature),
		Secret:      NewSecretService(repos.Secret),
		Weapon:      NewWeaponService(repos.WeaponSkill, repos.WeaponPassive),
		Search:      NewSearchService(repos.Boss, repos.Character, repos.Build, repos.Achievement, repos.Creature),
		CustomBuild: NewCustomBuildService(repos.CustomBuild),
	}
}

package postgres

import (
	"github.com/dom/nightreign-guide/internal/domain"
	"github.com/dom/nightreign-guide/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto-migrate tables
	err = db.AutoMigrate(
		&domain.Boss{},
		&domain.Character{},
		&domain.Build{},
		&domain.Achievement{},
		&domain.Walkthrough{},
		&domain.Creature{},
		&domain.Secret{},
		&domain.WeaponSkill{},
		&domain.WeaponPassive{},
		&domain.UserRating{},
		&domain.CustomBuild{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Boss:          NewBossRepository(db),
		Character:     NewCharacterRepository(db),
		Build:         NewBuildRepository(db),
		Achievement:   NewAchievementRepository(db),
		Walkthrough:   NewWalkthroughRepository(db),
		Creature:      NewCreatureRepository(db),
		Secret:        NewSecretRepository(db),
		WeaponSkill:   NewWeaponSkillRepository(db),
		WeaponPassive: NewWeaponPassiveRepository(db),
		Rating:        NewRatingRepository(db),
		CustomBuild:   NewCustomBuildRepository(db),
	}
}

package postgres

import (
	"context"
	"errors"
	"fmt"

	"fsmpAdvisor/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NutritionRepository struct {
	DB *gorm.DB
}

func NewNutritionRepository(db *gorm.DB) *NutritionRepository {
	return &NutritionRepository{
		DB: db,
	}
}

func (r *NutritionRepository) FindByRegistration(ctx context.Context, registrationNumber string) (domain.NutritionProfile, error) {
	if err := ctx.Err(); err != nil {
		return domain.NutritionProfile{}, fmt.Errorf("context error: %w", err)
	}

	var profile domain.NutritionProfile

	err := r.DB.WithContext(ctx).Where("registration_number = ?", registrationNumber).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NutritionProfile{}, errors.New("nutrition profile not found")
		}
		return domain.NutritionProfile{}, fmt.Errorf("failed to find nutrition profile: %w", err)
	}

	return profile, nil
}

func (r *NutritionRepository) FindAll(ctx context.Context) ([]domain.NutritionProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var profiles []domain.NutritionProfile
	err := r.DB.WithContext(ctx).Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find nutrition profiles: %w", err)
	}

	return profiles, nil
}

func (r *NutritionRepository) Upsert(ctx context.Context, profile *domain.NutritionProfile) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "registration_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"energy_kj", "fat_g", "carbohydrate_g", "protein_g",
			"sodium_mg", "chloride_mg", "potassium_mg", "phosphorus_mg",
		}),
	}).Create(profile).Error
	if err != nil {
		return fmt.Errorf("failed to upsert nutrition profile: %w", err)
	}

	return nil
}

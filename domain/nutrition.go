package domain

import (
	"time"
)

// Nutrient names used as lookup keys by the engine and the stats service.
const (
	NutrientEnergy       = "energy"
	NutrientFat          = "fat"
	NutrientCarbohydrate = "carbohydrate"
	NutrientProtein      = "protein"
	NutrientSodium       = "sodium"
	NutrientChloride     = "chloride"
	NutrientPotassium    = "potassium"
	NutrientPhosphorus   = "phosphorus"
)

// NutritionProfile holds nutrient amounts on the per-100kJ basis extracted
// from a product's label. Not every registered product has one.
type NutritionProfile struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	RegistrationNumber string    `gorm:"column:registration_number;uniqueIndex;type:text" json:"registration_number"`
	EnergyKJ           float64   `gorm:"column:energy_kj;type:numeric" json:"energy_kj"`
	FatG               float64   `gorm:"column:fat_g;type:numeric" json:"fat_g"`
	CarbohydrateG      float64   `gorm:"column:carbohydrate_g;type:numeric" json:"carbohydrate_g"`
	ProteinG           float64   `gorm:"column:protein_g;type:numeric" json:"protein_g"`
	SodiumMG           float64   `gorm:"column:sodium_mg;type:numeric" json:"sodium_mg"`
	ChlorideMG         float64   `gorm:"column:chloride_mg;type:numeric" json:"chloride_mg"`
	PotassiumMG        float64   `gorm:"column:potassium_mg;type:numeric" json:"potassium_mg"`
	PhosphorusMG       float64   `gorm:"column:phosphorus_mg;type:numeric" json:"phosphorus_mg"`
	CreatedAt          time.Time `gorm:"column:created_at" json:"created_at"`
}

func (NutritionProfile) TableName() string {
	return "nutrition_profiles"
}

// Amount returns the stored amount for a nutrient name, false if the
// nutrient is not tracked.
func (p NutritionProfile) Amount(nutrient string) (float64, bool) {
	switch nutrient {
	case NutrientEnergy:
		return p.EnergyKJ, true
	case NutrientFat:
		return p.FatG, true
	case NutrientCarbohydrate:
		return p.CarbohydrateG, true
	case NutrientProtein:
		return p.ProteinG, true
	case NutrientSodium:
		return p.SodiumMG, true
	case NutrientChloride:
		return p.ChlorideMG, true
	case NutrientPotassium:
		return p.PotassiumMG, true
	case NutrientPhosphorus:
		return p.PhosphorusMG, true
	}
	return 0, false
}

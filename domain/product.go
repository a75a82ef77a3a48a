package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id                  BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     registration_number TEXT UNIQUE NOT NULL,
//     product_name        TEXT,
//     manufacturer        TEXT,
//     category            TEXT,
//     physical_state      TEXT,
//     eligibility_text    TEXT,
//     source              TEXT,
//     approval_year       INT,
//     population_class    TEXT,
//     created_at          TIMESTAMPTZ DEFAULT NOW()
// );

// Product source, derived from the registration number serial.
const (
	SourceDomestic = "domestic"
	SourceImported = "imported"
)

// Population class, derived from the eligibility text.
const (
	PopulationInfant  = "infant formula"
	PopulationOnePlus = "one year and older"
)

type Product struct {
	ID                 uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	RegistrationNumber string    `gorm:"column:registration_number;uniqueIndex;type:text" json:"registration_number"`
	ProductName        string    `gorm:"column:product_name;type:text" json:"product_name"`
	Manufacturer       string    `gorm:"column:manufacturer;type:text" json:"manufacturer"`
	Category           string    `gorm:"column:category;type:text" json:"category"`
	PhysicalState      string    `gorm:"column:physical_state;type:text" json:"physical_state"`
	EligibilityText    string    `gorm:"column:eligibility_text;type:text" json:"eligibility_text"`
	Source             string    `gorm:"column:source;type:text" json:"source"`
	ApprovalYear       int       `gorm:"column:approval_year" json:"approval_year"`
	PopulationClass    string    `gorm:"column:population_class;type:text" json:"population_class"`
	CreatedAt          time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"fsmpAdvisor/domain"
	"fsmpAdvisor/pkg/logger"
)

// ProductRepository contract interface
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindByRegistration(ctx context.Context, registrationNumber string) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Upsert(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id uint64) error
}

type NutritionRepository interface {
	FindByRegistration(ctx context.Context, registrationNumber string) (domain.NutritionProfile, error)
	FindAll(ctx context.Context) ([]domain.NutritionProfile, error)
	Upsert(ctx context.Context, profile *domain.NutritionProfile) error
}

type catalogService struct {
	productRepo   ProductRepository
	nutritionRepo NutritionRepository
}

func NewCatalogService(productRepo ProductRepository, nutritionRepo NutritionRepository) *catalogService {
	return &catalogService{
		productRepo:   productRepo,
		nutritionRepo: nutritionRepo,
	}
}

// enrich fills the derived fields before a product is stored.
func enrich(product *domain.Product) {
	source, year := ParseRegistrationNumber(product.RegistrationNumber)
	product.Source = source
	product.ApprovalYear = year
	product.PopulationClass = ClassifyPopulation(product.EligibilityText)
}

func (s *catalogService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all products", err)
		return nil, err
	}

	return products, nil
}

func (s *catalogService) GetProductByID(ctx context.Context, id uint64) (*domain.Product, error) {
	if id == 0 {
		logger.Error("invalid product id")
		return nil, errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find product by id", err)
		return nil, err
	}

	return &product, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if product.RegistrationNumber == "" {
		logger.Error("Invalid product data: registration number is required")
		return nil, errors.New("registration number is required")
	}

	if product.ProductName == "" {
		logger.Error("Invalid product data: product name is required")
		return nil, errors.New("product name is required")
	}

	enrich(product)

	if err := s.productRepo.Create(ctx, product); err != nil {
		logger.Error("failed to create new product", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	logger.Info("product created successfully", "registration_number", product.RegistrationNumber)

	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	if product.ID == 0 {
		logger.Error("Invalid product data: ID is required")
		return nil, errors.New("product ID is required")
	}

	if product.RegistrationNumber == "" {
		logger.Error("Invalid product data: registration number is required")
		return nil, errors.New("registration number is required")
	}

	if product.ProductName == "" {
		logger.Error("Invalid product data: product name is required")
		return nil, errors.New("product name is required")
	}

	// Verify product exists
	_, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("product not found", err)
		return nil, errors.New("product not found")
	}

	enrich(product)

	if err := s.productRepo.Update(ctx, product); err != nil {
		logger.Error("failed to update product", err)
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	updated, err := s.productRepo.FindByID(ctx, product.ID)
	if err != nil {
		logger.Error("failed to fetch updated product", err)
		return nil, fmt.Errorf("failed to fetch updated product: %w", err)
	}

	logger.Info("product updated success")

	return &updated, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id uint64) error {
	if id == 0 {
		logger.Error("Invalid product id when deleting product")
		return errors.New("invalid product id")
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	// Verify product exists
	_, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("product not found", err)
		return errors.New("product not found")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete product", err)
		return fmt.Errorf("failed to delete product: %w", err)
	}

	logger.Info("product deleted success")

	return nil
}

func (s *catalogService) GetNutrition(ctx context.Context, registrationNumber string) (*domain.NutritionProfile, error) {
	if registrationNumber == "" {
		return nil, errors.New("registration number is required")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	profile, err := s.nutritionRepo.FindByRegistration(ctx, registrationNumber)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (s *catalogService) UpsertNutrition(ctx context.Context, profile *domain.NutritionProfile) error {
	if profile.RegistrationNumber == "" {
		return errors.New("registration number is required")
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := s.nutritionRepo.Upsert(ctx, profile); err != nil {
		logger.Error("failed to upsert nutrition profile", err)
		return fmt.Errorf("failed to upsert nutrition profile: %w", err)
	}

	return nil
}

// ImportProductsCSV loads products from a CSV with the columns
// registration_number, product_name, manufacturer, category,
// physical_state, eligibility_text (header row required). A malformed row
// is logged and skipped; it never aborts the batch.
func (s *catalogService) ImportProductsCSV(ctx context.Context, r io.Reader) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) < 2 {
		return 0, nil
	}

	imported := 0
	for i, row := range rows[1:] {
		if len(row) < 6 || row[0] == "" {
			logger.Warn("skipping malformed product row", "row", i+2)
			continue
		}

		product := domain.Product{
			RegistrationNumber: row[0],
			ProductName:        row[1],
			Manufacturer:       row[2],
			Category:           row[3],
			PhysicalState:      row[4],
			EligibilityText:    row[5],
		}
		enrich(&product)

		if err := s.productRepo.Upsert(ctx, &product); err != nil {
			logger.Warn("failed to import product row", "row", i+2, "error", err)
			continue
		}
		imported++
	}

	logger.Info("product import finished", "imported", imported, "rows", len(rows)-1)

	return imported, nil
}

// ImportNutritionCSV loads nutrient profiles from a CSV with the columns
// registration_number, energy_kj, fat_g, carbohydrate_g, protein_g,
// sodium_mg, chloride_mg, potassium_mg, phosphorus_mg. A value that does
// not parse is stored as zero rather than failing the row.
func (s *catalogService) ImportNutritionCSV(ctx context.Context, r io.Reader) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("context error: %w", err)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return 0, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) < 2 {
		return 0, nil
	}

	imported := 0
	for i, row := range rows[1:] {
		if len(row) < 9 || row[0] == "" {
			logger.Warn("skipping malformed nutrition row", "row", i+2)
			continue
		}

		profile := domain.NutritionProfile{
			RegistrationNumber: row[0],
			EnergyKJ:           parseAmount(row[1]),
			FatG:               parseAmount(row[2]),
			CarbohydrateG:      parseAmount(row[3]),
			ProteinG:           parseAmount(row[4]),
			SodiumMG:           parseAmount(row[5]),
			ChlorideMG:         parseAmount(row[6]),
			PotassiumMG:        parseAmount(row[7]),
			PhosphorusMG:       parseAmount(row[8]),
		}

		if err := s.nutritionRepo.Upsert(ctx, &profile); err != nil {
			logger.Warn("failed to import nutrition row", "row", i+2, "error", err)
			continue
		}
		imported++
	}

	logger.Info("nutrition import finished", "imported", imported, "rows", len(rows)-1)

	return imported, nil
}

// ImportLabelDocument parses a raw label document and upserts both the
// catalog fields and the nutrient profile for the registration.
func (s *catalogService) ImportLabelDocument(ctx context.Context, registrationNumber, text string) (*domain.Product, error) {
	if registrationNumber == "" {
		return nil, errors.New("registration number is required")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	doc := ParseLabelDocument(text)

	product, err := s.productRepo.FindByRegistration(ctx, registrationNumber)
	if err != nil {
		product = domain.Product{RegistrationNumber: registrationNumber}
	}

	if doc.Category != "" {
		product.Category = doc.Category
	}
	if doc.PhysicalState != "" {
		product.PhysicalState = doc.PhysicalState
	}
	if doc.EligibilityText != "" {
		product.EligibilityText = doc.EligibilityText
	}
	enrich(&product)

	if err := s.productRepo.Upsert(ctx, &product); err != nil {
		logger.Error("failed to upsert product from label", err)
		return nil, fmt.Errorf("failed to upsert product: %w", err)
	}

	profile := doc.Nutrition
	profile.RegistrationNumber = registrationNumber
	if err := s.nutritionRepo.Upsert(ctx, &profile); err != nil {
		logger.Warn("failed to upsert nutrition from label", "error", err)
	}

	return &product, nil
}

func parseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

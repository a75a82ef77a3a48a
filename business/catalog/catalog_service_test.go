package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fsmpAdvisor/domain"
)

type fakeProductRepo struct {
	byReg   map[string]domain.Product
	created int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byReg: make(map[string]domain.Product)}
}

func (f *fakeProductRepo) Create(ctx context.Context, p *domain.Product) error {
	f.created++
	f.byReg[p.RegistrationNumber] = *p
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id uint64) (domain.Product, error) {
	for _, p := range f.byReg {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, errors.New("product not found")
}

func (f *fakeProductRepo) FindByRegistration(ctx context.Context, reg string) (domain.Product, error) {
	p, ok := f.byReg[reg]
	if !ok {
		return domain.Product{}, errors.New("product not found")
	}
	return p, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(f.byReg))
	for _, p := range f.byReg {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *domain.Product) error {
	f.byReg[p.RegistrationNumber] = *p
	return nil
}

func (f *fakeProductRepo) Upsert(ctx context.Context, p *domain.Product) error {
	f.byReg[p.RegistrationNumber] = *p
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uint64) error {
	for reg, p := range f.byReg {
		if p.ID == id {
			delete(f.byReg, reg)
			return nil
		}
	}
	return errors.New("product not found")
}

type fakeNutritionRepo struct {
	byReg map[string]domain.NutritionProfile
}

func newFakeNutritionRepo() *fakeNutritionRepo {
	return &fakeNutritionRepo{byReg: make(map[string]domain.NutritionProfile)}
}

func (f *fakeNutritionRepo) FindByRegistration(ctx context.Context, reg string) (domain.NutritionProfile, error) {
	p, ok := f.byReg[reg]
	if !ok {
		return domain.NutritionProfile{}, errors.New("nutrition profile not found")
	}
	return p, nil
}

func (f *fakeNutritionRepo) FindAll(ctx context.Context) ([]domain.NutritionProfile, error) {
	out := make([]domain.NutritionProfile, 0, len(f.byReg))
	for _, p := range f.byReg {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeNutritionRepo) Upsert(ctx context.Context, p *domain.NutritionProfile) error {
	f.byReg[p.RegistrationNumber] = *p
	return nil
}

func TestCreateProduct_EnrichesDerivedFields(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, newFakeNutritionRepo())

	created, err := svc.CreateProduct(context.Background(), &domain.Product{
		RegistrationNumber: "GSZZTY20175001",
		ProductName:        "Allergy Formula",
		EligibilityText:    "Suitable for infants with food-protein allergy",
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	if created.Source != domain.SourceImported {
		t.Errorf("Source = %q, want imported", created.Source)
	}
	if created.ApprovalYear != 2017 {
		t.Errorf("ApprovalYear = %d, want 2017", created.ApprovalYear)
	}
	if created.PopulationClass != domain.PopulationInfant {
		t.Errorf("PopulationClass = %q, want infant formula", created.PopulationClass)
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	svc := NewCatalogService(newFakeProductRepo(), newFakeNutritionRepo())

	if _, err := svc.CreateProduct(context.Background(), &domain.Product{ProductName: "x"}); err == nil {
		t.Error("expected an error for a missing registration number")
	}
	if _, err := svc.CreateProduct(context.Background(), &domain.Product{RegistrationNumber: "TY20171001"}); err == nil {
		t.Error("expected an error for a missing product name")
	}
}

func TestImportProductsCSV(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, newFakeNutritionRepo())

	csvData := strings.Join([]string{
		"registration_number,product_name,manufacturer,category,physical_state,eligibility_text",
		"GSZZTY20175001,Allergy Formula,Acme,Allergy,Powder,Suitable for infants with food-protein allergy",
		"TY20183002,Recovery Drink,Acme,Full nutrition,Liquid,For adults over 18 years",
		",Missing Registration,Acme,Other,Powder,whatever",
		"short,row",
	}, "\n")

	imported, err := svc.ImportProductsCSV(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportProductsCSV: %v", err)
	}
	if imported != 2 {
		t.Fatalf("imported = %d, want 2", imported)
	}

	p, err := repo.FindByRegistration(context.Background(), "GSZZTY20175001")
	if err != nil {
		t.Fatal(err)
	}
	if p.Source != domain.SourceImported || p.ApprovalYear != 2017 {
		t.Errorf("imported row not enriched: %+v", p)
	}
	if p.PopulationClass != domain.PopulationInfant {
		t.Errorf("PopulationClass = %q", p.PopulationClass)
	}
}

func TestImportNutritionCSV(t *testing.T) {
	nutriRepo := newFakeNutritionRepo()
	svc := NewCatalogService(newFakeProductRepo(), nutriRepo)

	csvData := strings.Join([]string{
		"registration_number,energy_kj,fat_g,carbohydrate_g,protein_g,sodium_mg,chloride_mg,potassium_mg,phosphorus_mg",
		"TY20171001,100,1.0,2.75,0.62,20,15,30,25",
		"TY20171002,100,bad,2.0,1.5,10,10,10,10",
	}, "\n")

	imported, err := svc.ImportNutritionCSV(context.Background(), strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportNutritionCSV: %v", err)
	}
	if imported != 2 {
		t.Fatalf("imported = %d, want 2", imported)
	}

	p, err := nutriRepo.FindByRegistration(context.Background(), "TY20171002")
	if err != nil {
		t.Fatal(err)
	}
	if p.FatG != 0 {
		t.Errorf("a bad float must be stored as zero, got %v", p.FatG)
	}
	if p.ProteinG != 1.5 {
		t.Errorf("ProteinG = %v", p.ProteinG)
	}
}

func TestImportLabelDocument(t *testing.T) {
	repo := newFakeProductRepo()
	nutriRepo := newFakeNutritionRepo()
	svc := NewCatalogService(repo, nutriRepo)

	product, err := svc.ImportLabelDocument(context.Background(), "GSZZTY20175001", sampleLabel)
	if err != nil {
		t.Fatalf("ImportLabelDocument: %v", err)
	}

	if product.Category != "Nutritional supplementation formula" {
		t.Errorf("Category = %q", product.Category)
	}
	if product.PopulationClass != domain.PopulationInfant {
		t.Errorf("PopulationClass = %q", product.PopulationClass)
	}
	if product.Source != domain.SourceImported {
		t.Errorf("Source = %q", product.Source)
	}

	profile, err := nutriRepo.FindByRegistration(context.Background(), "GSZZTY20175001")
	if err != nil {
		t.Fatal(err)
	}
	if profile.ProteinG != 0.62 {
		t.Errorf("ProteinG = %v", profile.ProteinG)
	}
}

func TestImportLabelDocument_KeepsExistingFields(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewCatalogService(repo, newFakeNutritionRepo())

	seed := domain.Product{
		RegistrationNumber: "TY20171001",
		ProductName:        "Existing Product",
		Manufacturer:       "Acme",
	}
	if err := repo.Upsert(context.Background(), &seed); err != nil {
		t.Fatal(err)
	}

	product, err := svc.ImportLabelDocument(context.Background(), "TY20171001",
		"[Product Category] Electrolyte formula.")
	if err != nil {
		t.Fatalf("ImportLabelDocument: %v", err)
	}

	if product.ProductName != "Existing Product" {
		t.Errorf("ProductName = %q, existing fields must survive", product.ProductName)
	}
	if product.Category != "Electrolyte formula" {
		t.Errorf("Category = %q", product.Category)
	}
}

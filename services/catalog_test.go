package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/models"
	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	utils.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	err = db.AutoMigrate(
		&models.Service{},
		&models.ServiceOption{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestListActiveServicesFiltersInactive(t *testing.T) {
	db := setupTestDB(t)
	db.Create(&models.Service{Description: "Sesion familiar", Type: "sesion", BasePrice: 500, Active: true})
	db.Create(&models.Service{Description: "Descontinuado", Type: "sesion", BasePrice: 100, Active: false})

	catalog := NewCatalogService(db)
	services, err := catalog.ListActiveServices(context.Background())

	assert.NoError(t, err)
	assert.Len(t, services, 1)
	assert.Equal(t, "Sesion familiar", services[0].Description)
}

func TestListOptionsForEmptyIsValid(t *testing.T) {
	db := setupTestDB(t)
	service := models.Service{Description: "Credencial", Type: "impresion", BasePrice: 80, Active: true}
	db.Create(&service)

	catalog := NewCatalogService(db)
	specs, err := catalog.ListOptionsFor(context.Background(), service.ID)

	assert.NoError(t, err)
	assert.Empty(t, specs)
}

func TestListOptionsForDecodesModifiers(t *testing.T) {
	db := setupTestDB(t)
	service := models.Service{Description: "Retrato", Type: "sesion", BasePrice: 500, Active: true}
	db.Create(&service)
	db.Create(&models.ServiceOption{
		ServiceID: service.ID,
		Name:      "tamano",
		Kind:      models.OptionKindDropdown,
		Choices:   `{"A": 0, "B": 50}`,
		Required:  true,
	})
	db.Create(&models.ServiceOption{
		ServiceID: service.ID,
		Name:      "retoque",
		Kind:      models.OptionKindCheckbox,
		Choices:   `{"true": 30}`,
	})

	catalog := NewCatalogService(db)
	specs, err := catalog.ListOptionsFor(context.Background(), service.ID)

	assert.NoError(t, err)
	assert.Len(t, specs, 2)

	dropdown, ok := specs[0].Modifier.(DropdownModifier)
	assert.True(t, ok)
	assert.Equal(t, 50.0, dropdown.Choices["B"])
	assert.True(t, specs[0].Required)

	checkbox, ok := specs[1].Modifier.(CheckboxModifier)
	assert.True(t, ok)
	assert.Equal(t, 30.0, checkbox.PriceIfTrue)
}

func TestListOptionsForRejectsMalformedChoices(t *testing.T) {
	db := setupTestDB(t)
	service := models.Service{Description: "Retrato", Type: "sesion", BasePrice: 500, Active: true}
	db.Create(&service)
	db.Create(&models.ServiceOption{
		ServiceID: service.ID,
		Name:      "tamano",
		Kind:      models.OptionKindDropdown,
		Choices:   `{"A": "not-a-number"}`,
	})

	catalog := NewCatalogService(db)
	_, err := catalog.ListOptionsFor(context.Background(), service.ID)

	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestDecodeModifierValidation(t *testing.T) {
	tests := []struct {
		name    string
		option  models.ServiceOption
		wantErr bool
	}{
		{
			name:   "valid dropdown",
			option: models.ServiceOption{Name: "tamano", Kind: models.OptionKindDropdown, Choices: `{"chica": 0, "grande": 25}`},
		},
		{
			name:   "checkbox without true key prices zero",
			option: models.ServiceOption{Name: "marco", Kind: models.OptionKindCheckbox, Choices: `{}`},
		},
		{
			name:    "dropdown without choices",
			option:  models.ServiceOption{Name: "tamano", Kind: models.OptionKindDropdown, Choices: `{}`},
			wantErr: true,
		},
		{
			name:    "invalid json",
			option:  models.ServiceOption{Name: "tamano", Kind: models.OptionKindDropdown, Choices: `{`},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			option:  models.ServiceOption{Name: "tamano", Kind: "radio", Choices: `{"A": 1}`},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeModifier(tt.option)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetServiceUnknownIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	inactive := models.Service{Description: "Retirado", Type: "sesion", BasePrice: 200, Active: false}
	db.Create(&inactive)

	catalog := NewCatalogService(db)

	_, err := catalog.GetService(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = catalog.GetService(context.Background(), inactive.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

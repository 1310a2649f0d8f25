package services

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/models"
	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

// PriceModifier is the decoded, validated form of a ServiceOption's price
// behaviour. Decoding happens once at catalog load; pricing only ever sees
// one of the two concrete variants.
type PriceModifier interface {
	priceModifier()
}

// DropdownModifier maps each selectable choice label to its price delta.
type DropdownModifier struct {
	Choices map[string]float64
}

// CheckboxModifier adds PriceIfTrue when the box is checked.
type CheckboxModifier struct {
	PriceIfTrue float64
}

func (DropdownModifier) priceModifier() {}
func (CheckboxModifier) priceModifier() {}

// OptionSpec pairs a stored option row with its decoded modifier.
type OptionSpec struct {
	Name     string
	Required bool
	Modifier PriceModifier
}

// DecodeModifier validates an option row and produces its PriceModifier.
// Fail-closed policy: malformed choice maps (non-numeric deltas, invalid
// JSON) and dropdowns without choices are rejected here rather than being
// silently priced as zero.
func DecodeModifier(opt models.ServiceOption) (PriceModifier, error) {
	var choices map[string]float64
	if err := json.Unmarshal([]byte(opt.Choices), &choices); err != nil {
		return nil, fmt.Errorf("option %q has malformed choices: %w", opt.Name, err)
	}

	switch opt.Kind {
	case models.OptionKindDropdown:
		if len(choices) == 0 {
			return nil, fmt.Errorf("dropdown option %q has no choices", opt.Name)
		}
		return DropdownModifier{Choices: choices}, nil
	case models.OptionKindCheckbox:
		// absent "true" key prices the checkbox at zero
		return CheckboxModifier{PriceIfTrue: choices["true"]}, nil
	default:
		return nil, fmt.Errorf("option %q has unknown kind %q", opt.Name, opt.Kind)
	}
}

// CatalogService reads the service catalog. It is the only component that
// touches ServiceOption rows; everything downstream works with OptionSpec.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ListActiveServices returns the purchasable catalog entries.
func (cs *CatalogService) ListActiveServices(ctx context.Context) ([]models.Service, error) {
	var services []models.Service
	if err := cs.DB.WithContext(ctx).Where("active = ?", true).Order("description asc").Find(&services).Error; err != nil {
		utils.ErrorLogger.Printf("catalog: listing services failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return services, nil
}

// ListOptionsFor returns the decoded options of one service. A service with
// no options yields an empty slice, not an error.
func (cs *CatalogService) ListOptionsFor(ctx context.Context, serviceID uint) ([]OptionSpec, error) {
	var rows []models.ServiceOption
	if err := cs.DB.WithContext(ctx).Where("service_id = ?", serviceID).Order("id asc").Find(&rows).Error; err != nil {
		utils.ErrorLogger.Printf("catalog: listing options for service %d failed: %v", serviceID, err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	specs := make([]OptionSpec, 0, len(rows))
	for _, row := range rows {
		mod, err := DecodeModifier(row)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
		}
		specs = append(specs, OptionSpec{
			Name:     row.Name,
			Required: row.Required,
			Modifier: mod,
		})
	}
	return specs, nil
}

// GetService fetches a single active service by id.
func (cs *CatalogService) GetService(ctx context.Context, serviceID uint) (*models.Service, error) {
	var service models.Service
	err := cs.DB.WithContext(ctx).Where("active = ?", true).First(&service, serviceID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("service %d: %w", serviceID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}
	return &service, nil
}

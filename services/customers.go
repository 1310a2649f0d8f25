package services

import (
	"context"
	"strings"
	"unicode"

	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/models"
	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

// MinPhoneDigits is the minimum digit count a normalized phone must carry.
const MinPhoneDigits = 6

// NormalizePhone builds the canonical lookup key: the country code followed
// by the digits-only local number. The same normalization runs on lookup
// and on creation, otherwise equivalent phone strings would produce
// duplicate customers.
func NormalizePhone(countryCode, localNumber string) string {
	var digits strings.Builder
	for _, r := range localNumber {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	return strings.TrimSpace(countryCode) + digits.String()
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			n++
		}
	}
	return n
}

// CustomerResolver looks customers up by phone and registers new ones.
type CustomerResolver struct {
	DB *gorm.DB
}

func NewCustomerResolver(db *gorm.DB) *CustomerResolver {
	return &CustomerResolver{DB: db}
}

// FindByPhone resolves a customer by normalized phone. A miss returns
// ErrCustomerNotFound so the workflow can branch into registration.
func (cr *CustomerResolver) FindByPhone(ctx context.Context, countryCode, localNumber string) (*models.Customer, error) {
	phone := NormalizePhone(countryCode, localNumber)

	var customer models.Customer
	err := cr.DB.WithContext(ctx).Where("phone = ?", phone).First(&customer).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// CustomerInput carries the registration form fields.
type CustomerInput struct {
	Name        string
	CountryCode string
	LocalNumber string
	Email       *string
	Address     *string
}

// Create registers a new customer. The returned customer is considered
// resolved for the remainder of the order session.
func (cr *CustomerResolver) Create(ctx context.Context, input CustomerInput) (*models.Customer, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, NewValidationError("name", "es requerido")
	}

	phone := NormalizePhone(input.CountryCode, input.LocalNumber)
	if countDigits(phone) < MinPhoneDigits {
		return nil, NewValidationError("phone", "numero telefonico demasiado corto")
	}

	customer := models.Customer{
		Name:    name,
		Phone:   phone,
		Email:   input.Email,
		Address: input.Address,
	}
	if err := cr.DB.WithContext(ctx).Create(&customer).Error; err != nil {
		utils.ErrorLogger.Printf("customer create failed for %s: %v", phone, err)
		return nil, err
	}

	utils.InfoLogger.Printf("New customer registered (ID=%d, phone=%s)", customer.ID, customer.Phone)
	return &customer, nil
}

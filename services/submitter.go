package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jetrolopez1/snapframe-hub-sub000/models"
	"github.com/jetrolopez1/snapframe-hub-sub000/utils"
)

// OrderSubmitter persists a finished wizard session as an order header plus
// one line item per accumulated entry. Header and items go in a single
// transaction, so a partial order is never left behind.
type OrderSubmitter struct {
	DB *gorm.DB
}

func NewOrderSubmitter(db *gorm.DB) *OrderSubmitter {
	return &OrderSubmitter{DB: db}
}

// newFolio returns a human-facing order identifier, e.g. FS-20260831-3fa2b1c4.
func newFolio(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("FS-%s-%s", now.Format("20060102"), suffix)
}

// Submit validates the session and persists it. All validation runs before
// any write; on a store failure the session value is untouched and the
// caller can retry without re-entering data.
func (sub *OrderSubmitter) Submit(ctx context.Context, session OrderSession, deliveryFormat string, advancePayment float64, comments string) (*models.Order, error) {
	if session.Customer == nil || session.Customer.ID == 0 {
		return nil, NewValidationError("customer", "el cliente no ha sido resuelto")
	}

	items := session.Items()
	if len(items) == 0 {
		return nil, NewValidationError("items", "agrega al menos un servicio")
	}

	if !models.ValidDeliveryFormat(deliveryFormat) {
		return nil, NewValidationError("delivery_format", "formato de entrega invalido")
	}

	total := session.Total()
	if advancePayment < 0 {
		return nil, NewValidationError("advance_payment", "el anticipo no puede ser negativo")
	}
	if advancePayment > total {
		return nil, NewValidationError("advance_payment", "el anticipo no puede exceder el total")
	}

	now := time.Now()
	order := models.Order{
		Folio:            newFolio(now),
		CustomerID:       session.Customer.ID,
		DeliveryFormat:   deliveryFormat,
		TotalPrice:       total,
		AdvancePayment:   advancePayment,
		RemainingPayment: total - advancePayment,
		Comments:         comments,
		Status:           models.OrderStatusPendiente,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err := sub.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range items {
			snapshot, err := json.Marshal(item.Selections)
			if err != nil {
				return err
			}

			orderItem := models.OrderItem{
				OrderID:         order.ID,
				ServiceID:       item.Service.ID,
				Quantity:        item.Quantity,
				UnitPrice:       item.Service.BasePrice,
				Subtotal:        item.Subtotal,
				SelectedOptions: string(snapshot),
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.ErrorLogger.Printf("order submission failed (customer=%d): %v", session.Customer.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrOrderCreationFailed, err)
	}

	utils.InfoLogger.Printf("Order %s created (customer=%d, total=%s, items=%d)",
		order.Folio, order.CustomerID, utils.FormatCurrencyMXN(order.TotalPrice), len(items))
	return &order, nil
}

package services

import (
	"github.com/jetrolopez1/snapframe-hub-sub000/models"
)

// SelectedServiceItem is one configured-and-priced line of the pending
// order. It exists only in memory until the order is submitted.
type SelectedServiceItem struct {
	Service    models.Service
	Options    []OptionSpec
	Selections map[string]interface{}
	Quantity   int
	Subtotal   float64
}

// NewSelectedItem configures and prices one service line.
func NewSelectedItem(service models.Service, options []OptionSpec, selections map[string]interface{}, quantity int) (SelectedServiceItem, error) {
	subtotal, err := ComputeSubtotal(service.BasePrice, options, selections, quantity)
	if err != nil {
		return SelectedServiceItem{}, err
	}
	return SelectedServiceItem{
		Service:    service,
		Options:    options,
		Selections: selections,
		Quantity:   quantity,
		Subtotal:   subtotal,
	}, nil
}

// OrderSession is the state of one new-order wizard run: the resolved
// customer plus the accumulated line items, in insertion order. Sessions
// are values; every transition returns a new session and leaves the
// receiver untouched, so a failed step never corrupts prior state.
type OrderSession struct {
	Customer *models.Customer
	items    []SelectedServiceItem
}

// WithCustomer returns the session with the customer resolved.
func (s OrderSession) WithCustomer(c *models.Customer) OrderSession {
	s.Customer = c
	return s
}

// Add appends a configured line item.
func (s OrderSession) Add(item SelectedServiceItem) OrderSession {
	items := make([]SelectedServiceItem, len(s.items), len(s.items)+1)
	copy(items, s.items)
	s.items = append(items, item)
	return s
}

// RemoveAt drops the item at index i.
func (s OrderSession) RemoveAt(i int) (OrderSession, error) {
	if i < 0 || i >= len(s.items) {
		return s, ErrIndexOutOfRange
	}
	items := make([]SelectedServiceItem, 0, len(s.items)-1)
	items = append(items, s.items[:i]...)
	items = append(items, s.items[i+1:]...)
	s.items = items
	return s, nil
}

// Items returns a copy of the accumulated line items.
func (s OrderSession) Items() []SelectedServiceItem {
	out := make([]SelectedServiceItem, len(s.items))
	copy(out, s.items)
	return out
}

// Total is recomputed from the current items on every call.
func (s OrderSession) Total() float64 {
	total := 0.0
	for _, item := range s.items {
		total += item.Subtotal
	}
	return total
}

package pricing

import "contractor_pro/internal/domain/entities"

// Draft collects line items for an estimate that has not been saved yet.
type Draft struct {
	items []entities.EstimateLineItem
}

func NewDraft() *Draft {
	return &Draft{}
}

// Add prices a line item and appends it. Rejected items leave the draft
// unchanged.
func (d *Draft) Add(description string, quantity, unitPrice float64) (entities.EstimateLineItem, error) {
	li, err := NewLineItem(description, quantity, unitPrice)
	if err != nil {
		return entities.EstimateLineItem{}, err
	}
	d.items = append(d.items, li)
	return li, nil
}

// AddText is Add for raw form input.
func (d *Draft) AddText(description, quantityText, unitPriceText string) (entities.EstimateLineItem, error) {
	li, err := ParseLineItem(description, quantityText, unitPriceText)
	if err != nil {
		return entities.EstimateLineItem{}, err
	}
	d.items = append(d.items, li)
	return li, nil
}

// Remove drops the line item with the given id and reports whether it was
// present.
func (d *Draft) Remove(id string) bool {
	for i, li := range d.items {
		if li.ID == id {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return true
		}
	}
	return false
}

func (d *Draft) Items() []entities.EstimateLineItem {
	out := make([]entities.EstimateLineItem, len(d.items))
	copy(out, d.items)
	return out
}

func (d *Draft) Len() int { return len(d.items) }

func (d *Draft) Totals() Totals {
	return ComputeTotals(d.items)
}

package ordering

import "strings"

// ---------------------------------------------------------------------------
// Lookup tables
// ---------------------------------------------------------------------------

// FoodItemTranslation maps a menu item onto its POS PLU code
type FoodItemTranslation struct {
	// MenuItemID is the product id carried on order lines
	MenuItemID int64
	// PLU is the POS product lookup code
	PLU int64
}

// PaymentTypeTranslation maps a payment type name onto a POS media code
type PaymentTypeTranslation struct {
	// PaymentTypeName is matched case-insensitively against order payments
	PaymentTypeName string
	// MediaNumber is the POS payment media code
	MediaNumber int64
	// MediaType is the canonical media name written on the POS line
	MediaType string
}

// FoodTranslationTable resolves product ids to PLU codes
type FoodTranslationTable struct {
	plus map[int64]int64
}

// NewFoodTranslationTable builds a table from rows. The first row for a
// product wins when rows are duplicated.
func NewFoodTranslationTable(rows []FoodItemTranslation) *FoodTranslationTable {
	t := &FoodTranslationTable{plus: make(map[int64]int64, len(rows))}
	for _, row := range rows {
		if _, exists := t.plus[row.MenuItemID]; exists {
			continue
		}
		t.plus[row.MenuItemID] = row.PLU
	}
	return t
}

// PLU returns the PLU for a product
func (t *FoodTranslationTable) PLU(productID int64) (int64, bool) {
	if t == nil {
		return 0, false
	}
	plu, ok := t.plus[productID]
	return plu, ok
}

// Len returns the number of translated products
func (t *FoodTranslationTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.plus)
}

// PaymentTranslationTable resolves payment type names to media codes
type PaymentTranslationTable struct {
	byName map[string]PaymentTypeTranslation
}

// NewPaymentTranslationTable builds a table keyed by normalized name.
// The first row for a name wins when rows are duplicated.
func NewPaymentTranslationTable(rows []PaymentTypeTranslation) *PaymentTranslationTable {
	t := &PaymentTranslationTable{byName: make(map[string]PaymentTypeTranslation, len(rows))}
	for _, row := range rows {
		key := normalizeName(row.PaymentTypeName)
		if _, exists := t.byName[key]; exists {
			continue
		}
		t.byName[key] = row
	}
	return t
}

// Lookup finds the translation for a payment type name
func (t *PaymentTranslationTable) Lookup(name string) (PaymentTypeTranslation, bool) {
	if t == nil {
		return PaymentTypeTranslation{}, false
	}
	row, ok := t.byName[normalizeName(name)]
	return row, ok
}

// Len returns the number of translated payment types
func (t *PaymentTranslationTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.byName)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

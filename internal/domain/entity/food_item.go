package entity

import "time"

// FoodItem is one stored frozen food item.
type FoodItem struct {
	ID        int64     // Assigned by the store. Monotonic and never reused.
	Name      string    // Required.
	Category  *string   // Optional. Nil is distinct from an empty category.
	CreatedAt time.Time // Set once when the item is added.
}

// CategoryOrEmpty returns the category, or "" when none was recorded.
func (f *FoodItem) CategoryOrEmpty() string {
	if f.Category == nil {
		return ""
	}

	return *f.Category
}

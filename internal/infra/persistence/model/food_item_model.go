package model

import "time"

// FoodItemModel mirrors the 'food_items' table. Ids come from an autoincrement
// sequence and are never reused.
type FoodItemModel struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string  `gorm:"column:name;not null"`
	Category  *string `gorm:"column:category"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodItemModel) TableName() string {
	return "food_items"
}

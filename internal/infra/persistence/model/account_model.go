// Package model holds the GORM persistence models. They never leave the infra layer.
package model

import "time"

// AccountModel mirrors the 'accounts' table.
type AccountModel struct {
	Identifier string `gorm:"column:identifier;primaryKey"`
	SecretHash string `gorm:"column:secret_hash;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

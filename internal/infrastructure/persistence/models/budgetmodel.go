package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type BudgetModel struct {
	ID                uint   `gorm:"primaryKey"`
	Name              string `gorm:"size:255;not null;index"`
	ServiceType       string `gorm:"size:100;not null;index"`
	Status            string `gorm:"size:50;not null;index"`
	Description       string `gorm:"type:text"`
	Duration          string `gorm:"size:100"`
	Priority          string `gorm:"size:20;not null;index"`
	ResponsibleID     uint   `gorm:"not null;index"`
	CustomerID        uint   `gorm:"not null;index"`
	CustomerContactID uint   `gorm:"not null"`
	Branch            string `gorm:"size:255"`
	CreatedAt         int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt         int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (BudgetModel) TableName() string {
	return "budgets"
}

type ConceptModel struct {
	ID        uint            `gorm:"primaryKey"`
	BudgetID  uint            `gorm:"not null;index"`
	Concept   string          `gorm:"size:255;not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CreatedAt int64           `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64           `gorm:"autoUpdateTime:milli;not null"`
}

func (ConceptModel) TableName() string {
	return "budget_concepts"
}

type PaymentModel struct {
	ID            uint            `gorm:"primaryKey"`
	BudgetID      uint            `gorm:"not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentDate   datatypes.Date  `gorm:"not null;index"`
	PaymentMethod string          `gorm:"size:100"`
	Reference     string          `gorm:"size:255"`
	CreatedAt     int64           `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt     int64           `gorm:"autoUpdateTime:milli;not null"`
}

func (PaymentModel) TableName() string {
	return "budget_payments"
}

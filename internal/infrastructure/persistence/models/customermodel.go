package models

type CustomerModel struct {
	ID               uint   `gorm:"primaryKey"`
	Name             string `gorm:"size:255;not null;index"`
	BusinessName     string `gorm:"size:255"`
	RFC              string `gorm:"size:13;index"`
	PaymentCondition string `gorm:"size:100"`
	PaymentMethod    string `gorm:"size:100"`
	InvoiceUsage     string `gorm:"size:100"`
	Currency         string `gorm:"size:10;not null;default:MXN"`
	Active           bool   `gorm:"not null;default:true;index"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt        int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (CustomerModel) TableName() string {
	return "customers"
}

type ContactModel struct {
	ID         uint   `gorm:"primaryKey"`
	CustomerID uint   `gorm:"not null;index"`
	Name       string `gorm:"size:255;not null"`
	Position   string `gorm:"size:100"`
	Email      string `gorm:"size:255"`
	Phone      string `gorm:"size:30"`
	Branches   string `gorm:"size:255"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ContactModel) TableName() string {
	return "customer_contacts"
}

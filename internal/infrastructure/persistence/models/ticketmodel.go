package models

import "gorm.io/datatypes"

type TicketModel struct {
	ID             uint            `gorm:"primaryKey"`
	BudgetID       uint            `gorm:"not null;index"`
	AssigneeID     uint            `gorm:"not null;index"`
	Status         string          `gorm:"size:30;not null;index"`
	Priority       string          `gorm:"size:20;not null;index"`
	ScheduledStart *datatypes.Date `gorm:"index"`
	ScheduledEnd   *datatypes.Date `gorm:"index"`
	Instructions   string          `gorm:"type:text"`
	CreatedAt      int64           `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64           `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TaskModel struct {
	ID          uint            `gorm:"primaryKey"`
	TicketID    uint            `gorm:"not null;index"`
	AssigneeID  *uint           `gorm:"index"`
	Name        string          `gorm:"size:255;not null"`
	Description string          `gorm:"type:text"`
	Status      string          `gorm:"size:30;not null;index"`
	StartDate   *datatypes.Date
	DueDate     *datatypes.Date
	CompletedAt *int64
	CreatedAt   int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (TaskModel) TableName() string {
	return "ticket_tasks"
}

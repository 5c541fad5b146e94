package models

type EventModel struct {
	ID          uint   `gorm:"primaryKey"`
	CreatorID   uint   `gorm:"not null;index"`
	EventType   string `gorm:"size:50;not null;index"`
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`
	Location    string `gorm:"size:255"`
	StartTime   int64  `gorm:"not null;index"`
	EndTime     int64  `gorm:"not null;index"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (EventModel) TableName() string {
	return "calendar_events"
}

type ParticipantModel struct {
	ID              uint   `gorm:"primaryKey"`
	EventID         uint   `gorm:"not null;index:idx_event_user,unique"`
	UserID          uint   `gorm:"not null;index:idx_event_user,unique;index"`
	Status          string `gorm:"size:20;not null;index"`
	RejectionReason string `gorm:"size:500"`
	RespondedAt     *int64
	CreatedAt       int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (ParticipantModel) TableName() string {
	return "calendar_event_participants"
}

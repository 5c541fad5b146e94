package models

type AttachmentModel struct {
	ID           uint   `gorm:"primaryKey"`
	OwnerType    string `gorm:"size:30;not null;index:idx_owner"`
	OwnerID      uint   `gorm:"not null;index:idx_owner"`
	Collection   string `gorm:"size:30;not null"`
	Path         string `gorm:"size:500;not null"`
	OriginalName string `gorm:"size:255;not null"`
	MimeType     string `gorm:"size:100"`
	Size         int64  `gorm:"not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "attachments"
}

package db_models

type MediaAttachment struct {
	BaseModel
	EntityType       string `gorm:"size:50;not null;index" json:"entity_type"`
	EntityID         uint   `gorm:"not null;index" json:"entity_id"`
	OriginalFilename string `gorm:"size:500;not null" json:"original_filename"`
	StoredFilename   string `gorm:"size:500;not null;uniqueIndex" json:"stored_filename"`
	FileSize         int64  `gorm:"not null" json:"file_size"`
	MimeType         string `gorm:"size:200;not null" json:"mime_type"`
	UploadPath       string `gorm:"not null" json:"upload_path"`
}

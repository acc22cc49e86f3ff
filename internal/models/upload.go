package models

// Upload tracks a stored student document: resume, marks card or profile
// photo. Files live on local disk under storage.base_path.
type Upload struct {
	BaseModel
	UserID       string `gorm:"type:uuid;not null;index" json:"userId"`
	Kind         string `gorm:"not null" json:"kind"` // resume | marks_card | profile_photo
	Path         string `gorm:"not null" json:"-"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
}

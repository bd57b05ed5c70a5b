// internal/models/catalog.go
package models

// Publisher, Writer and Artist share the same shape: a unique trimmed
// name owning zero or more comics. Deleting a parent cascades to its
// comics at the store level, not through application traversal.

type Publisher struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;uniqueIndex;not null"`

	Comics []Comic `json:"comics,omitempty" gorm:"foreignKey:PublisherID;constraint:OnDelete:CASCADE"`
}

type Writer struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;uniqueIndex;not null"`

	Comics []Comic `json:"comics,omitempty" gorm:"foreignKey:WriterID;constraint:OnDelete:CASCADE"`
}

type Artist struct {
	BaseModel
	Name string `json:"name" gorm:"size:255;uniqueIndex;not null"`

	Comics []Comic `json:"comics,omitempty" gorm:"foreignKey:ArtistID;constraint:OnDelete:CASCADE"`
}

type Comic struct {
	BaseModel
	Title       string  `json:"title" gorm:"size:255;uniqueIndex;not null"`
	Amount      int     `json:"amount" gorm:"not null;default:0"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	PublisherID uint    `json:"publisher_id" gorm:"not null;index"`
	WriterID    uint    `json:"writer_id" gorm:"not null;index"`
	ArtistID    uint    `json:"artist_id" gorm:"not null;index"`

	// Relationships
	Publisher Publisher `json:"publisher,omitempty" gorm:"foreignKey:PublisherID"`
	Writer    Writer    `json:"writer,omitempty" gorm:"foreignKey:WriterID"`
	Artist    Artist    `json:"artist,omitempty" gorm:"foreignKey:ArtistID"`
}

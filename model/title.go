package model

type Title struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:256;not null"`
	Year        int    `gorm:"not null"`
	Description string `gorm:"type:text"`

	CategoryID uint     `gorm:"not null;index"`
	Category   Category `gorm:"constraint:OnDelete:CASCADE"`
	Genres     []Genre  `gorm:"many2many:title_genres;constraint:OnDelete:CASCADE"`

	Reviews []Review `gorm:"foreignKey:TitleID;constraint:OnDelete:CASCADE"`
}

package model

import "time"

// Review is one user's rating of a title. The composite unique index
// keeps it at most one review per (title, author) pair, enforced by the
// database rather than by a check in the service.
type Review struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	TitleID uint      `gorm:"not null;uniqueIndex:idx_reviews_title_author" json:"-"`
	Text    string    `gorm:"type:text;not null" json:"text"`
	Score   int       `gorm:"not null" json:"score"`
	PubDate time.Time `gorm:"autoCreateTime" json:"pub_date"`

	AuthorID uint `gorm:"not null;uniqueIndex:idx_reviews_title_author" json:"-"`
	Author   User `json:"-"`

	Comments []Comment `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE" json:"-"`
}

func (r *Review) OwnerID() uint {
	return r.AuthorID
}

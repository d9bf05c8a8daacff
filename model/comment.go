package model

import "time"

type Comment struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	ReviewID uint      `gorm:"not null;index" json:"-"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	PubDate  time.Time `gorm:"autoCreateTime" json:"pub_date"`

	AuthorID uint `gorm:"not null;index" json:"-"`
	Author   User `json:"-"`
}

func (c *Comment) OwnerID() uint {
	return c.AuthorID
}

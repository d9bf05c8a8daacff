package service

import (
	"bitwise74/review-api/model"

	"gorm.io/gorm"
)

type titleRating struct {
	TitleID uint
	Rating  float64
}

// TitleRatings computes the mean review score for each of the given
// titles in one grouped query. The float average is truncated toward
// zero, matching integer display semantics (7.5 -> 7). Titles without
// reviews have no aggregation row and are simply absent from the map:
// callers render those as null, never as zero.
func TitleRatings(d *gorm.DB, titleIDs []uint) (map[uint]int, error) {
	ratings := make(map[uint]int, len(titleIDs))
	if len(titleIDs) == 0 {
		return ratings, nil
	}

	var rows []titleRating

	err := d.Model(&model.Review{}).
		Select("title_id, AVG(score) AS rating").
		Where("title_id IN ?", titleIDs).
		Group("title_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	for _, r := range rows {
		ratings[r.TitleID] = int(r.Rating)
	}

	return ratings, nil
}

// TitleRating returns the rating of a single title, or nil when the
// title has no reviews.
func TitleRating(d *gorm.DB, titleID uint) (*int, error) {
	ratings, err := TitleRatings(d, []uint{titleID})
	if err != nil {
		return nil, err
	}

	if rating, ok := ratings[titleID]; ok {
		return &rating, nil
	}

	return nil, nil
}

package api

import (
	"bitwise74/review-api/model"
	"bitwise74/review-api/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) TitleFetchBulk(c *gin.Context) {
	requestID := c.GetString("requestID")

	q := a.DB.Model(&model.Title{})

	if s := c.Query("category"); s != "" {
		q = q.Joins("JOIN categories ON categories.id = titles.category_id").
			Where("categories.slug = ?", s)
	}

	if s := c.Query("genre"); s != "" {
		q = q.Joins("JOIN title_genres ON title_genres.title_id = titles.id").
			Joins("JOIN genres ON genres.id = title_genres.genre_id").
			Where("genres.slug = ?", s)
	}

	if s := c.Query("name"); s != "" {
		q = q.Where("titles.name LIKE ?", "%"+s+"%")
	}

	if s := c.Query("year"); s != "" {
		q = q.Where("titles.year = ?", s)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to count titles", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	limit, offset := pageParams(c)

	var titles []model.Title
	err := q.Preload("Category").Preload("Genres").
		Order("titles.id").
		Limit(limit).
		Offset(offset).
		Find(&titles).Error
	if err != nil {
		internalErr(c)

		zap.L().Error("Failed to fetch titles", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	ids := make([]uint, len(titles))
	for i := range titles {
		ids[i] = titles[i].ID
	}

	// One grouped aggregation for the whole page. Titles missing from
	// the map had no reviews and keep a null rating.
	ratings, err := service.TitleRatings(a.DB, ids)
	if err != nil {
		internalErr(c)

		zap.L().Error("Failed to compute ratings", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	results := make([]titleResponse, 0, len(titles))
	for i := range titles {
		var rating *int
		if v, ok := ratings[titles[i].ID]; ok {
			rating = &v
		}

		results = append(results, titleToResponse(&titles[i], rating))
	}

	c.JSON(http.StatusOK, paged(count, results))
}

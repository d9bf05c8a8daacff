package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ReviewFetchBulk(c *gin.Context) {
	title := a.titleByID(c)
	if title == nil {
		return
	}

	q := a.DB.Model(&model.Review{}).Where("title_id = ?", title.ID)

	var count int64
	if err := q.Count(&count).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to count reviews", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	limit, offset := pageParams(c)

	var reviews []model.Review
	if err := q.Preload("Author").Order("id").Limit(limit).Offset(offset).Find(&reviews).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to fetch reviews", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	results := make([]reviewResponse, 0, len(reviews))
	for i := range reviews {
		results = append(results, reviewToResponse(&reviews[i]))
	}

	c.JSON(http.StatusOK, paged(count, results))
}

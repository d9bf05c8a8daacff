package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) CommentFetchBulk(c *gin.Context) {
	review := a.reviewByPath(c)
	if review == nil {
		return
	}

	q := a.DB.Model(&model.Comment{}).Where("review_id = ?", review.ID)

	var count int64
	if err := q.Count(&count).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to count comments", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	limit, offset := pageParams(c)

	var comments []model.Comment
	if err := q.Preload("Author").Order("id").Limit(limit).Offset(offset).Find(&comments).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to fetch comments", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	results := make([]commentResponse, 0, len(comments))
	for i := range comments {
		results = append(results, commentToResponse(&comments[i]))
	}

	c.JSON(http.StatusOK, paged(count, results))
}

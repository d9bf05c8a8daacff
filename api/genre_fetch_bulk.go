package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) GenreFetchBulk(c *gin.Context) {
	q := a.DB.Model(&model.Genre{})

	if s := c.Query("search"); s != "" {
		q = q.Where("slug LIKE ? OR name LIKE ?", "%"+s+"%", "%"+s+"%")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to count genres", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	limit, offset := pageParams(c)

	var genres []model.Genre
	if err := q.Order("id").Limit(limit).Offset(offset).Find(&genres).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to fetch genres", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	c.JSON(http.StatusOK, paged(count, genres))
}

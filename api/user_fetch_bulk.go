package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) UserFetchBulk(c *gin.Context) {
	q := a.DB.Model(&model.User{})

	if s := c.Query("search"); s != "" {
		q = q.Where("username LIKE ?", "%"+s+"%")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to count users", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	limit, offset := pageParams(c)

	var users []model.User
	if err := q.Order("username").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to fetch users", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	c.JSON(http.StatusOK, paged(count, users))
}

package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) CategoryCreate(c *gin.Context) {
	requestID := c.GetString("requestID")

	var data slugBody
	if err := c.ShouldBindJSON(&data); err != nil {
		errJSON(c, http.StatusBadRequest, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Name == "" {
		fieldErrJSON(c, http.StatusBadRequest, "name", "no name provided")
		return
	}

	if data.Slug == "" {
		fieldErrJSON(c, http.StatusBadRequest, "slug", "no slug provided")
		return
	}

	category := model.Category{Name: data.Name, Slug: data.Slug}

	if err := a.DB.Create(&category).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			fieldErrJSON(c, http.StatusBadRequest, "slug", "This slug is already taken")
			return
		}

		internalErr(c)

		zap.L().Error("Failed to create category", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, category)
}

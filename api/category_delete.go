package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) CategoryDelete(c *gin.Context) {
	var category model.Category
	if err := a.DB.Where("slug = ?", c.Param("slug")).First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			errJSON(c, http.StatusNotFound, "Category not found")
			return
		}

		internalErr(c)

		zap.L().Error("Failed to load category", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	if !a.checkObject(c, titlePerms, nil) {
		return
	}

	// Titles referencing the category cascade away with it
	if err := a.DB.Delete(&category).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to delete category", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	c.Status(http.StatusNoContent)
}

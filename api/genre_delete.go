package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func (a *API) GenreDelete(c *gin.Context) {
	var genre model.Genre
	if err := a.DB.Where("slug = ?", c.Param("slug")).First(&genre).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			errJSON(c, http.StatusNotFound, "Genre not found")
			return
		}

		internalErr(c)

		zap.L().Error("Failed to load genre", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	if !a.checkObject(c, titlePerms, nil) {
		return
	}

	if err := a.DB.Delete(&genre).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to delete genre", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	c.Status(http.StatusNoContent)
}

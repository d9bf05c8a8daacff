package api

import (
	"bitwise74/review-api/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) TitleFetch(c *gin.Context) {
	title := a.titleByID(c)
	if title == nil {
		return
	}

	rating, err := service.TitleRating(a.DB, title.ID)
	if err != nil {
		internalErr(c)

		zap.L().Error("Failed to compute rating", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	c.JSON(http.StatusOK, titleToResponse(title, rating))
}

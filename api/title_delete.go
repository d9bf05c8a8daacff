package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) TitleDelete(c *gin.Context) {
	title := a.titleByID(c)
	if title == nil {
		return
	}

	if !a.checkObject(c, titlePerms, nil) {
		return
	}

	// Reviews, their comments and the genre links go with the title via
	// the cascade constraints
	if err := a.DB.Delete(title).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to delete title", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	c.Status(http.StatusNoContent)
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) ReviewDelete(c *gin.Context) {
	review := a.reviewByPath(c)
	if review == nil {
		return
	}

	if !a.checkObject(c, reviewPerms, review) {
		return
	}

	// comments cascade away with the review
	if err := a.DB.Delete(review).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to delete review", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	c.Status(http.StatusNoContent)
}

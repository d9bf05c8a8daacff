package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) CommentDelete(c *gin.Context) {
	comment := a.commentByPath(c)
	if comment == nil {
		return
	}

	if !a.checkObject(c, reviewPerms, comment) {
		return
	}

	if err := a.DB.Delete(comment).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to delete comment", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	c.Status(http.StatusNoContent)
}

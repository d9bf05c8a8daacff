package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) CommentFetch(c *gin.Context) {
	comment := a.commentByPath(c)
	if comment == nil {
		return
	}

	c.JSON(http.StatusOK, commentToResponse(comment))
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) ReviewFetch(c *gin.Context) {
	review := a.reviewByPath(c)
	if review == nil {
		return
	}

	c.JSON(http.StatusOK, reviewToResponse(review))
}

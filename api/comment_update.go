package api

import (
	"bitwise74/review-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type commentUpdateBody struct {
	Text *string `json:"text"`
}

func (a *API) CommentUpdate(c *gin.Context) {
	requestID := c.GetString("requestID")

	comment := a.commentByPath(c)
	if comment == nil {
		return
	}

	if !a.checkObject(c, reviewPerms, comment) {
		return
	}

	var data commentUpdateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		errJSON(c, http.StatusBadRequest, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Text != nil {
		if err := validators.TextValidator(*data.Text); err != nil {
			fieldErrJSON(c, http.StatusBadRequest, "text", err.Error())
			return
		}
		comment.Text = *data.Text
	}

	if err := a.DB.Omit("Author").Save(comment).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to update comment", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, commentToResponse(comment))
}

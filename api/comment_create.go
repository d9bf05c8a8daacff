package api

import (
	"bitwise74/review-api/model"
	"bitwise74/review-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type commentBody struct {
	Text string `json:"text"`
}

func (a *API) CommentCreate(c *gin.Context) {
	requestID := c.GetString("requestID")

	review := a.reviewByPath(c)
	if review == nil {
		return
	}

	actor := actorFrom(c).User

	var data commentBody
	if err := c.ShouldBindJSON(&data); err != nil {
		errJSON(c, http.StatusBadRequest, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.TextValidator(data.Text); err != nil {
		fieldErrJSON(c, http.StatusBadRequest, "text", err.Error())
		return
	}

	comment := model.Comment{
		ReviewID: review.ID,
		AuthorID: actor.ID,
		Author:   *actor,
		Text:     data.Text,
	}

	if err := a.DB.Omit("Author").Create(&comment).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to create comment", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, commentToResponse(&comment))
}

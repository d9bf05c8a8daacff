package api

import (
	"bitwise74/review-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type reviewUpdateBody struct {
	Text  *string `json:"text"`
	Score *int    `json:"score"`
}

func (a *API) ReviewUpdate(c *gin.Context) {
	requestID := c.GetString("requestID")

	review := a.reviewByPath(c)
	if review == nil {
		return
	}

	if !a.checkObject(c, reviewPerms, review) {
		return
	}

	var data reviewUpdateBody
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
		review.Text = *data.Text
	}

	if data.Score != nil {
		if err := validators.ScoreValidator(*data.Score); err != nil {
			fieldErrJSON(c, http.StatusBadRequest, "score", err.Error())
			return
		}
		review.Score = *data.Score
	}

	if err := a.DB.Omit("Author").Save(review).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to update review", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, reviewToResponse(review))
}

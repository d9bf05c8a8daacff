package api

import (
	"bitwise74/review-api/model"
	"bitwise74/review-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type reviewBody struct {
	Text  string `json:"text"`
	Score *int   `json:"score"`
}

func (a *API) ReviewCreate(c *gin.Context) {
	requestID := c.GetString("requestID")

	title := a.titleByID(c)
	if title == nil {
		return
	}

	// the gate only lets authenticated actors POST here
	actor := actorFrom(c).User

	var data reviewBody
	if err := c.ShouldBindJSON(&data); err != nil {
		errJSON(c, http.StatusBadRequest, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.TextValidator(data.Text); err != nil {
		fieldErrJSON(c, http.StatusBadRequest, "text", err.Error())
		return
	}

	if data.Score == nil {
		fieldErrJSON(c, http.StatusBadRequest, "score", "no score provided")
		return
	}

	if err := validators.ScoreValidator(*data.Score); err != nil {
		fieldErrJSON(c, http.StatusBadRequest, "score", err.Error())
		return
	}

	// Author comes from the token, title from the path. Neither is ever
	// read from the body.
	review := model.Review{
		TitleID:  title.ID,
		AuthorID: actor.ID,
		Author:   *actor,
		Text:     data.Text,
		Score:    *data.Score,
	}

	if err := a.DB.Omit("Author").Create(&review).Error; err != nil {
		// the composite unique index turns a concurrent double-post
		// into a conflict instead of a second row
		if err == gorm.ErrDuplicatedKey {
			errJSON(c, http.StatusConflict, "You have already reviewed this title")
			return
		}

		internalErr(c)

		zap.L().Error("Failed to create review", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, reviewToResponse(&review))
}

package api

import (
	"bitwise74/review-api/service"
	"bitwise74/review-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type titleUpdateBody struct {
	Name        *string  `json:"name"`
	Year        *int     `json:"year"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Genre       []string `json:"genre"`
}

func (a *API) TitleUpdate(c *gin.Context) {
	requestID := c.GetString("requestID")

	title := a.titleByID(c)
	if title == nil {
		return
	}

	if !a.checkObject(c, titlePerms, nil) {
		return
	}

	var data titleUpdateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		errJSON(c, http.StatusBadRequest, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Name != nil {
		if err := validators.TitleNameValidator(*data.Name); err != nil {
			fieldErrJSON(c, http.StatusBadRequest, "name", err.Error())
			return
		}
		title.Name = *data.Name
	}

	if data.Year != nil {
		if err := validators.YearValidator(*data.Year); err != nil {
			fieldErrJSON(c, http.StatusBadRequest, "year", err.Error())
			return
		}
		title.Year = *data.Year
	}

	if data.Description != nil {
		title.Description = *data.Description
	}

	if data.Category != nil {
		category := a.categoryBySlug(c, *data.Category)
		if category == nil {
			return
		}

		title.CategoryID = category.ID
		title.Category = *category
	}

	if data.Genre != nil {
		genres, ok := a.genresBySlugs(c, data.Genre)
		if !ok {
			return
		}

		if err := a.DB.Model(title).Association("Genres").Replace(genres); err != nil {
			internalErr(c)

			zap.L().Error("Failed to replace title genres", zap.Error(err), zap.String("requestID", requestID))
			return
		}
		title.Genres = genres
	}

	if err := a.DB.Omit("Category", "Genres").Save(title).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to update title", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	rating, err := service.TitleRating(a.DB, title.ID)
	if err != nil {
		internalErr(c)

		zap.L().Error("Failed to compute rating", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, titleToResponse(title, rating))
}

package api

import (
	"bitwise74/review-api/model"
	"bitwise74/review-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type titleBody struct {
	Name        string   `json:"name"`
	Year        *int     `json:"year"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Genre       []string `json:"genre"`
}

func (a *API) TitleCreate(c *gin.Context) {
	requestID := c.GetString("requestID")

	var data titleBody
	if err := c.ShouldBindJSON(&data); err != nil {
		errJSON(c, http.StatusBadRequest, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.TitleNameValidator(data.Name); err != nil {
		fieldErrJSON(c, http.StatusBadRequest, "name", err.Error())
		return
	}

	if data.Year == nil {
		fieldErrJSON(c, http.StatusBadRequest, "year", "no release year provided")
		return
	}

	if err := validators.YearValidator(*data.Year); err != nil {
		fieldErrJSON(c, http.StatusBadRequest, "year", err.Error())
		return
	}

	if data.Category == "" {
		fieldErrJSON(c, http.StatusBadRequest, "category", "no category slug provided")
		return
	}

	category := a.categoryBySlug(c, data.Category)
	if category == nil {
		return
	}

	genres, ok := a.genresBySlugs(c, data.Genre)
	if !ok {
		return
	}

	title := model.Title{
		Name:        data.Name,
		Year:        *data.Year,
		Description: data.Description,
		CategoryID:  category.ID,
		Category:    *category,
		Genres:      genres,
	}

	if err := a.DB.Create(&title).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to create title", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, titleToResponse(&title, nil))
}

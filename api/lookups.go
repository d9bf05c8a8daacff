package api

import (
	"net/http"
	"strconv"

	"bitwise74/review-api/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Path and slug resolution shared by the nested resource endpoints.
// Each helper writes the error response itself and returns nil on
// failure, so handlers can bail with a bare return.

func (a *API) titleByID(c *gin.Context) *model.Title {
	id, err := strconv.ParseUint(c.Param("titleID"), 10, 64)
	if err != nil {
		errJSON(c, http.StatusNotFound, "Title not found")
		return nil
	}

	var title model.Title
	if err := a.DB.Preload("Category").Preload("Genres").First(&title, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			errJSON(c, http.StatusNotFound, "Title not found")
			return nil
		}

		internalErr(c)

		zap.L().Error("Failed to load title", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return nil
	}

	return &title
}

// reviewByPath resolves the title and then the review, rejecting a
// review that exists but hangs off a different title.
func (a *API) reviewByPath(c *gin.Context) *model.Review {
	title := a.titleByID(c)
	if title == nil {
		return nil
	}

	id, err := strconv.ParseUint(c.Param("reviewID"), 10, 64)
	if err != nil {
		errJSON(c, http.StatusNotFound, "Review not found")
		return nil
	}

	var review model.Review
	err = a.DB.Preload("Author").Where("title_id = ?", title.ID).First(&review, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			errJSON(c, http.StatusNotFound, "Review not found")
			return nil
		}

		internalErr(c)

		zap.L().Error("Failed to load review", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return nil
	}

	return &review
}

func (a *API) commentByPath(c *gin.Context) *model.Comment {
	review := a.reviewByPath(c)
	if review == nil {
		return nil
	}

	id, err := strconv.ParseUint(c.Param("commentID"), 10, 64)
	if err != nil {
		errJSON(c, http.StatusNotFound, "Comment not found")
		return nil
	}

	var comment model.Comment
	err = a.DB.Preload("Author").Where("review_id = ?", review.ID).First(&comment, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			errJSON(c, http.StatusNotFound, "Comment not found")
			return nil
		}

		internalErr(c)

		zap.L().Error("Failed to load comment", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return nil
	}

	return &comment
}

func (a *API) categoryBySlug(c *gin.Context, slug string) *model.Category {
	var category model.Category
	if err := a.DB.Where("slug = ?", slug).First(&category).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			fieldErrJSON(c, http.StatusNotFound, "category", "Unknown category slug")
			return nil
		}

		internalErr(c)

		zap.L().Error("Failed to resolve category slug", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return nil
	}

	return &category
}

// genresBySlugs resolves every slug or fails: an unknown slug is a 404,
// never a silent no-op.
func (a *API) genresBySlugs(c *gin.Context, slugs []string) ([]model.Genre, bool) {
	if len(slugs) == 0 {
		return nil, true
	}

	unique := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		unique[s] = struct{}{}
	}

	var genres []model.Genre
	if err := a.DB.Where("slug IN ?", slugs).Find(&genres).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to resolve genre slugs", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return nil, false
	}

	if len(genres) != len(unique) {
		fieldErrJSON(c, http.StatusNotFound, "genre", "Unknown genre slug")
		return nil, false
	}

	return genres, true
}

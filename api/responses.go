package api

import (
	"net/http"
	"strconv"
	"time"

	"bitwise74/review-api/model"

	"github.com/gin-gonic/gin"
)

func errJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":     msg,
		"requestID": c.GetString("requestID"),
	})
}

// fieldErrJSON attributes an error to the request field that caused it,
// e.g. {"score": "score must be between 0 and 10"}.
func fieldErrJSON(c *gin.Context, status int, field, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		field:       msg,
		"requestID": c.GetString("requestID"),
	})
}

func internalErr(c *gin.Context) {
	errJSON(c, http.StatusInternalServerError, "Internal server error")
}

func pageParams(c *gin.Context) (limit, offset int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if err != nil || size < 1 {
		size = 10
	}
	if size > 100 {
		size = 100
	}

	return size, (page - 1) * size
}

func paged(count int64, results any) gin.H {
	return gin.H{
		"count":   count,
		"results": results,
	}
}

type titleResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Year        int            `json:"year"`
	Rating      *int           `json:"rating"`
	Genre       []model.Genre  `json:"genre"`
	Description string         `json:"description"`
	Category    model.Category `json:"category"`
}

func titleToResponse(t *model.Title, rating *int) titleResponse {
	genres := t.Genres
	if genres == nil {
		genres = []model.Genre{}
	}

	return titleResponse{
		ID:          t.ID,
		Name:        t.Name,
		Year:        t.Year,
		Rating:      rating,
		Genre:       genres,
		Description: t.Description,
		Category:    t.Category,
	}
}

type reviewResponse struct {
	ID      uint      `json:"id"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
	Score   int       `json:"score"`
	Text    string    `json:"text"`
}

func reviewToResponse(r *model.Review) reviewResponse {
	return reviewResponse{
		ID:      r.ID,
		Author:  r.Author.Username,
		PubDate: r.PubDate,
		Score:   r.Score,
		Text:    r.Text,
	}
}

type commentResponse struct {
	ID      uint      `json:"id"`
	Author  string    `json:"author"`
	PubDate time.Time `json:"pub_date"`
	Text    string    `json:"text"`
}

func commentToResponse(cm *model.Comment) commentResponse {
	return commentResponse{
		ID:      cm.ID,
		Author:  cm.Author.Username,
		PubDate: cm.PubDate,
		Text:    cm.Text,
	}
}

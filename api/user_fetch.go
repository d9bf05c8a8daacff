package api

import (
	"bitwise74/review-api/model"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// targetUser resolves the :username path segment, mapping the reserved
// "me" onto the caller's own record. The gate guarantees "me" is only
// reachable authenticated.
func (a *API) targetUser(c *gin.Context) *model.User {
	username := c.Param("username")
	if username == "me" {
		return actorFrom(c).User
	}

	var user model.User
	if err := a.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			errJSON(c, http.StatusNotFound, "User not found")
			return nil
		}

		internalErr(c)

		zap.L().Error("Failed to load user", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return nil
	}

	return &user
}

func (a *API) UserFetch(c *gin.Context) {
	user := a.targetUser(c)
	if user == nil {
		return
	}

	c.JSON(http.StatusOK, user)
}

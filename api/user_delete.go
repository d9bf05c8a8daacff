package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (a *API) UserDelete(c *gin.Context) {
	// Deleting yourself through the self-service endpoint is a business
	// rule violation for every role, even though the permission rules
	// would let the request through
	if c.Param("username") == "me" {
		errJSON(c, http.StatusMethodNotAllowed, "The me endpoint can't be deleted")
		return
	}

	user := a.targetUser(c)
	if user == nil {
		return
	}

	if !a.checkObject(c, userPerms, nil) {
		return
	}

	// their reviews and comments cascade away with the account
	if err := a.DB.Delete(user).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to delete user", zap.Error(err), zap.String("requestID", c.GetString("requestID")))
		return
	}

	c.Status(http.StatusNoContent)
}

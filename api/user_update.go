package api

import (
	"bitwise74/review-api/model"
	"bitwise74/review-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type userUpdateBody struct {
	Username  *string     `json:"username"`
	Email     *string     `json:"email"`
	FirstName *string     `json:"first_name"`
	LastName  *string     `json:"last_name"`
	Bio       *string     `json:"bio"`
	Role      *model.Role `json:"role"`
}

func (a *API) UserUpdate(c *gin.Context) {
	requestID := c.GetString("requestID")

	user := a.targetUser(c)
	if user == nil {
		return
	}

	// the role-field restriction on "me" runs here again with the
	// object resolved
	if !a.checkObject(c, userPerms, nil) {
		return
	}

	var data userUpdateBody
	if err := c.ShouldBindJSON(&data); err != nil {
		errJSON(c, http.StatusBadRequest, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Username != nil {
		if err := validators.UsernameValidator(*data.Username); err != nil {
			fieldErrJSON(c, http.StatusBadRequest, "username", err.Error())
			return
		}
		user.Username = *data.Username
	}

	if data.Email != nil {
		if err := validators.EmailValidator(*data.Email); err != nil {
			fieldErrJSON(c, http.StatusBadRequest, "email", err.Error())
			return
		}
		user.Email = *data.Email
	}

	if data.FirstName != nil {
		user.FirstName = *data.FirstName
	}

	if data.LastName != nil {
		user.LastName = *data.LastName
	}

	if data.Bio != nil {
		user.Bio = *data.Bio
	}

	if data.Role != nil {
		// second line of defense behind the gate's payload-field rule:
		// only admins and superusers ever assign roles
		actor := actorFrom(c).User
		if actor.Role != model.RoleAdmin && !actor.Superuser {
			errJSON(c, http.StatusForbidden, "You don't have permission to change roles")
			return
		}

		if !model.ValidRole(*data.Role) {
			fieldErrJSON(c, http.StatusBadRequest, "role", "Unknown role")
			return
		}
		user.Role = *data.Role
	}

	if err := a.DB.Save(user).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			fieldErrJSON(c, http.StatusBadRequest, "username", "This username or email is already registered")
			return
		}

		internalErr(c)

		zap.L().Error("Failed to update user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, user)
}

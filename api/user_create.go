package api

import (
	"bitwise74/review-api/model"
	"bitwise74/review-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type userBody struct {
	Username  string     `json:"username"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Bio       string     `json:"bio"`
	Role      model.Role `json:"role"`
}

// UserCreate is the admin path for provisioning accounts directly,
// bypassing the signup/confirmation flow.
func (a *API) UserCreate(c *gin.Context) {
	requestID := c.GetString("requestID")

	var data userBody
	if err := c.ShouldBindJSON(&data); err != nil {
		errJSON(c, http.StatusBadRequest, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.UsernameValidator(data.Username); err != nil {
		fieldErrJSON(c, http.StatusBadRequest, "username", err.Error())
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		fieldErrJSON(c, http.StatusBadRequest, "email", err.Error())
		return
	}

	if data.Role == "" {
		data.Role = model.RoleUser
	}

	if !model.ValidRole(data.Role) {
		fieldErrJSON(c, http.StatusBadRequest, "role", "Unknown role")
		return
	}

	user := model.User{
		Username:  data.Username,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Bio:       data.Bio,
		Role:      data.Role,
	}

	if err := a.DB.Create(&user).Error; err != nil {
		if err == gorm.ErrDuplicatedKey {
			fieldErrJSON(c, http.StatusBadRequest, "username", "This username or email is already registered")
			return
		}

		internalErr(c)

		zap.L().Error("Failed to create user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, user)
}

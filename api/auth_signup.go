package api

import (
	"bitwise74/review-api/model"
	"bitwise74/review-api/pkg/security"
	"bitwise74/review-api/validators"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type signupBody struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

func (a *API) AuthSignup(c *gin.Context) {
	requestID := c.GetString("requestID")

	var data signupBody
	if err := c.ShouldBindJSON(&data); err != nil {
		errJSON(c, http.StatusBadRequest, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if err := validators.EmailValidator(data.Email); err != nil {
		fieldErrJSON(c, http.StatusBadRequest, "email", err.Error())
		return
	}

	if err := validators.UsernameValidator(data.Username); err != nil {
		fieldErrJSON(c, http.StatusBadRequest, "username", err.Error())
		return
	}

	// Cross-collision checks: the same email under another username (or
	// the other way around) is a hard reject, only the exact pair may
	// re-sign-up
	var existing model.User
	err := a.DB.Where("email = ? OR username = ?", data.Email, data.Username).First(&existing).Error
	switch {
	case err == nil:
		if existing.Email == data.Email && existing.Username != data.Username {
			fieldErrJSON(c, http.StatusBadRequest, "email", "This email is already registered under a different username")
			return
		}

		if existing.Username == data.Username && existing.Email != data.Email {
			fieldErrJSON(c, http.StatusBadRequest, "username", "This username is already registered under a different email")
			return
		}
	case err != gorm.ErrRecordNotFound:
		internalErr(c)

		zap.L().Error("Failed to check for existing identity", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Get-or-create in one conditional statement. The unique indexes
	// close the race between concurrent identical signups: the losing
	// insert comes back as a duplicate key and is retried as a fetch.
	user := model.User{Email: data.Email, Username: data.Username}

	err = a.DB.Where(&model.User{Email: data.Email, Username: data.Username}).FirstOrCreate(&user).Error
	if err == gorm.ErrDuplicatedKey {
		err = a.DB.Where("email = ? AND username = ?", data.Email, data.Username).First(&user).Error
		if err == gorm.ErrRecordNotFound {
			// the duplicate came from a cross collision that raced past
			// the checks above
			fieldErrJSON(c, http.StatusBadRequest, "username", "This identity is already registered")
			return
		}
	}
	if err != nil {
		internalErr(c)

		zap.L().Error("Failed to get or create identity", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Every signup rotates the code, invalidating previously issued ones
	code := security.MakeConfirmationCode(user.ID, user.Username)

	if err := a.DB.Model(&user).Update("confirmation_code", code).Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to store confirmation code", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Fire and forget, the response never waits for delivery
	go func() {
		if err := a.Mail.SendConfirmationCode(user.Email, user.Username, code); err != nil {
			zap.L().Error("Failed to send confirmation mail", zap.Error(err), zap.String("requestID", requestID))
		}
	}()

	c.JSON(http.StatusOK, gin.H{
		"email":    user.Email,
		"username": user.Username,
	})
}

package api

import (
	"bitwise74/review-api/model"
	"bitwise74/review-api/pkg/security"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type tokenBody struct {
	Username         string `json:"username"`
	ConfirmationCode string `json:"confirmation_code"`
}

func (a *API) AuthToken(c *gin.Context) {
	requestID := c.GetString("requestID")

	var data tokenBody
	if err := c.ShouldBindJSON(&data); err != nil {
		errJSON(c, http.StatusBadRequest, "Invalid request body")

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Username == "" {
		fieldErrJSON(c, http.StatusBadRequest, "username", "no username provided")
		return
	}

	var user model.User
	if err := a.DB.Where("username = ?", data.Username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			errJSON(c, http.StatusNotFound, "User not found")
			return
		}

		internalErr(c)

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// A wrong code is a field error on confirmation_code, deliberately
	// distinct from both "user not found" and a permission failure
	ok := security.CheckConfirmationCode(
		user.ConfirmationCode,
		data.ConfirmationCode,
		user.ID,
		user.Username,
		viper.GetDuration("signup.code_max_age"),
	)
	if !ok {
		fieldErrJSON(c, http.StatusBadRequest, "confirmation_code", "Invalid confirmation code")
		return
	}

	// Single use: a fresh signup is needed to get another one
	if err := a.DB.Model(&user).Update("confirmation_code", "").Error; err != nil {
		internalErr(c)

		zap.L().Error("Failed to clear confirmation code", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	pair, err := security.MakeTokenPair(user.ID)
	if err != nil {
		internalErr(c)

		zap.L().Error("Failed to issue token pair", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, pair)
}

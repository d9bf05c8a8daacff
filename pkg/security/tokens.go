package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

type TokenPair struct {
	Access  string `json:"access_token"`
	Refresh string `json:"refresh_token"`
}

var ErrTokenInvalid = errors.New("authorization token invalid")

// MakeTokenPair issues the access/refresh JWTs for a confirmed identity.
func MakeTokenPair(userID uint) (*TokenPair, error) {
	access, err := makeToken(userID, "auth", viper.GetDuration("jwt.access_ttl"))
	if err != nil {
		return nil, err
	}

	refresh, err := makeToken(userID, "refresh", viper.GetDuration("jwt.refresh_ttl"))
	if err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func makeToken(userID uint, typ string, ttl time.Duration) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"type":    typ,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(ttl).Unix(),
	})

	return t.SignedString([]byte(viper.GetString("jwt.secret")))
}

// ParseAccessToken validates an access token and returns the user ID it
// was issued for. Refresh tokens are rejected here: they only buy a new
// pair, never direct access.
func ParseAccessToken(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Method.Alg())
		}

		return []byte(viper.GetString("jwt.secret")), nil
	})
	if err != nil || !token.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}

	if typ, _ := claims["type"].(string); typ != "auth" {
		return 0, ErrTokenInvalid
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return 0, ErrTokenInvalid
	}

	return uint(userID), nil
}

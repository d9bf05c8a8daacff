// Package security contains token construction and verification used by
// the signup and session flows
package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Confirmation codes are purpose-scoped HMACs over the identity they
// were issued for, prefixed with the issue timestamp. They are not
// session tokens: keyed with signup.secret when one is configured and
// always labeled, so neither can stand in for the other.

const confirmationLabel = "signup-confirmation"

func confirmationKey() []byte {
	if s := viper.GetString("signup.secret"); s != "" {
		return []byte(s)
	}

	// fallback keeps single-secret deployments working, the label still
	// separates codes from session tokens
	return []byte(viper.GetString("jwt.secret"))
}

// MakeConfirmationCode issues a fresh code bound to the given identity.
func MakeConfirmationCode(userID uint, username string) string {
	ts := time.Now().Unix()
	return fmt.Sprintf("%v-%v", strconv.FormatInt(ts, 36), confirmationSignature(userID, username, ts))
}

// CheckConfirmationCode verifies that provided was produced by
// MakeConfirmationCode for this identity, hasn't outlived maxAge and
// matches the stored code exactly. Rotated or cleared stored codes make
// every previously issued code invalid.
func CheckConfirmationCode(stored, provided string, userID uint, username string, maxAge time.Duration) bool {
	if stored == "" || provided == "" {
		return false
	}

	tsRaw, sig, ok := strings.Cut(provided, "-")
	if !ok {
		return false
	}

	ts, err := strconv.ParseInt(tsRaw, 36, 64)
	if err != nil {
		return false
	}

	if time.Since(time.Unix(ts, 0)) > maxAge {
		return false
	}

	want := confirmationSignature(userID, username, ts)
	if !hmac.Equal([]byte(sig), []byte(want)) {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(stored), []byte(provided)) == 1
}

func confirmationSignature(userID uint, username string, ts int64) string {
	mac := hmac.New(sha256.New, confirmationKey())
	fmt.Fprintf(mac, "%v:%d:%v:%d", confirmationLabel, userID, username, ts)
	return fmt.Sprintf("%x", mac.Sum(nil)[:16])
}

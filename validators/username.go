package validators

import (
	"errors"
	"regexp"
)

const usernameMaxLen = 150

var (
	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

	ErrUsernameEmpty    = errors.New("no username provided")
	ErrUsernameTooLong  = errors.New("username can't be longer than 150 characters")
	ErrUsernameInvalid  = errors.New("username may only contain letters, digits and @/./+/-/_ characters")
	ErrUsernameReserved = errors.New("username 'me' is reserved")
)

func UsernameValidator(u string) error {
	if u == "" {
		return ErrUsernameEmpty
	}

	if len(u) > usernameMaxLen {
		return ErrUsernameTooLong
	}

	if !usernamePattern.MatchString(u) {
		return ErrUsernameInvalid
	}

	// "me" addresses the caller's own record on the users endpoint
	if u == "me" {
		return ErrUsernameReserved
	}

	return nil
}

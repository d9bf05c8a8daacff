package validators

import (
	"errors"
	"time"
)

var (
	ErrTitleNameEmpty = errors.New("no title name provided")
	ErrYearInFuture   = errors.New("release year can't be later than the current year")
)

func TitleNameValidator(name string) error {
	if name == "" {
		return ErrTitleNameEmpty
	}

	return nil
}

func YearValidator(year int) error {
	if year > time.Now().Year() {
		return ErrYearInFuture
	}

	return nil
}

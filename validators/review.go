package validators

import "errors"

var (
	ErrScoreOutOfRange = errors.New("score must be between 0 and 10")
	ErrTextEmpty       = errors.New("no text provided")
)

func ScoreValidator(score int) error {
	if score < 0 || score > 10 {
		return ErrScoreOutOfRange
	}

	return nil
}

func TextValidator(text string) error {
	if text == "" {
		return ErrTextEmpty
	}

	return nil
}

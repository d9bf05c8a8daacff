package validators

import (
	"strings"
	"testing"
	"time"
)

func TestEmailValidator(t *testing.T) {
	t.Parallel()

	if err := EmailValidator("alice@example.com"); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	if err := EmailValidator(""); err != ErrEmailEmpty {
		t.Fatalf("want ErrEmailEmpty, got %v", err)
	}
	if err := EmailValidator("not-an-email"); err != ErrEmailInvalid {
		t.Fatalf("want ErrEmailInvalid, got %v", err)
	}

	long := strings.Repeat("a", 250) + "@example.com"
	if err := EmailValidator(long); err != ErrEmailTooLong {
		t.Fatalf("want ErrEmailTooLong, got %v", err)
	}
}

func TestUsernameValidator(t *testing.T) {
	t.Parallel()

	for _, ok := range []string{"alice", "a.b", "a@b", "a+b", "a-b", "a_b", "User123"} {
		if err := UsernameValidator(ok); err != nil {
			t.Fatalf("valid username %q rejected: %v", ok, err)
		}
	}

	tests := []struct {
		in   string
		want error
	}{
		{"", ErrUsernameEmpty},
		{"me", ErrUsernameReserved},
		{"has space", ErrUsernameInvalid},
		{"semi;colon", ErrUsernameInvalid},
		{strings.Repeat("a", 151), ErrUsernameTooLong},
	}

	for _, tt := range tests {
		if err := UsernameValidator(tt.in); err != tt.want {
			t.Fatalf("UsernameValidator(%q) = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestYearValidator(t *testing.T) {
	t.Parallel()

	current := time.Now().Year()

	if err := YearValidator(current); err != nil {
		t.Fatalf("current year rejected: %v", err)
	}
	if err := YearValidator(1896); err != nil {
		t.Fatalf("past year rejected: %v", err)
	}
	if err := YearValidator(current + 1); err != ErrYearInFuture {
		t.Fatalf("want ErrYearInFuture, got %v", err)
	}
}

func TestScoreValidator(t *testing.T) {
	t.Parallel()

	for s := 0; s <= 10; s++ {
		if err := ScoreValidator(s); err != nil {
			t.Fatalf("score %d rejected: %v", s, err)
		}
	}
	if err := ScoreValidator(-1); err != ErrScoreOutOfRange {
		t.Fatalf("want ErrScoreOutOfRange, got %v", err)
	}
	if err := ScoreValidator(11); err != ErrScoreOutOfRange {
		t.Fatalf("want ErrScoreOutOfRange, got %v", err)
	}
}

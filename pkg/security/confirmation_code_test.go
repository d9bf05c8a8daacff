package security

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestConfirmationCodeRoundTrip(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	code := MakeConfirmationCode(42, "alice")

	if !CheckConfirmationCode(code, code, 42, "alice", time.Hour) {
		t.Fatal("freshly issued code should verify")
	}
}

func TestConfirmationCodeWrongIdentity(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	code := MakeConfirmationCode(42, "alice")

	if CheckConfirmationCode(code, code, 43, "alice", time.Hour) {
		t.Fatal("code must be bound to the user ID")
	}
	if CheckConfirmationCode(code, code, 42, "bob", time.Hour) {
		t.Fatal("code must be bound to the username")
	}
}

func TestConfirmationCodeStaleStored(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	old := MakeConfirmationCode(42, "alice")
	time.Sleep(time.Second + time.Millisecond) // next unix second, distinct timestamp prefix
	fresh := MakeConfirmationCode(42, "alice")

	if old == fresh {
		t.Fatal("expected distinct codes across issuances")
	}

	// the previously issued code no longer matches the stored one
	if CheckConfirmationCode(fresh, old, 42, "alice", time.Hour) {
		t.Fatal("stale code must be rejected after rotation")
	}

	// a cleared stored code invalidates everything
	if CheckConfirmationCode("", fresh, 42, "alice", time.Hour) {
		t.Fatal("cleared stored code must reject any provided code")
	}
}

func TestConfirmationCodeExpiry(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	code := MakeConfirmationCode(42, "alice")
	time.Sleep(time.Second + time.Millisecond)

	if CheckConfirmationCode(code, code, 42, "alice", time.Millisecond) {
		t.Fatal("code older than maxAge must be rejected")
	}
}

func TestConfirmationCodeDedicatedSecret(t *testing.T) {
	viper.Set("jwt.secret", "session-secret")
	viper.Set("signup.secret", "signup-secret")
	defer viper.Set("signup.secret", "")

	code := MakeConfirmationCode(42, "alice")

	// the session secret plays no part in the signature once a
	// dedicated one is configured
	viper.Set("jwt.secret", "rotated")
	if !CheckConfirmationCode(code, code, 42, "alice", time.Hour) {
		t.Fatal("code must verify independently of the session secret")
	}

	viper.Set("signup.secret", "another-secret")
	if CheckConfirmationCode(code, code, 42, "alice", time.Hour) {
		t.Fatal("code must not verify under a different signup secret")
	}

	// without signup.secret the key falls back to the session secret
	viper.Set("signup.secret", "")
	viper.Set("jwt.secret", "test-secret")

	fallback := MakeConfirmationCode(42, "alice")
	if !CheckConfirmationCode(fallback, fallback, 42, "alice", time.Hour) {
		t.Fatal("fallback-keyed code should verify")
	}
}

func TestConfirmationCodeGarbage(t *testing.T) {
	viper.Set("jwt.secret", "test-secret")

	code := MakeConfirmationCode(42, "alice")

	for _, bad := range []string{"", "nodash", "zz-short", "-", code + "x"} {
		if CheckConfirmationCode(code, bad, 42, "alice", time.Hour) {
			t.Fatalf("malformed code %q must be rejected", bad)
		}
	}
}

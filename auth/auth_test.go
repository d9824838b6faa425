package auth

import (
	"errors"
	"testing"
)

func TestCheckPassphrase(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{input: "23303123", want: nil},
		{input: "2330312", want: ErrWrongPassphrase},
		{input: "233031234", want: ErrWrongPassphrase},
		{input: " 23303123", want: ErrWrongPassphrase},
		{input: "", want: ErrWrongPassphrase},
	}
	for _, tt := range tests {
		if err := CheckPassphrase(tt.input, "23303123"); !errors.Is(err, tt.want) {
			t.Fatalf("input %q: expected %v, got %v", tt.input, tt.want, err)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := CreateToken("sess-1", "secret")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	claims, err := VerifyToken(token, "secret")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.SessionID != "sess-1" {
		t.Fatalf("expected sess-1, got %q", claims.SessionID)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, _ := CreateToken("sess-1", "secret")
	if _, err := VerifyToken(token, "other"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	if _, err := VerifyToken("not-a-token", "secret"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCreateToken_MissingSecret(t *testing.T) {
	if _, err := CreateToken("sess-1", ""); err == nil {
		t.Fatalf("expected error without a secret")
	}
}

package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("hash must not equal plaintext")
	}
	if !CheckPassword("secret123", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}

func TestUserTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	token, err := IssueUserToken(42)
	if err != nil {
		t.Fatalf("IssueUserToken: %v", err)
	}

	userID, err := ParseUserToken(token)
	if err != nil {
		t.Fatalf("ParseUserToken: %v", err)
	}
	if userID != 42 {
		t.Fatalf("got userID %d, want 42", userID)
	}
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	userToken, err := IssueUserToken(7)
	if err != nil {
		t.Fatalf("IssueUserToken: %v", err)
	}
	adminToken, err := IssueAdminToken(9)
	if err != nil {
		t.Fatalf("IssueAdminToken: %v", err)
	}

	// Both tokens are signed with the same secret; the claim shape alone
	// must keep them apart.
	if _, err := ParseAdminToken(userToken); err == nil {
		t.Fatal("customer token accepted as admin token")
	}
	if _, err := ParseUserToken(adminToken); err == nil {
		t.Fatal("admin token accepted as customer token")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")

	claims := userClaims{
		UserID: 5,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-TokenLifetime)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := ParseUserToken(token); err != ErrInvalidToken {
		t.Fatalf("expired token: got %v, want ErrInvalidToken", err)
	}
}

func TestForeignSecretRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret_one")
	token, err := IssueUserToken(5)
	if err != nil {
		t.Fatalf("IssueUserToken: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret_two")
	if _, err := ParseUserToken(token); err != ErrInvalidToken {
		t.Fatalf("foreign-secret token: got %v, want ErrInvalidToken", err)
	}
}

func TestGarbageTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_secret")
	if _, err := ParseUserToken("not.a.token"); err != ErrInvalidToken {
		t.Fatalf("garbage token: got %v, want ErrInvalidToken", err)
	}
}

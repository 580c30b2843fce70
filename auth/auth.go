package auth

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// TokenLifetime is fixed; there is no refresh. Expiry forces a fresh login.
	TokenLifetime = 6 * time.Hour

	UserCookieName  = "user_token"
	AdminCookieName = "admin_token"

	bcryptCost = 10
)

// ErrInvalidToken covers every token failure (missing, expired, forged,
// wrong principal kind). Callers must not learn which one it was.
var ErrInvalidToken = errors.New("invalid token")

// Customer and admin tokens share the signing mechanism but carry disjoint
// claim shapes, so one kind can never be accepted where the other is
// required even though both are signed with the same secret.
type userClaims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

type adminClaims struct {
	AdminID uint `json:"adminId"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "doxa_secret"
	}
	return []byte(secret)
}

// HashPassword returns a salted bcrypt hash of the plaintext.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}

// IssueUserToken signs a customer session token.
func IssueUserToken(userID uint) (string, error) {
	claims := userClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// IssueAdminToken signs an admin session token.
func IssueAdminToken(adminID uint) (string, error) {
	claims := adminClaims{
		AdminID: adminID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

func keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("invalid token signing method")
	}
	return jwtSecret(), nil
}

// ParseUserToken validates a customer token and returns the user ID.
func ParseUserToken(tokenString string) (uint, error) {
	var claims userClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, keyFunc)
	if err != nil || !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

// ParseAdminToken validates an admin token and returns the admin ID.
func ParseAdminToken(tokenString string) (uint, error) {
	var claims adminClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, keyFunc)
	if err != nil || !token.Valid || claims.AdminID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.AdminID, nil
}

func isProd() bool {
	return os.Getenv("APP_ENV") == "production"
}

// SetAuthCookie stores a session token as an HTTP-only, same-site cookie.
// The token never reaches page content or JS-readable storage.
func SetAuthCookie(c *gin.Context, name, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, token, int(TokenLifetime.Seconds()), "/", "", isProd(), true)
}

// ClearAuthCookie expires the named session cookie.
func ClearAuthCookie(c *gin.Context, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", isProd(), true)
}

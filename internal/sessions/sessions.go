package sessions

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session token.
const CookieName = "session_token"

// Tokens issues and parses signed session tokens. The token itself is
// opaque to the client; revocation is handled by the session repository,
// which keeps an allowlist entry per token ID.
type Tokens struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Session lifetime
}

// New creates a new Tokens instance
func New(secretKey string, expiration time.Duration) *Tokens {
	return &Tokens{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a session token for a username. The returned token ID
// is the key under which the session is stored server-side.
func (t *Tokens) Generate(ctx context.Context, username string) (token string, tokenID string, err error) {
	tokenID = uuid.NewString()
	claims := jwt.MapClaims{
		"username": username,
		"jti":      tokenID,
		"exp":      time.Now().Add(t.Exp).Unix(),
		"iat":      time.Now().Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = tok.SignedString([]byte(t.SecretKey))
	return token, tokenID, err
}

// Parse validates the token signature and expiry and returns the username
// and token ID embedded in it.
func (t *Tokens) Parse(ctx context.Context, tokenString string) (username string, tokenID string, err error) {
	tok, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(t.SecretKey), nil
	})
	if err != nil {
		return "", "", err
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return "", "", errors.New("invalid token")
	}

	username, ok = claims["username"].(string)
	if !ok || username == "" {
		return "", "", errors.New("username not found in token")
	}
	tokenID, ok = claims["jti"].(string)
	if !ok || tokenID == "" {
		return "", "", errors.New("token id not found in token")
	}

	return username, tokenID, nil
}

// GetTokenFromRequest extracts the session token from the request cookie
func (t *Tokens) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", errors.New("session cookie missing")
	}
	if cookie.Value == "" {
		return "", errors.New("session cookie empty")
	}
	return cookie.Value, nil
}

package utils

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"hirehub/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// TokenCookie is the HTTP-only cookie that carries the session token.
	TokenCookie = "token"
	TokenTTL    = 30 * 24 * time.Hour
)

var parseJWT = func(tokenStr string, keyFunc jwt.Keyfunc) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, keyFunc, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
}

var (
	ErrMissingToken  = errors.New("missing session token")
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid token claims")
)

// Session is the decoded content of a valid session token.
type Session struct {
	UserID    string
	Role      models.Role
	TokenID   string
	ExpiresAt time.Time
}

func (s Session) Caller() models.Caller {
	return models.Caller{ID: s.UserID, Role: s.Role}
}

// IssueToken signs a session token for the user valid for TokenTTL from now.
func IssueToken(secret, userID string, role models.Role, now time.Time) (string, Session, error) {
	session := Session{
		UserID:    userID,
		Role:      role,
		TokenID:   uuid.NewString(),
		ExpiresAt: now.Add(TokenTTL),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  session.UserID,
		"role": string(session.Role),
		"jti":  session.TokenID,
		"iat":  now.Unix(),
		"exp":  session.ExpiresAt.Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", Session{}, err
	}
	return signed, session, nil
}

// ParseToken validates the signature and expiry of tokenStr.
func ParseToken(tokenStr, secret string) (Session, error) {
	token, err := parseJWT(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Session{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, ErrInvalidClaims
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	jti, _ := claims["jti"].(string)
	if sub == "" {
		return Session{}, ErrInvalidClaims
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return Session{}, ErrInvalidClaims
	}
	return Session{UserID: sub, Role: models.Role(role), TokenID: jti, ExpiresAt: exp.Time}, nil
}

// TokenFromRequest reads the session cookie, falling back to a Bearer
// Authorization header for non-browser clients.
func TokenFromRequest(r *http.Request) (string, error) {
	if c, err := r.Cookie(TokenCookie); err == nil && c.Value != "" {
		return c.Value, nil
	}
	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		if tok := strings.TrimPrefix(authz, "Bearer "); tok != "" {
			return tok, nil
		}
	}
	return "", ErrMissingToken
}

// SetSessionCookie writes the session cookie.
func SetSessionCookie(w http.ResponseWriter, token string, expires time.Time, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	})
}

package middleware

import (
	"context"
	"net/http"
	"slices"

	"hirehub/internal/models"
	"hirehub/internal/session"
	"hirehub/internal/utils"

	"go.uber.org/zap"
)

const sessionKey contextKey = "session"

// Authenticator resolves the session token of a request.
type Authenticator struct {
	Secret  string
	Revoker session.Revoker
}

func NewAuthenticator(secret string, revoker session.Revoker) *Authenticator {
	if revoker == nil {
		revoker = session.NopRevoker{}
	}
	return &Authenticator{Secret: secret, Revoker: revoker}
}

func (a *Authenticator) resolve(r *http.Request) (utils.Session, error) {
	tokenStr, err := utils.TokenFromRequest(r)
	if err != nil {
		return utils.Session{}, err
	}
	sess, err := utils.ParseToken(tokenStr, a.Secret)
	if err != nil {
		return utils.Session{}, err
	}
	revoked, err := a.Revoker.IsRevoked(r.Context(), sess.TokenID)
	if err != nil {
		// an unreachable deny-list does not lock everyone out
		utils.GetLogger().Warn("revocation check failed", zap.Error(err))
		return sess, nil
	}
	if revoked {
		return utils.Session{}, utils.ErrInvalidToken
	}
	return sess, nil
}

// RequireAuth rejects requests without a valid, unrevoked session token.
func (a *Authenticator) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := a.resolve(r)
		if err != nil {
			utils.JSONError(w, http.StatusUnauthorized, "unauthenticated", "Not authorized, no token")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}

// OptionalAuth attaches the session when one is present and valid, and
// otherwise lets the request through anonymously.
func (a *Authenticator) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sess, err := a.resolve(r); err == nil {
			r = r.WithContext(WithSession(r.Context(), sess))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFrom(r.Context())
			if !ok {
				utils.JSONError(w, http.StatusUnauthorized, "unauthenticated", "Not authorized, no token")
				return
			}
			if !slices.Contains(roles, sess.Role) {
				utils.JSONError(w, http.StatusForbidden, "forbidden", "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func WithSession(ctx context.Context, sess utils.Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

func SessionFrom(ctx context.Context) (utils.Session, bool) {
	sess, ok := ctx.Value(sessionKey).(utils.Session)
	return sess, ok
}

// CallerFrom returns the authenticated caller. Handlers behind RequireAuth
// can rely on ok being true.
func CallerFrom(ctx context.Context) (models.Caller, bool) {
	sess, ok := SessionFrom(ctx)
	if !ok {
		return models.Caller{}, false
	}
	return sess.Caller(), true
}

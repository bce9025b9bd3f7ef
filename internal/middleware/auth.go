package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Starley-iggy/YahooBank/internal/repository"
	"github.com/Starley-iggy/YahooBank/pkg/resp"
	"github.com/Starley-iggy/YahooBank/pkg/token"
)

const sessionCookieName = "session_id"

type usernameCtxKey struct{}

// UsernameToContext кладет имя аутентифицированного пользователя в контекст запроса
func UsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameCtxKey{}, username)
}

// UsernameFromContext достает имя пользователя, положенное middleware Auth
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameCtxKey{}).(string)
	return username, ok
}

// Auth — middleware аутентификации API.
// Сначала проверяется Bearer access токен, затем cookie сессии.
// Без того и другого запрос отклоняется с 401
func Auth(sessions repository.AuthRepository, secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, ok := resolveUsername(r, sessions, secretKey)
			if !ok {
				resp.WriteJSONError(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			next.ServeHTTP(w, r.WithContext(UsernameToContext(r.Context(), username)))
		})
	}
}

func resolveUsername(r *http.Request, sessions repository.AuthRepository, secretKey []byte) (string, bool) {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		claims, err := token.VerifyToken(strings.TrimPrefix(header, "Bearer "), secretKey)
		if err == nil && claims.Subject != "" {
			return claims.Subject, true
		}
	}

	c, err := r.Cookie(sessionCookieName)
	if err != nil {
		return "", false
	}

	session, err := sessions.GetSession(r.Context(), c.Value)
	if err != nil {
		return "", false
	}

	return session.Username, true
}

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/gabble/internal/store"
)

// ctxSessionKey is the context key type for storing the resolved *store.Entry.
type ctxSessionKey struct{}

// signToken creates an HS256 JWT carrying the session id (sid).
func (s *Server) signToken(sessionID string) (string, error) {
	now := s.opts.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(s.opts.TokenTTL).Unix(),
	})
	return t.SignedString([]byte(s.opts.TokenSecret))
}

// parseToken validates tok and returns its session id.
func (s *Server) parseToken(tok string) (string, error) {
	claims := jwt.MapClaims{}
	t, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.opts.TokenSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.opts.Now),
	)
	if err != nil {
		return "", err
	}
	if !t.Valid {
		return "", errors.New("invalid token")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("token has no session")
	}
	return sid, nil
}

// bearerToken extracts a bearer token from the Authorization header.
func bearerToken(r *http.Request) string {
	// Authorization: Bearer <token>
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	return ""
}

// requireSession enforces a valid token and injects the live session entry
// into the request context.
func (s *Server) requireSession() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := bearerToken(r)
			if tok == "" {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			sid, err := s.parseToken(tok)
			if err != nil {
				http.Error(w, `{"error":"Invalid token"}`, http.StatusUnauthorized)
				return
			}
			e, err := s.store.Get(r.Context(), sid)
			if err != nil {
				http.Error(w, `{"error":"not_found"}`, http.StatusNotFound)
				return
			}
			ctx := context.WithValue(r.Context(), ctxSessionKey{}, e)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionFromContext returns the entry stored by requireSession.
func sessionFromContext(r *http.Request) *store.Entry {
	e, _ := r.Context().Value(ctxSessionKey{}).(*store.Entry)
	return e
}

package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
)

const (
	// RoleAdmin роль, которой доступны админские маршруты
	RoleAdmin = "admin"

	bearerPrefix = "Bearer "

	msgMissingToken = "missing bearer token"
	msgInvalidToken = "invalid or expired token"
	msgForbidden    = "admin role required"
)

type contextKey string

const claimsKey contextKey = "claims"

// Claims содержимое токена администратора
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth пропускает только запросы с валидным HS256 токеном роли admin
type AdminAuth struct {
	secret []byte
	issuer string
	logger Logger
}

func NewAdminAuth(secret, issuer string, logger Logger) *AdminAuth {
	return &AdminAuth{
		secret: []byte(secret),
		issuer: issuer,
		logger: logger,
	}
}

// Middleware mux middleware для админского subrouter
func (a *AdminAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			a.logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
			handlers.RespondUnauthorized(w, msgMissingToken)
			return
		}

		claims, err := a.Parse(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			a.logger.Warn("%s %s - Invalid token: %v", r.Method, r.URL.Path, err)
			handlers.RespondUnauthorized(w, msgInvalidToken)
			return
		}

		if claims.Role != RoleAdmin {
			a.logger.Warn("%s %s - Forbidden: subject=%s, role=%s", r.Method, r.URL.Path, claims.Subject, claims.Role)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey, claims)))
	})
}

// Parse проверяет подпись, срок действия и издателя токена
func (a *AdminAuth) Parse(token string) (*Claims, error) {
	claims := &Claims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

// Issue выпускает токен администратора (cmd/admintoken)
func (a *AdminAuth) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// GetClaims достаёт claims администратора из контекста
func GetClaims(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"epicerie/internal/core/domain/model/kernel"
	"epicerie/internal/pkg/bearer"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Principal is the authenticated caller extracted from the bearer token.
// EpicerieID is only present on épicier tokens.
type Principal struct {
	UserID     kernel.ID
	Role       kernel.Role
	EpicerieID *kernel.ID
}

type principalKey struct{}

// WithPrincipal stores the principal in the context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext retrieves the principal placed by the auth middleware.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok
}

// tokenClaims is the claim set minted by the marketplace auth service.
type tokenClaims struct {
	UserID     int64  `json:"userId"`
	Role       string `json:"role"`
	EpicerieID *int64 `json:"epicerieId"`
	jwt.RegisteredClaims
}

// AuthMiddleware validates the bearer token on every request, places the
// resulting principal in the request context, and re-exports the raw token so
// outbound marketplace calls authenticate as the original caller.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := extractBearer(c.Request().Header.Get("Authorization"))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}

			principal, err := parseToken(raw, secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorBody{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			ctx := WithPrincipal(c.Request().Context(), principal)
			ctx = bearer.WithToken(ctx, raw)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func extractBearer(header string) (string, error) {
	if header == "" {
		return "", errors.New("missing authorization header")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", errors.New("empty bearer token")
	}
	return token, nil
}

func parseToken(raw, secret string) (*Principal, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}

	token, err := jwt.ParseWithClaims(raw, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}

	claims, _ := token.Claims.(*tokenClaims)
	if claims == nil {
		return nil, errors.New("invalid claims")
	}

	userID, err := kernel.NewID(claims.UserID)
	if err != nil {
		return nil, err
	}
	role, err := kernel.ParseRole(claims.Role)
	if err != nil {
		return nil, err
	}

	var epicerieID *kernel.ID
	if claims.EpicerieID != nil {
		id, idErr := kernel.NewID(*claims.EpicerieID)
		if idErr != nil {
			return nil, idErr
		}
		epicerieID = &id
	}

	return &Principal{UserID: userID, Role: role, EpicerieID: epicerieID}, nil
}

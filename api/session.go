package api

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/golang-jwt/jwt/v5"
)

const (
	adminSessionCookieKey = "ADMIN_SESSION"
	adminSecurityScheme   = "AdminSession"
	adminSessionTTL       = 12 * time.Hour
	adminSessionIssuer    = "asace-registration"
	adminSessionSubject   = "admin"
)

func (a *API) checkAdminPassword(password string) bool {
	// An unset password must never match an empty submission.
	if a.admin.Password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(a.admin.Password)) == 1
}

func (a *API) issueAdminSession(now time.Time) (string, time.Time, error) {
	expires := now.Add(adminSessionTTL)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    adminSessionIssuer,
		Subject:   adminSessionSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	})

	signed, err := token.SignedString(a.admin.SessionKey)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

func (a *API) validateAdminSession(token string) error {
	_, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return a.admin.SessionKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(adminSessionIssuer),
		jwt.WithSubject(adminSessionSubject),
		jwt.WithExpirationRequired(),
	)
	return err
}

// authenticate backs the AdminSession security scheme during request validation.
func (a *API) authenticate(ctx context.Context, input *openapi3filter.AuthenticationInput) error {
	if input.SecuritySchemeName != adminSecurityScheme {
		return fmt.Errorf("unknown security scheme %q", input.SecuritySchemeName)
	}

	cookie, err := input.RequestValidationInput.Request.Cookie(adminSessionCookieKey)
	if err != nil {
		return fmt.Errorf("missing admin session: %w", err)
	}

	err = a.validateAdminSession(cookie.Value)
	if err != nil {
		getLoggerFromCtx(ctx).Warn("Rejected admin session", "error", err)
		return fmt.Errorf("invalid admin session: %w", err)
	}

	return nil
}

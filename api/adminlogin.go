package api

import (
	"context"
	"net/http"
	"time"
)

func (a *API) PostAdminLogin(ctx context.Context, request PostAdminLoginRequestObject) (PostAdminLoginResponseObject, error) {
	logger := getLoggerFromCtx(ctx)

	if request.Body == nil {
		return PostAdminLogin400JSONResponse{BadRequestJSONResponse{
			Error:   true,
			Code:    ErrorCodeEmptyBody,
			Message: "Must specify a body",
		}}, nil
	}

	if !a.checkAdminPassword(request.Body.Password) {
		logger.Warn("Failed admin login")

		return PostAdminLogin401JSONResponse{UnauthorizedJSONResponse{
			Error:   true,
			Code:    ErrorCodeAuthError,
			Message: "Invalid password",
		}}, nil
	}

	token, expires, err := a.issueAdminSession(time.Now())
	if err != nil {
		logger.Error("Failed to sign admin session", "error", err)

		return PostAdminLogin500JSONResponse{InternalErrorJSONResponse{
			Error:   true,
			Code:    ErrorCodeInternalError,
			Message: "Failed to log in",
		}}, nil
	}

	logger.Info("successful admin login")

	cookie := &http.Cookie{
		Name:     adminSessionCookieKey,
		Value:    token,
		Expires:  expires,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.env == PROD,
		SameSite: http.SameSiteLaxMode,
	}
	if a.env == PROD {
		// The admin page is served from a different site than the API.
		cookie.SameSite = http.SameSiteNoneMode
	}

	return PostAdminLogin200JSONResponse{
		Body: Success{Success: true},
		Headers: PostAdminLogin200ResponseHeaders{
			SetCookie: cookie.String(),
		},
	}, nil
}

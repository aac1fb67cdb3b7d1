package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/google/uuid"
	middleware "github.com/oapi-codegen/nethttp-middleware"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const requestIdHeader = "X-Request-Id"

// Payment proofs arrive as multipart file parts with their own content type.
var proofContentTypes = []string{
	"image/png",
	"image/jpeg",
	"image/webp",
	"image/heic",
	"application/pdf",
	"application/octet-stream",
}

func init() {
	for _, ct := range proofContentTypes {
		openapi3filter.RegisterBodyDecoder(ct, openapi3filter.FileBodyDecoder)
	}
}

type middlewareFunc func(next http.Handler) http.Handler

func useMiddlewares(r *http.ServeMux, middlewares ...middlewareFunc) http.Handler {
	var s http.Handler
	s = r

	for _, mw := range middlewares {
		s = mw(s)
	}

	return s
}

func tracingMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "registration-api")
	}
}

func (a *API) requestContextMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestId := uuid.New()

			ctx := ctxWithRequestId(r.Context(), requestId)
			ctx = ctxWithLogger(ctx, a.logger.With(slog.String("request-id", requestId.String())))

			w.Header().Set(requestIdHeader, requestId.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *API) loggingMiddleware() middlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			loggingRW := newLoggingResponseWriter(w)

			// process the request
			next.ServeHTTP(loggingRW, r)

			attrs := []any{
				slog.String("latency", formatDuration(time.Since(start))),
				slog.Int64("request-content-length", r.ContentLength),
				slog.Int("resp-body-size", loggingRW.responseSize),
				slog.String("host", r.Host),
				slog.String("method", r.Method),
				slog.Int("status-code", loggingRW.statusCode),
				slog.String("path", r.URL.Path),
			}
			if requestId, ok := getRequestIdFromCtx(r.Context()); ok {
				attrs = append(attrs, slog.String("request-id", requestId.String()))
			}

			a.logger.InfoContext(r.Context(), "Access log", attrs...)
		})
	}
}

func (a *API) openapiValidateMiddleware(swagger *openapi3.T) middlewareFunc {
	return middleware.OapiRequestValidatorWithOptions(swagger, &middleware.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: a.authenticate,
		},
		ErrorHandlerWithOpts: func(ctx context.Context, err error, w http.ResponseWriter, r *http.Request, opts middleware.ErrorHandlerOpts) {
			code := ErrorCodeInternalError
			switch opts.StatusCode {
			case http.StatusBadRequest, http.StatusNotFound, http.StatusMethodNotAllowed:
				code = ErrorCodeInputValidationError
			case http.StatusUnauthorized, http.StatusForbidden:
				code = ErrorCodeAuthError
			}

			if code == ErrorCodeAuthError {
				getLoggerFromCtx(r.Context()).Warn("Unauthenticated request", "path", r.URL.Path, "error", err)
			}

			a.writeError(w, opts.StatusCode, Error{
				Error:   true,
				Code:    code,
				Message: err.Error(),
			})
		},
	})
}

func (a *API) corsMiddleware() middlewareFunc {
	var serverCors *cors.Cors

	switch a.env {
	case LOCAL:
		// The dev frontend runs on its own port and still needs the session cookie.
		serverCors = cors.New(cors.Options{
			AllowOriginFunc:  func(origin string) bool { return true },
			AllowedMethods:   []string{http.MethodGet, http.MethodPost},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
		})
	case PROD:
		serverCors = cors.New(cors.Options{
			AllowedOrigins:   a.allowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost},
			AllowedHeaders:   []string{"Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		})
	}

	return serverCors.Handler
}

func (a *API) requestErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	getLoggerFromCtx(r.Context()).Warn("Failed to decode request", "error", err)

	a.writeError(w, http.StatusBadRequest, Error{
		Error:   true,
		Code:    ErrorCodeInvalidBody,
		Message: err.Error(),
	})
}

func (a *API) responseErrorHandler(w http.ResponseWriter, r *http.Request, err error) {
	getLoggerFromCtx(r.Context()).Error("Failed to write response", "error", err)

	a.writeError(w, http.StatusInternalServerError, Error{
		Error:   true,
		Code:    ErrorCodeInternalError,
		Message: "Internal error",
	})
}

func (a *API) writeError(w http.ResponseWriter, statusCode int, e Error) {
	jsonBody, err := json.Marshal(&e)
	if err != nil {
		a.logger.Error("failed to marshal error resp", "error", err)
		jsonBody = []byte(`{"error": true, "message": "request failed", "code": "InternalError"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(jsonBody)
}

// formatDuration formats a duration to one decimal point.
func formatDuration(d time.Duration) string {
	div := time.Duration(10)
	switch {
	case d > time.Second:
		d = d.Round(time.Second / div)
	case d > time.Millisecond:
		d = d.Round(time.Millisecond / div)
	case d > time.Microsecond:
		d = d.Round(time.Microsecond / div)
	case d > time.Nanosecond:
		d = d.Round(time.Nanosecond / div)
	}
	return d.String()
}

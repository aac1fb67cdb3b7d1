//go:generate go tool oapi-codegen --config openapi-codegen-config.yaml ../spec/api.yaml
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/asace-youth/event-registration/events"
	"github.com/asace-youth/event-registration/registration"
	"github.com/getkin/kin-openapi/openapi3"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

// Signed proof links handed to admins stay valid this long.
const proofURLTTL = 7 * 24 * time.Hour

type DB interface {
	registration.Repository
}

// AdminAuth is the single shared admin secret and the key session cookies are
// signed with.
type AdminAuth struct {
	Password   string
	SessionKey []byte
}

type API struct {
	db             DB
	proofs         registration.ProofStore
	tickets        registration.TicketGenerator
	notifier       registration.Notifier
	event          events.Event
	admin          AdminAuth
	logger         *slog.Logger
	env            Environment
	allowedOrigins []string
}

var _ StrictServerInterface = (*API)(nil)

func NewAPI(
	db DB,
	proofs registration.ProofStore,
	tickets registration.TicketGenerator,
	notifier registration.Notifier,
	event events.Event,
	admin AdminAuth,
	logger *slog.Logger,
	env Environment,
	allowedOrigins []string,
) *API {
	return &API{
		db:             db,
		proofs:         proofs,
		tickets:        tickets,
		notifier:       notifier,
		event:          event,
		admin:          admin,
		logger:         logger,
		env:            env,
		allowedOrigins: allowedOrigins,
	}
}

// Handler routes every operation in the OpenAPI document through the
// middleware stack. Middlewares listed first run closest to the handlers.
func (a *API) Handler(swagger *openapi3.T) http.Handler {
	strictHandler := NewStrictHandlerWithOptions(a, []StrictMiddlewareFunc{}, StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  a.requestErrorHandler,
		ResponseErrorHandlerFunc: a.responseErrorHandler,
	})

	r := http.NewServeMux()
	HandlerFromMux(strictHandler, r)

	return useMiddlewares(r,
		a.openapiValidateMiddleware(swagger),
		a.corsMiddleware(),
		a.loggingMiddleware(),
		a.requestContextMiddleware(),
		tracingMiddleware(),
	)
}

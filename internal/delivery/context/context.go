// Package context carries request-scoped values from the HTTP layer into the use cases.
package context

import (
	"context"
	"log/slog"

	"servicedesk/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is the HTTP header name for request ID.
const HeaderXRequestID = "X-Request-Id"

type scopeKey struct{}

// scope is everything a request carries once it has entered the service.
type scope struct {
	requestID string
	logger    *slog.Logger
	actor     entity.Actor
}

func scopeFrom(ctx context.Context) *scope {
	s, _ := ctx.Value(scopeKey{}).(*scope)

	return s
}

// WithRequest returns ctx carrying requestID and a logger tagged with it.
func WithRequest(ctx context.Context, requestID string, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, scopeKey{}, &scope{
		requestID: requestID,
		logger:    logger.With(slog.String("request_id", requestID)),
	})
}

// BindRequest opens the request scope on c.
func BindRequest(c echo.Context, requestID string, logger *slog.Logger) {
	req := c.Request()
	c.SetRequest(req.WithContext(WithRequest(req.Context(), requestID, logger)))
}

// GetRequestID returns the request ID of c, or "" before the scope is opened.
func GetRequestID(c echo.Context) string {
	return GetRequestIDFromContext(c.Request().Context())
}

func GetRequestIDFromContext(ctx context.Context) string {
	if s := scopeFrom(ctx); s != nil {
		return s.requestID
	}

	return ""
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s := scopeFrom(ctx); s != nil && s.logger != nil {
		return s.logger
	}

	return fallback
}

// SetActor records the authenticated actor on c. Log lines written after
// this point carry the actor's id and role.
func SetActor(c echo.Context, actor entity.Actor) {
	req := c.Request()
	ctx := req.Context()

	next := &scope{}
	if s := scopeFrom(ctx); s != nil {
		*next = *s
	}
	next.actor = actor
	if next.logger != nil {
		next.logger = next.logger.With(
			slog.String("actor_id", actor.ID().String()),
			slog.String("actor_role", actor.Role().String()),
		)
	}

	c.SetRequest(req.WithContext(context.WithValue(ctx, scopeKey{}, next)))
}

// GetActor returns the authenticated actor of c.
func GetActor(c echo.Context) (entity.Actor, bool) {
	return ActorFromContext(c.Request().Context())
}

// ActorFromContext returns the actor authenticated for the request, if any.
func ActorFromContext(ctx context.Context) (entity.Actor, bool) {
	s := scopeFrom(ctx)
	if s == nil || !s.actor.IsValid() {
		return entity.Actor{}, false
	}

	return s.actor, true
}

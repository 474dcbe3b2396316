// Package skill dispatches voice platform request envelopes across an
// ordered rule table of intent handlers and renders spoken responses.
package skill

import (
	"context"
	"log/slog"

	"github.com/morrisrob/mke-flavors/internal/alexa"
	"github.com/morrisrob/mke-flavors/internal/metrics"
	"github.com/morrisrob/mke-flavors/internal/models"
)

// Handler is one (predicate, action) dispatch rule. Rules are evaluated in
// registration order and the first whose CanHandle returns true wins, so a
// catch-all rule registered last picks up everything unmatched.
type Handler interface {
	CanHandle(env *alexa.RequestEnvelope) bool
	Handle(ctx context.Context, env *alexa.RequestEnvelope) (alexa.ResponseEnvelope, error)
}

// ErrorHandler is a second-chance rule for errors a Handler escalates
// instead of suppressing. The address-service authorization failure is the
// one error that travels this path.
type ErrorHandler interface {
	CanHandle(env *alexa.RequestEnvelope, err error) bool
	Handle(ctx context.Context, env *alexa.RequestEnvelope, err error) alexa.ResponseEnvelope
}

// Directory supplies the flavor listing for exact-name lookups.
type Directory interface {
	FetchAll(ctx context.Context) ([]models.Location, error)
}

// AddressService fetches the caller's address from the platform.
type AddressService interface {
	FullAddress(ctx context.Context, apiEndpoint, deviceID, consentToken string) (*models.DeviceAddress, error)
}

// ProximityResolver ranks locations by distance from a caller address.
type ProximityResolver interface {
	Nearest(ctx context.Context, addr models.DeviceAddress, n int) ([]models.RankedLocation, error)
}

// Skill routes request envelopes to handlers and maps escalated errors
// through the second-chance dispatcher.
type Skill struct {
	log           *slog.Logger
	handlers      []Handler
	errorHandlers []ErrorHandler
	metrics       *metrics.Metrics
}

// New assembles the standard rule table: launch, the two flavor intents, the
// built-in session intents, and the always-matching fallback, plus the
// address-service error handler.
func New(
	log *slog.Logger,
	directory Directory,
	addresses AddressService,
	resolver ProximityResolver,
	appMetrics *metrics.Metrics,
) *Skill {
	return &Skill{
		log: log,
		handlers: []Handler{
			&LaunchHandler{},
			&FlavorsHandler{log: log, directory: directory},
			&ClosestLocationsHandler{log: log, addresses: addresses, resolver: resolver},
			&SessionEndedHandler{log: log},
			&CancelHandler{},
			&HelpHandler{},
			&StopHandler{},
			&UnhandledHandler{},
		},
		errorHandlers: []ErrorHandler{
			&AddressErrorHandler{log: log},
		},
		metrics: appMetrics,
	}
}

// Dispatch routes one envelope through the rule table. Errors escalated by a
// handler get a second dispatch across the error handlers; anything still
// unclaimed degrades to the generic error response with a reprompt.
func (s *Skill) Dispatch(ctx context.Context, env *alexa.RequestEnvelope) alexa.ResponseEnvelope {
	label := s.requestLabel(env)

	for _, handler := range s.handlers {
		if !handler.CanHandle(env) {
			continue
		}

		resp, err := handler.Handle(ctx, env)
		if err == nil {
			s.metrics.IntentsHandled.WithLabelValues(label, "success").Inc()
			return resp
		}

		s.log.WarnContext(ctx, "Handler escalated an error", "request", label, "error", err)
		s.metrics.IntentsHandled.WithLabelValues(label, "error").Inc()

		for _, errorHandler := range s.errorHandlers {
			if errorHandler.CanHandle(env, err) {
				return errorHandler.Handle(ctx, env, err)
			}
		}

		s.log.ErrorContext(ctx, "No error handler claimed the escalated error", "error", err)
		return alexa.NewResponse().Speak(msgError).Reprompt(msgError).Build()
	}

	// Unreachable as long as the catch-all rule stays registered last.
	s.metrics.IntentsHandled.WithLabelValues(label, "unmatched").Inc()
	return alexa.NewResponse().Speak(msgUnhandled).Reprompt(msgUnhandled).Build()
}

// requestLabel names the request for logs and metrics: the intent name when
// present, the raw request type otherwise.
func (s *Skill) requestLabel(env *alexa.RequestEnvelope) string {
	if name := env.IntentName(); name != "" {
		return name
	}

	return env.Request.Type
}

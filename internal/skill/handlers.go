package skill

import (
	"context"
	"errors"
	"log/slog"

	"github.com/morrisrob/mke-flavors/internal/alexa"
	"github.com/morrisrob/mke-flavors/internal/geocoding"
	"github.com/morrisrob/mke-flavors/internal/speech"
)

// topLocations is how many ranked locations the nearest-locations answer reads out.
const topLocations = 5

// locationSlot is the slot carrying the spoken location name.
const locationSlot = "Location"

// LaunchHandler greets the caller when the skill is opened without an intent.
type LaunchHandler struct{}

func (h *LaunchHandler) CanHandle(env *alexa.RequestEnvelope) bool {
	return env.Request.Type == alexa.RequestTypeLaunch
}

func (h *LaunchHandler) Handle(_ context.Context, _ *alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
	return alexa.NewResponse().
		Speak(msgWelcome).
		Reprompt(msgWhatDoYouWant).
		Build(), nil
}

// FlavorsHandler answers the flavor-of-the-day question for one location
// named in the request.
type FlavorsHandler struct {
	log       *slog.Logger
	directory Directory
}

func (h *FlavorsHandler) CanHandle(env *alexa.RequestEnvelope) bool {
	return env.Request.Type == alexa.RequestTypeIntent && env.IntentName() == alexa.IntentFlavors
}

// Handle looks the resolved location name up in a freshly fetched directory
// listing. An unresolved slot asks the user to retry; a directory failure
// degrades to the generic error message.
func (h *FlavorsHandler) Handle(ctx context.Context, env *alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
	slot, ok := env.Slot(locationSlot)
	if !ok || slot.ResolutionCode() == alexa.ResolutionNoMatch {
		return alexa.NewResponse().
			Speak(msgRetryLocation).
			SimpleCard(cardTitle, msgRetryLocation).
			KeepSession().
			Build(), nil
	}

	resolvedName := slot.ResolvedName()

	listing, err := h.directory.FetchAll(ctx)
	if err != nil {
		h.log.ErrorContext(ctx, "Failed to fetch directory for flavor lookup", "error", err)
		return alexa.NewResponse().Speak(msgError).Reprompt(msgError).Build(), nil
	}

	var flavors []string
	found := false
	for _, loc := range listing {
		if loc.Name == resolvedName {
			flavors = loc.Flavors
			found = true
			break
		}
	}
	if !found {
		h.log.WarnContext(ctx, "Resolved location not present in directory", "location", resolvedName)
		return alexa.NewResponse().
			Speak(msgRetryLocation).
			SimpleCard(cardTitle, msgRetryLocation).
			KeepSession().
			Build(), nil
	}

	speechText := speech.FlavorPhrase(speech.SpeakableName(resolvedName), flavors) + msgAnythingElse

	return alexa.NewResponse().
		Speak(speechText).
		SimpleCard(cardTitle, speechText).
		KeepSession().
		Build(), nil
}

// ClosestLocationsHandler answers the "flavors near me" question. It gates on
// the device-address consent token, retrieves the caller's address from the
// platform, and narrates the five closest locations.
type ClosestLocationsHandler struct {
	log       *slog.Logger
	addresses AddressService
	resolver  ProximityResolver
}

func (h *ClosestLocationsHandler) CanHandle(env *alexa.RequestEnvelope) bool {
	return env.Request.Type == alexa.RequestTypeIntent && env.IntentName() == alexa.IntentClosestLocations
}

// Handle degrades across the chain of fallible calls in order: missing
// consent, missing address, unsupported area, upstream failure. Only
// address-service errors escalate to the second-chance dispatcher; everything
// else is mapped to a spoken message right here.
func (h *ClosestLocationsHandler) Handle(ctx context.Context, env *alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
	consentToken := env.ConsentToken()
	if consentToken == "" {
		return alexa.NewResponse().
			Speak(msgNotifyMissingPermissions).
			PermissionsCard(alexa.DeviceAddressScope).
			Reprompt(msgNotifyMissingPermissions).
			Build(), nil
	}

	system := env.Context.System
	address, err := h.addresses.FullAddress(ctx, system.APIEndpoint, system.Device.DeviceID, consentToken)
	if err != nil {
		// Escalate so the address error handler can render the permissions
		// card on a revoked token.
		return alexa.ResponseEnvelope{}, err
	}

	h.log.DebugContext(ctx, "Address successfully retrieved, now responding to user")

	if address.IsEmpty() {
		return alexa.NewResponse().Speak(msgNoAddress).Reprompt(msgNoAddress).Build(), nil
	}

	ranked, err := h.resolver.Nearest(ctx, *address, topLocations)
	switch {
	case errors.Is(err, geocoding.ErrNoMatch):
		// The service genuinely does not cover the caller's area; no retry
		// will help, so the session ends.
		return alexa.NewResponse().Speak(msgInvalidLocation).Build(), nil
	case err != nil:
		h.log.ErrorContext(ctx, "Failed to resolve nearest locations", "error", err)
		return alexa.NewResponse().Speak(msgError).Reprompt(msgError).Build(), nil
	}

	speechText := msgClosestIntro
	for _, loc := range ranked {
		speechText += speech.FlavorPhrase(speech.SpeakableName(loc.Name), loc.Flavors)
	}
	speechText += msgAnythingElse

	return alexa.NewResponse().
		Speak(speechText).
		KeepSession().
		Build(), nil
}

// HelpHandler lists what the skill can do and keeps the session open.
type HelpHandler struct{}

func (h *HelpHandler) CanHandle(env *alexa.RequestEnvelope) bool {
	return env.Request.Type == alexa.RequestTypeIntent && env.IntentName() == alexa.IntentHelp
}

func (h *HelpHandler) Handle(_ context.Context, _ *alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
	return alexa.NewResponse().Speak(msgHelp).KeepSession().Build(), nil
}

// StopHandler says goodbye and ends the session.
type StopHandler struct{}

func (h *StopHandler) CanHandle(env *alexa.RequestEnvelope) bool {
	return env.Request.Type == alexa.RequestTypeIntent && env.IntentName() == alexa.IntentStop
}

func (h *StopHandler) Handle(_ context.Context, _ *alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
	return alexa.NewResponse().Speak(msgStop).Build(), nil
}

// CancelHandler says goodbye and ends the session.
type CancelHandler struct{}

func (h *CancelHandler) CanHandle(env *alexa.RequestEnvelope) bool {
	return env.Request.Type == alexa.RequestTypeIntent && env.IntentName() == alexa.IntentCancel
}

func (h *CancelHandler) Handle(_ context.Context, _ *alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
	return alexa.NewResponse().Speak(msgGoodbye).Build(), nil
}

// SessionEndedHandler acknowledges the platform closing the session.
type SessionEndedHandler struct {
	log *slog.Logger
}

func (h *SessionEndedHandler) CanHandle(env *alexa.RequestEnvelope) bool {
	return env.Request.Type == alexa.RequestTypeSessionEnded
}

func (h *SessionEndedHandler) Handle(ctx context.Context, env *alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
	h.log.InfoContext(ctx, "Session ended", "reason", env.Request.Reason)

	return alexa.NewResponse().Build(), nil
}

// UnhandledHandler is the always-matching fallback for request types and
// intents the skill does not support.
type UnhandledHandler struct{}

func (h *UnhandledHandler) CanHandle(_ *alexa.RequestEnvelope) bool {
	return true
}

func (h *UnhandledHandler) Handle(_ context.Context, _ *alexa.RequestEnvelope) (alexa.ResponseEnvelope, error) {
	return alexa.NewResponse().Speak(msgUnhandled).Reprompt(msgUnhandled).Build(), nil
}

// AddressErrorHandler is the second-chance rule for device address service
// failures: a revoked consent token (403) gets the permissions-request
// response, any other service failure gets the location-failure message with
// a reprompt.
type AddressErrorHandler struct {
	log *slog.Logger
}

func (h *AddressErrorHandler) CanHandle(_ *alexa.RequestEnvelope, err error) bool {
	return errors.Is(err, alexa.ErrServiceError)
}

func (h *AddressErrorHandler) Handle(
	ctx context.Context,
	_ *alexa.RequestEnvelope,
	err error,
) alexa.ResponseEnvelope {
	if errors.Is(err, alexa.ErrForbidden) {
		h.log.InfoContext(ctx, "Consent token rejected, requesting permissions again")
		return alexa.NewResponse().
			Speak(msgNotifyMissingPermissions).
			PermissionsCard(alexa.DeviceAddressScope).
			Reprompt(msgNotifyMissingPermissions).
			Build()
	}

	h.log.ErrorContext(ctx, "Device address service failure", "error", err)

	return alexa.NewResponse().Speak(msgLocationFailure).Reprompt(msgLocationFailure).Build()
}

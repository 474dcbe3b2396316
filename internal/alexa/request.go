// Package alexa holds the wire types and platform clients for the Alexa
// custom-skill interface: the request envelope the platform POSTs to the
// skill, the response envelope the skill answers with, and the device
// address service client.
package alexa

// Request types delivered in the envelope.
const (
	RequestTypeLaunch       = "LaunchRequest"
	RequestTypeIntent       = "IntentRequest"
	RequestTypeSessionEnded = "SessionEndedRequest"
)

// Built-in intent names.
const (
	IntentHelp   = "AMAZON.HelpIntent"
	IntentStop   = "AMAZON.StopIntent"
	IntentCancel = "AMAZON.CancelIntent"
)

// Skill intent names.
const (
	IntentFlavors          = "FlavorsIntent"
	IntentClosestLocations = "GetClosestLocationsIntent"
)

// ResolutionNoMatch is the entity-resolution status code for a slot value the
// platform could not match against the location catalog.
const ResolutionNoMatch = "ER_SUCCESS_NO_MATCH"

// DeviceAddressScope is the consent scope the skill requests to read the
// caller's device address.
const DeviceAddressScope = "read::alexa:device:all:address"

// RequestEnvelope is the platform request as delivered to the skill endpoint.
type RequestEnvelope struct {
	Version string   `json:"version"`
	Session *Session `json:"session,omitempty"`
	Context Context  `json:"context"`
	Request Request  `json:"request"`
}

// Session identifies the voice session this request belongs to. The skill
// keeps no state in it; every request is handled independently.
type Session struct {
	SessionID string `json:"sessionId"`
	New       bool   `json:"new"`
}

// Context carries the platform system block.
type Context struct {
	System System `json:"System"`
}

// System carries the per-request platform metadata: the API endpoint and
// access token for platform service calls, the user's granted permissions,
// and the originating device.
type System struct {
	APIEndpoint    string `json:"apiEndpoint"`
	APIAccessToken string `json:"apiAccessToken"`
	User           User   `json:"user"`
	Device         Device `json:"device"`
}

// User is the platform account behind the request.
type User struct {
	UserID      string       `json:"userId"`
	Permissions *Permissions `json:"permissions,omitempty"`
}

// Permissions holds the consent token present only when the user has granted
// the skill's requested data-access permissions.
type Permissions struct {
	ConsentToken string `json:"consentToken"`
}

// Device identifies the device the request came from.
type Device struct {
	DeviceID string `json:"deviceId"`
}

// Request is the typed payload inside the envelope.
type Request struct {
	Type      string  `json:"type"`
	RequestID string  `json:"requestId"`
	Intent    *Intent `json:"intent,omitempty"`
	Reason    string  `json:"reason,omitempty"` // SessionEndedRequest only
}

// Intent is a recognized spoken goal with its extracted slots.
type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

// Slot is a named parameter extracted from speech, with the platform's
// entity-resolution outcome attached.
type Slot struct {
	Name        string       `json:"name"`
	Value       string       `json:"value"`
	Resolutions *Resolutions `json:"resolutions,omitempty"`
}

// Resolutions wraps the per-authority entity-resolution results.
type Resolutions struct {
	ResolutionsPerAuthority []Resolution `json:"resolutionsPerAuthority"`
}

// Resolution is one authority's match attempt for a slot value.
type Resolution struct {
	Status ResolutionStatus  `json:"status"`
	Values []ResolutionValue `json:"values,omitempty"`
}

// ResolutionStatus carries the match status code.
type ResolutionStatus struct {
	Code string `json:"code"`
}

// ResolutionValue is one canonical value matched by an authority.
type ResolutionValue struct {
	Value struct {
		Name string `json:"name"`
		ID   string `json:"id"`
	} `json:"value"`
}

// ConsentToken returns the consent token granted by the user, or an empty
// string when the permission was never granted.
func (e *RequestEnvelope) ConsentToken() string {
	if e.Context.System.User.Permissions == nil {
		return ""
	}

	return e.Context.System.User.Permissions.ConsentToken
}

// IntentName returns the intent name, or an empty string for non-intent requests.
func (e *RequestEnvelope) IntentName() string {
	if e.Request.Intent == nil {
		return ""
	}

	return e.Request.Intent.Name
}

// Slot returns the named slot of an intent request.
func (e *RequestEnvelope) Slot(name string) (Slot, bool) {
	if e.Request.Intent == nil {
		return Slot{}, false
	}
	slot, ok := e.Request.Intent.Slots[name]

	return slot, ok
}

// ResolutionCode returns the first authority's resolution status code, or an
// empty string when the slot carries no resolutions.
func (s Slot) ResolutionCode() string {
	if s.Resolutions == nil || len(s.Resolutions.ResolutionsPerAuthority) == 0 {
		return ""
	}

	return s.Resolutions.ResolutionsPerAuthority[0].Status.Code
}

// ResolvedName returns the first authority's canonical value name, falling
// back to the raw spoken value when no resolution is present.
func (s Slot) ResolvedName() string {
	if s.Resolutions != nil && len(s.Resolutions.ResolutionsPerAuthority) > 0 {
		values := s.Resolutions.ResolutionsPerAuthority[0].Values
		if len(values) > 0 {
			return values[0].Value.Name
		}
	}

	return s.Value
}

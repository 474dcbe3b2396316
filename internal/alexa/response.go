package alexa

// Card types understood by the platform.
const (
	cardTypeSimple      = "Simple"
	cardTypePermissions = "AskForPermissionsConsent"
)

// ResponseEnvelope is the skill's answer to one request envelope.
type ResponseEnvelope struct {
	Version  string   `json:"version"`
	Response Response `json:"response"`
}

// Response carries the synthesized speech, optional reprompt and card, and
// whether the voice session stays open.
type Response struct {
	OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
	Card             *Card         `json:"card,omitempty"`
	Reprompt         *Reprompt     `json:"reprompt,omitempty"`
	ShouldEndSession bool          `json:"shouldEndSession"`
}

// OutputSpeech is plain text handed to the speech renderer.
type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Card is the companion-app card attached to a response: either a simple
// text card or a permissions-consent request naming the scopes the skill needs.
type Card struct {
	Type        string   `json:"type"`
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
}

// Reprompt is spoken when the user stays silent after the main speech.
type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}

// ResponseBuilder assembles a response envelope in the fluent style of the
// platform SDKs. A fresh builder ends the session; adding a reprompt keeps
// it open, matching platform behavior.
type ResponseBuilder struct {
	resp Response
}

// NewResponse returns a builder for an empty, session-ending response.
func NewResponse() *ResponseBuilder {
	return &ResponseBuilder{resp: Response{ShouldEndSession: true}}
}

// Speak sets the plain-text output speech.
func (b *ResponseBuilder) Speak(text string) *ResponseBuilder {
	b.resp.OutputSpeech = &OutputSpeech{Type: "PlainText", Text: text}
	return b
}

// Reprompt sets the reprompt speech and keeps the session open.
func (b *ResponseBuilder) Reprompt(text string) *ResponseBuilder {
	b.resp.Reprompt = &Reprompt{OutputSpeech: OutputSpeech{Type: "PlainText", Text: text}}
	b.resp.ShouldEndSession = false
	return b
}

// SimpleCard attaches a plain text card.
func (b *ResponseBuilder) SimpleCard(title, content string) *ResponseBuilder {
	b.resp.Card = &Card{Type: cardTypeSimple, Title: title, Content: content}
	return b
}

// PermissionsCard attaches a consent-request card naming the permission
// scopes the skill needs granted.
func (b *ResponseBuilder) PermissionsCard(scopes ...string) *ResponseBuilder {
	b.resp.Card = &Card{Type: cardTypePermissions, Permissions: scopes}
	return b
}

// KeepSession leaves the session open without a reprompt.
func (b *ResponseBuilder) KeepSession() *ResponseBuilder {
	b.resp.ShouldEndSession = false
	return b
}

// Build returns the finished envelope.
func (b *ResponseBuilder) Build() ResponseEnvelope {
	return ResponseEnvelope{Version: "1.0", Response: b.resp}
}

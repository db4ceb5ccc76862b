package alexaskill

// Request/response envelope bindings for the Alexa custom-skill JSON interface.
// Only the fields this skill reads are modeled.

const (
	requestTypeLaunch       = "LaunchRequest"
	requestTypeIntent       = "IntentRequest"
	requestTypeSessionEnded = "SessionEndedRequest"

	intentDaily  = "DailyIntent"
	intentHelp   = "AMAZON.HelpIntent"
	intentCancel = "AMAZON.CancelIntent"
	intentStop   = "AMAZON.StopIntent"

	speechTypeSSML             = "SSML"
	cardTypeSimple             = "Simple"
	cardTypePermissionsConsent = "AskForPermissionsConsent"
	givenNameReadPermission    = "alexa::profile:given_name:read"
	envelopeVersion            = "1.0"
)

type (
	RequestEnvelope struct {
		Version string   `json:"version" validate:"required"`
		Session *Session `json:"session,omitempty"`
		Context Context  `json:"context"`
		Request Request  `json:"request"`
	}

	Session struct {
		New       bool   `json:"new"`
		SessionID string `json:"sessionId"`
		User      User   `json:"user"`
	}

	Context struct {
		System System `json:"System"`
	}

	System struct {
		User           User   `json:"user"`
		APIEndpoint    string `json:"apiEndpoint"`
		APIAccessToken string `json:"apiAccessToken"`
	}

	User struct {
		UserID      string       `json:"userId"`
		Permissions *Permissions `json:"permissions,omitempty"`
	}

	Permissions struct {
		ConsentToken string `json:"consentToken"`
	}

	Request struct {
		Type      string  `json:"type" validate:"required"`
		RequestID string  `json:"requestId"`
		Timestamp string  `json:"timestamp"`
		Locale    string  `json:"locale"`
		Intent    *Intent `json:"intent,omitempty"`
	}

	Intent struct {
		Name string `json:"name"`
	}
)

// routeKey is what the dispatch table is keyed on: the request type, or the
// intent name for intent requests.
func (env RequestEnvelope) routeKey() string {
	if env.Request.Type == requestTypeIntent && env.Request.Intent != nil {
		return env.Request.Intent.Name
	}
	return env.Request.Type
}

// hasConsent reports whether the user granted the profile read permission.
func (env RequestEnvelope) hasConsent() bool {
	perms := env.Context.System.User.Permissions
	return perms != nil && perms.ConsentToken != ""
}

type (
	ResponseEnvelope struct {
		Version  string   `json:"version"`
		Response Response `json:"response"`
	}

	Response struct {
		OutputSpeech     *OutputSpeech `json:"outputSpeech,omitempty"`
		Card             *Card         `json:"card,omitempty"`
		Reprompt         *Reprompt     `json:"reprompt,omitempty"`
		ShouldEndSession bool          `json:"shouldEndSession"`
	}

	OutputSpeech struct {
		Type string `json:"type"`
		SSML string `json:"ssml,omitempty"`
	}

	Card struct {
		Type        string   `json:"type"`
		Title       string   `json:"title,omitempty"`
		Content     string   `json:"content,omitempty"`
		Permissions []string `json:"permissions,omitempty"`
	}

	Reprompt struct {
		OutputSpeech *OutputSpeech `json:"outputSpeech,omitempty"`
	}
)

func newSSMLSpeech(text string) *OutputSpeech {
	return &OutputSpeech{Type: speechTypeSSML, SSML: "<speak>" + text + "</speak>"}
}

func newSpeechResponse(text string, endSession bool) ResponseEnvelope {
	return ResponseEnvelope{
		Version: envelopeVersion,
		Response: Response{
			OutputSpeech:     newSSMLSpeech(text),
			ShouldEndSession: endSession,
		},
	}
}

func newCardResponse(text, cardTitle string, endSession bool) ResponseEnvelope {
	env := newSpeechResponse(text, endSession)
	env.Response.Card = &Card{Type: cardTypeSimple, Title: cardTitle, Content: text}
	return env
}

func newConsentResponse(text string, permissions ...string) ResponseEnvelope {
	env := newSpeechResponse(text, true)
	env.Response.Card = &Card{Type: cardTypePermissionsConsent, Permissions: permissions}
	return env
}

func newRepromptResponse(text string) ResponseEnvelope {
	env := newSpeechResponse(text, false)
	env.Response.Reprompt = &Reprompt{OutputSpeech: newSSMLSpeech(text)}
	return env
}

func newEmptyResponse() ResponseEnvelope {
	return ResponseEnvelope{Version: envelopeVersion}
}

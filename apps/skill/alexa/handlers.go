package alexaskill

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/kesho/core"
	"github.com/trezcool/kesho/core/assignment"
)

const (
	defaultGivenName = "human"
	cardTitle        = "Assignments"
	greetingFmt      = "Hello %s! Here's your due assignments: %s"
	consentSpeech    = "Please give permissions to speak your given name using the alexa app."
	helpSpeech       = "You can ask me what you have due today and tomorrow."
	goodbyeSpeech    = "Goodbye!"
)

// nowFunc facilitates testing
var nowFunc = time.Now

type (
	skillHandler func(ctx echo.Context, env RequestEnvelope) error

	skillAPI struct {
		logger     core.Logger
		assignSvc  *assignment.Service
		profileSvc core.ProfileService
		validate   *validator.Validate
		routes     map[string]skillHandler
	}
)

func registerSkillAPI(
	e *echo.Echo,
	logger core.Logger,
	assignSvc *assignment.Service,
	profileSvc core.ProfileService,
	validate *validator.Validate,
) {
	api := &skillAPI{
		logger:     logger,
		assignSvc:  assignSvc,
		profileSvc: profileSvc,
		validate:   validate,
	}

	// static dispatch table, built once
	api.routes = map[string]skillHandler{
		requestTypeLaunch:       api.dueAssignments,
		intentDaily:             api.dueAssignments,
		intentHelp:              api.help,
		intentCancel:            api.goodbye,
		intentStop:              api.goodbye,
		requestTypeSessionEnded: api.sessionEnded,
	}

	e.POST("/", api.handle)
}

// handle binds, validates and routes every incoming skill request.
func (api *skillAPI) handle(ctx echo.Context) error {
	var env RequestEnvelope
	if err := ctx.Bind(&env); err != nil {
		return errors.Wrap(err, "binding to RequestEnvelope")
	}
	if err := api.validate.Struct(env); err != nil {
		return err
	}

	h, ok := api.routes[env.routeKey()]
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unhandled request %q", env.routeKey()))
	}
	return h(ctx, env)
}

// dueAssignments answers "what do I have due?" for LaunchRequest and DailyIntent.
func (api *skillAPI) dueAssignments(ctx echo.Context, env RequestEnvelope) error {
	if !env.hasConsent() {
		return ctx.JSON(http.StatusOK, newConsentResponse(consentSpeech, givenNameReadPermission))
	}

	reqCtx := ctx.Request().Context()
	narrative, err := api.assignSvc.UpcomingNarrative(reqCtx, nowFunc())
	if err != nil {
		return errors.Wrap(err, "building deadline narrative")
	}

	speech := fmt.Sprintf(greetingFmt, api.givenName(reqCtx, env), narrative)
	return ctx.JSON(http.StatusOK, newCardResponse(speech, cardTitle, true))
}

// givenName resolves the user's display name for the greeting; any failure is
// swallowed here and replaced with a generic fallback.
func (api *skillAPI) givenName(ctx context.Context, env RequestEnvelope) string {
	sys := env.Context.System
	name, err := api.profileSvc.GetGivenName(ctx, sys.APIEndpoint, sys.APIAccessToken)
	if err != nil {
		api.logger.Warn("profile lookup failed; falling back", err)
		return defaultGivenName
	}
	return name
}

func (api *skillAPI) help(ctx echo.Context, env RequestEnvelope) error {
	return ctx.JSON(http.StatusOK, newRepromptResponse(helpSpeech))
}

func (api *skillAPI) goodbye(ctx echo.Context, env RequestEnvelope) error {
	return ctx.JSON(http.StatusOK, newCardResponse(goodbyeSpeech, cardTitle, true))
}

func (api *skillAPI) sessionEnded(ctx echo.Context, env RequestEnvelope) error {
	// nothing to clean up; no state outlives a request
	return ctx.JSON(http.StatusOK, newEmptyResponse())
}

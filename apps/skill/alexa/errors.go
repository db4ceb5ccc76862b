package alexaskill

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/kesho/core"
)

const apologySpeech = "Oops. Had an exception."

// newSkillErrorHandler returns a custom echo.HTTPErrorHandler. Transport-level
// problems (bad JSON, unknown routes) answer with plain HTTP errors; anything
// escaping the pipeline is logged in full and turned into the fixed apology
// utterance, ending the session. signalShutdown is called whenever a
// core.shutdown error is caught.
func newSkillErrorHandler(logger core.Logger, signalShutdown func()) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			if origErr.Internal != nil {
				if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
					origErr = herr
				}
			}
			_ = ctx.JSON(origErr.Code, echo.Map{"error": origErr.Message})
		case validator.ValidationErrors:
			fldErrs := make(map[string]string, len(origErr))
			for _, vErr := range origErr {
				fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
			}
			_ = ctx.JSON(http.StatusBadRequest, echo.Map{"error": fldErrs})
		default: // the pipeline's single catch-all; no partial results
			logger.Error(apologySpeech, err)
			_ = ctx.JSON(http.StatusOK, newSpeechResponse(apologySpeech, true))

			// shutting down...
			if core.IsShutdown(err) {
				signalShutdown()
			}
		}
	}
}

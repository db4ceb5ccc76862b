package canvasevents

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/trezcool/kesho/core"
	"github.com/trezcool/kesho/core/assignment"
)

const upcomingEventsPath = "/api/v1/users/self/upcoming_events"

// service pulls the upcoming-event feed from the Canvas REST API.
// One synchronous call per skill invocation; no retry, no partial results.
type service struct {
	client *resty.Client
}

var _ assignment.EventSource = (*service)(nil)

func NewService(conf *core.Config) assignment.EventSource {
	client := resty.New().
		SetHostURL(conf.Canvas.BaseURL).
		SetAuthToken(conf.Canvas.Token)
	return &service{client: client}
}

func (svc *service) FetchUpcomingEvents(ctx context.Context) ([]assignment.RawEvent, error) {
	var events []assignment.RawEvent
	resp, err := svc.client.R().
		SetContext(ctx).
		SetResult(&events).
		Get(upcomingEventsPath)
	if err != nil {
		return nil, errors.Wrap(err, "requesting upcoming events")
	}
	switch {
	case resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden:
		// a rejected credential will not fix itself; stop serving
		return nil, core.NewShutdownError("canvas token rejected: " + resp.Status())
	case resp.IsError():
		return nil, errors.Errorf("canvas: %s", resp.Status())
	}
	return events, nil
}

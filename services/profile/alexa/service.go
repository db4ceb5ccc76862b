package alexaprofile

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/trezcool/kesho/core"
)

// givenNamePath is relative to the per-request apiEndpoint.
const givenNamePath = "/v2/accounts/~current/settings/Profile.givenName"

type service struct {
	client *resty.Client
}

var _ core.ProfileService = (*service)(nil)

func NewService() core.ProfileService {
	return &service{client: resty.New()}
}

func (svc *service) GetGivenName(ctx context.Context, apiEndpoint, accessToken string) (string, error) {
	resp, err := svc.client.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Get(apiEndpoint + givenNamePath)
	if err != nil {
		return "", errors.Wrap(err, "requesting given name")
	}
	if resp.IsError() {
		return "", errors.Errorf("profile: %s", resp.Status())
	}

	// the settings API answers with a bare JSON string
	var name string
	if err := json.Unmarshal(resp.Body(), &name); err != nil {
		return "", errors.Wrap(err, "decoding given name")
	}
	return name, nil
}

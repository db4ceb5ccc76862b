package core

import "context"

// ProfileService is any service that can resolve the invoking user's given name
// from the voice platform's profile API. The endpoint and access token come with
// each request envelope.
type ProfileService interface {
	GetGivenName(ctx context.Context, apiEndpoint, accessToken string) (string, error)
}

package dummyprofile

import (
	"context"
	"sync"

	"github.com/trezcool/kesho/core"
)

// service answers with a fixed given name; for tests and local runs.
type service struct {
	mu   sync.RWMutex
	name string
	err  error
}

var _ core.ProfileService = (*service)(nil)

func NewService(name string) *service {
	return &service{name: name}
}

func (svc *service) GetGivenName(ctx context.Context, apiEndpoint, accessToken string) (string, error) {
	svc.mu.RLock()
	defer svc.mu.RUnlock()
	return svc.name, svc.err
}

// Fail makes every subsequent lookup return err.
func (svc *service) Fail(err error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.err = err
}

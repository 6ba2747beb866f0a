package mongodb

import (
	"context"
	"errors"

	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// Unconfigured is the repository used when no connection string is set.
// Every operation reports the storage backend as unavailable, which the
// HTTP adapter surfaces per endpoint. This replaces nil-checking a global
// database handle: the service always holds a working port value.
type Unconfigured struct{}

// NewUnconfigured returns the stub repository.
func NewUnconfigured() *Unconfigured {
	return &Unconfigured{}
}

func (*Unconfigured) err() error {
	return domain.NewUnavailableError(ServiceName, "not configured")
}

// Insert always fails with unavailable.
func (u *Unconfigured) Insert(context.Context, domain.Quote) (string, error) {
	return "", u.err()
}

// Find always fails with unavailable.
func (u *Unconfigured) Find(context.Context, string, int64) ([]domain.Document, error) {
	return nil, u.err()
}

// Count always fails with unavailable.
func (u *Unconfigured) Count(context.Context, string) (int64, error) {
	return 0, u.err()
}

// SampleOne always fails with unavailable.
func (u *Unconfigured) SampleOne(context.Context, string) (*domain.Document, error) {
	return nil, u.err()
}

// CollectionNames always fails with unavailable.
func (u *Unconfigured) CollectionNames(context.Context) ([]string, error) {
	return nil, u.err()
}

// Name implements ports.HealthChecker.
func (*Unconfigured) Name() string { return ServiceName }

// Check implements ports.HealthChecker; an unconfigured backend is
// always unhealthy.
func (*Unconfigured) Check(context.Context) error {
	return errors.New("not configured")
}

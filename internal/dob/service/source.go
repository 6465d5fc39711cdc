package service

import (
	"context"
	"sync"
	"time"

	"agegate/pkg/dob"
	"agegate/pkg/domain"
	"agegate/pkg/platform/middleware/requesttime"
)

// Source yields the validator that applies to a request.
type Source interface {
	Validator(ctx context.Context) *dob.Validator
}

type fixedSource struct {
	v *dob.Validator
}

// Fixed always returns v. Use it when the reference date is configured.
func Fixed(v *dob.Validator) Source {
	return fixedSource{v: v}
}

func (f fixedSource) Validator(context.Context) *dob.Validator { return f.v }

// Daily anchors the age window at the calendar day of the request, taken from
// requesttime.Now, and rebuilds the validator when that day changes.
type Daily struct {
	bounds domain.AgeBounds

	mu      sync.Mutex
	current *dob.Validator
}

func NewDaily(bounds domain.AgeBounds) (*Daily, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return &Daily{bounds: bounds}, nil
}

func (d *Daily) Validator(ctx context.Context) *dob.Validator {
	now := requesttime.Now(ctx)
	today := domain.DateOnly(now)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current != nil && d.current.ReferenceDate().Equal(today) {
		return d.current
	}
	// Bounds were validated in NewDaily, so New cannot fail here.
	v, err := dob.New(dob.WithAgeBounds(d.bounds), dob.WithClock(func() time.Time { return now }))
	if err != nil {
		return d.current
	}
	d.current = v
	return v
}

// Package tracer is the tracing seam of the date-of-birth service.
//
// The service depends on the small Tracer interface rather than on
// OpenTelemetry directly. NewOTel adapts the global OpenTelemetry provider;
// NewNoop is for tests and CLI runs.
package tracer

import (
	"context"
	"strconv"
)

// Span is an active trace span. End must be called exactly once.
type Span interface {
	// End completes the span; a non-nil err marks it failed.
	End(err error)
	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute is a key-value pair attached to a span.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute    { return Attribute{Key: key, Value: value} }
func Bool(key string, value bool) Attribute { return Attribute{Key: key, Value: value} }
func Int(key string, value int) Attribute   { return Attribute{Key: key, Value: value} }

// AgeBucket coarsens an age to its decade ("20s", "80s") so spans never carry
// an exact age or birth date.
func AgeBucket(age int) string {
	if age < 0 {
		return "unknown"
	}
	return strconv.Itoa(age/10*10) + "s"
}

// Span names.
const (
	SpanYearsRange    = "dob.years_range"
	SpanValidateField = "dob.validate_field"
	SpanValidateDOB   = "dob.validate"
)

// Attribute keys. Raw user input is never attached.
const (
	AttrField     = "dob.field"
	AttrValid     = "dob.valid"
	AttrEligible  = "dob.eligible"
	AttrAgeBucket = "dob.age_bucket"
	AttrYearMin   = "dob.year_min"
	AttrYearMax   = "dob.year_max"
)

// Event names.
const (
	EventOutsideWindow = "dob.outside_window"
)

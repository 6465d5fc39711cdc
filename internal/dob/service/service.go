package service

import (
	"context"
	"log/slog"
	"time"

	dobmetrics "agegate/internal/dob/metrics"
	"agegate/internal/dob/tracer"
	"agegate/pkg/dob"
	dErrors "agegate/pkg/domain-errors"
	request "agegate/pkg/platform/middleware/request"
)

// Field names one date-of-birth component.
type Field string

const (
	FieldDay   Field = "day"
	FieldMonth Field = "month"
	FieldYear  Field = "year"
)

// ParseField maps a field name to a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(s); f {
	case FieldDay, FieldMonth, FieldYear:
		return f, nil
	default:
		return "", dErrors.Newf(dErrors.CodeNotFound, "unknown field %q", s)
	}
}

// YearsRange is the helper data a form needs to render a birth-year picker.
type YearsRange struct {
	Years   []int
	YearMin int
	YearMax int
	DateMin time.Time
	DateMax time.Time
}

// BirthDateInput holds raw day, 1-based month and year as typed by the user.
type BirthDateInput struct {
	Day   string
	Month string
	Year  string
}

// Result breaks a date-of-birth check down by component.
type Result struct {
	DayValid   bool
	MonthValid bool
	YearValid  bool
	DateValid  bool
	Eligible   bool
	// Age is the completed years at the reference date, set only when Eligible.
	Age *int
}

// Service exposes the date-of-birth validator with logging, metrics and tracing.
type Service struct {
	source  Source
	logger  *slog.Logger
	metrics *dobmetrics.Metrics
	tracer  tracer.Tracer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *dobmetrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(s *Service) {
		s.tracer = t
	}
}

func New(source Source, opts ...Option) (*Service, error) {
	if source == nil {
		return nil, dErrors.New(dErrors.CodeInvalidConfiguration, "validator source is required")
	}
	if f, ok := source.(fixedSource); ok && f.v == nil {
		return nil, dErrors.New(dErrors.CodeInvalidConfiguration, "validator is required")
	}
	s := &Service{source: source}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.tracer == nil {
		s.tracer = tracer.NewNoop()
	}
	return s, nil
}

// YearsRange returns the accepted birth years and the window boundaries.
func (s *Service) YearsRange(ctx context.Context) YearsRange {
	v := s.source.Validator(ctx)
	_, span := s.tracer.Start(ctx, tracer.SpanYearsRange,
		tracer.Int(tracer.AttrYearMin, v.YearMin()),
		tracer.Int(tracer.AttrYearMax, v.YearMax()),
	)
	defer span.End(nil)

	if s.metrics != nil {
		s.metrics.IncrementYearsRangeServed()
	}
	return YearsRange{
		Years:   v.YearsRange(),
		YearMin: v.YearMin(),
		YearMax: v.YearMax(),
		DateMin: v.DateMin(),
		DateMax: v.DateMax(),
	}
}

// ValidateField checks a single raw component. Unknown fields are a not_found error.
func (s *Service) ValidateField(ctx context.Context, field Field, raw string) (bool, error) {
	_, span := s.tracer.Start(ctx, tracer.SpanValidateField, tracer.String(tracer.AttrField, string(field)))

	var valid bool
	switch field {
	case FieldDay:
		valid = dob.ValidateUserInputDayOfMonth(raw)
	case FieldMonth:
		valid = dob.ValidateUserInputMonth(raw)
	case FieldYear:
		valid = s.source.Validator(ctx).ValidateUserInputYear(raw)
	default:
		err := dErrors.Newf(dErrors.CodeNotFound, "unknown field %q", field)
		span.End(err)
		return false, err
	}

	span.SetAttributes(tracer.Bool(tracer.AttrValid, valid))
	span.End(nil)
	s.observe(string(field), valid)
	return valid, nil
}

// ValidateDateOfBirth checks every component and the age window.
func (s *Service) ValidateDateOfBirth(ctx context.Context, in BirthDateInput) Result {
	ctx, span := s.tracer.Start(ctx, tracer.SpanValidateDOB)
	defer span.End(nil)
	v := s.source.Validator(ctx)

	day := dob.ParseDayOfMonth(in.Day)
	month := dob.ParseMonth(in.Month)
	year := dob.ParseYear(in.Year)

	res := Result{
		DayValid:   dob.IsValidDayOfMonth(day),
		MonthValid: dob.IsValidMonth(month),
		YearValid:  v.IsValidYear(year),
		DateValid:  v.IsValidDate(day, month, year),
		Eligible:   v.IsWithinAgeBounds(day, month, year),
	}

	if res.Eligible {
		birth, _ := v.BirthDate(day, month, year)
		age := v.AgeAt(birth)
		res.Age = &age
		span.SetAttributes(tracer.String(tracer.AttrAgeBucket, tracer.AgeBucket(age)))
	} else if res.DateValid {
		span.AddEvent(tracer.EventOutsideWindow)
	}
	span.SetAttributes(tracer.Bool(tracer.AttrEligible, res.Eligible))

	if !res.Eligible {
		s.logger.DebugContext(ctx, "date of birth rejected",
			"request_id", request.GetRequestID(ctx),
			"day_valid", res.DayValid,
			"month_valid", res.MonthValid,
			"year_valid", res.YearValid,
			"date_valid", res.DateValid,
		)
	}
	s.observe("date_of_birth", res.Eligible)
	return res
}

// ReferenceDate exposes the anchor of the age window that applies to ctx.
func (s *Service) ReferenceDate(ctx context.Context) time.Time {
	return s.source.Validator(ctx).ReferenceDate()
}

func (s *Service) observe(kind string, accepted bool) {
	if s.metrics != nil {
		s.metrics.ObserveValidation(kind, accepted)
	}
}

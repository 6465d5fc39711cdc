package handler

//go:generate mockgen -source=handler.go -destination=mocks/handler_mock.go -package=mocks Service

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"agegate/internal/dob/handler/mocks"
	"agegate/internal/dob/service"
	"agegate/pkg/dob"
	dErrors "agegate/pkg/domain-errors"
	"agegate/pkg/platform/httputil"
)

type HandlerSuite struct {
	suite.Suite
	router      http.Handler
	ctrl        *gomock.Controller
	mockService *mocks.MockService
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = mocks.NewMockService(s.ctrl)
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	h := New(s.mockService, logger)

	r := chi.NewRouter()
	h.Register(r)
	s.router = r
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) TestYears() {
	s.mockService.EXPECT().YearsRange(gomock.Any()).Return(service.YearsRange{
		Years:   []int{1999, 2000},
		YearMin: 1999,
		YearMax: 2000,
		DateMin: time.Date(1999, 6, 27, 0, 0, 0, 0, time.UTC),
		DateMax: time.Date(2000, 6, 27, 0, 0, 0, 0, time.UTC),
	})

	rec := s.do(http.MethodGet, "/dob/years", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var resp YearsResponse
	s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
	s.Equal([]int{1999, 2000}, resp.Years)
	s.Equal("1999-06-27", resp.DateMin)
	s.Equal("2000-06-27", resp.DateMax)
}

func (s *HandlerSuite) TestValidateField() {
	s.Run("string value", func() {
		s.mockService.EXPECT().ValidateField(gomock.Any(), service.FieldDay, "07").Return(true, nil)

		rec := s.do(http.MethodPost, "/dob/fields/day", `{"value":"07"}`)

		s.Require().Equal(http.StatusOK, rec.Code)
		var resp FieldResponse
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
		s.Equal(FieldResponse{Field: "day", Valid: true}, resp)
	})

	s.Run("numeric value", func() {
		s.mockService.EXPECT().ValidateField(gomock.Any(), service.FieldMonth, "13").Return(false, nil)

		rec := s.do(http.MethodPost, "/dob/fields/month", `{"value":13}`)

		s.Require().Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"valid":false`)
	})

	s.Run("unknown field is 404 without calling the service", func() {
		rec := s.do(http.MethodPost, "/dob/fields/week", `{"value":"1"}`)
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("missing value", func() {
		rec := s.do(http.MethodPost, "/dob/fields/day", `{}`)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "value is required")
	})

	s.Run("oversized value", func() {
		rec := s.do(http.MethodPost, "/dob/fields/year", `{"value":"`+strings.Repeat("9", 33)+`"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("service error is mapped", func() {
		s.mockService.EXPECT().ValidateField(gomock.Any(), service.FieldYear, "1990").
			Return(false, dErrors.New(dErrors.CodeInternal, "boom"))

		rec := s.do(http.MethodPost, "/dob/fields/year", `{"value":"1990"}`)
		s.Equal(http.StatusInternalServerError, rec.Code)
	})
}

func (s *HandlerSuite) TestValidate() {
	s.Run("eligible", func() {
		age := 22
		s.mockService.EXPECT().
			ValidateDateOfBirth(gomock.Any(), service.BirthDateInput{Day: "29", Month: "2", Year: "1996"}).
			Return(service.Result{DayValid: true, MonthValid: true, YearValid: true, DateValid: true, Eligible: true, Age: &age})

		rec := s.do(http.MethodPost, "/dob/validate", `{"day":"29","month":2,"year":1996}`)

		s.Require().Equal(http.StatusOK, rec.Code)
		var resp ValidateResponse
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
		s.True(resp.Eligible)
		s.Require().NotNil(resp.Age)
		s.Equal(22, *resp.Age)
	})

	s.Run("ineligible is still 200 and omits age", func() {
		s.mockService.EXPECT().ValidateDateOfBirth(gomock.Any(), gomock.Any()).
			Return(service.Result{DayValid: true, MonthValid: true, YearValid: false, DateValid: true})

		rec := s.do(http.MethodPost, "/dob/validate", `{"day":"1","month":"1","year":"2010"}`)

		s.Equal(http.StatusOK, rec.Code)
		s.NotContains(rec.Body.String(), `"age"`)
		s.Contains(rec.Body.String(), `"eligible":false`)
	})

	s.Run("invalid json", func() {
		rec := s.do(http.MethodPost, "/dob/validate", "not valid json")
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("missing component", func() {
		rec := s.do(http.MethodPost, "/dob/validate", `{"day":"1","month":"1"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
		var resp httputil.ErrorResponse
		s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
		s.Equal("validation_error", resp.Error)
		s.Equal("year is required", resp.ErrorDescription)
	})

	s.Run("blank component", func() {
		rec := s.do(http.MethodPost, "/dob/validate", `{"day":"  ","month":"1","year":"1990"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Contains(rec.Body.String(), "day must not be blank")
	})

	s.Run("boolean component", func() {
		rec := s.do(http.MethodPost, "/dob/validate", `{"day":true,"month":"1","year":"1990"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// TestValidate_RealService runs the request path end to end against a
// validator pinned to 2018-06-27.
func (s *HandlerSuite) TestValidate_RealService() {
	v, err := dob.New(dob.WithReferenceDate("2018-06-27"))
	s.Require().NoError(err)
	svc, err := service.New(service.Fixed(v))
	s.Require().NoError(err)

	r := chi.NewRouter()
	New(svc, slog.New(slog.DiscardHandler)).Register(r)

	cases := []struct {
		body     string
		eligible bool
	}{
		{`{"day":"27","month":"6","year":"2000"}`, true},
		{`{"day":"28","month":"6","year":"2000"}`, false},
		{`{"day":27,"month":6,"year":1934}`, true},
		{`{"day":"26","month":"6","year":"1934"}`, false},
		{`{"day":"29","month":"2","year":"1995"}`, false},
		{`{"day":"07abc","month":"06","year":"1990"}`, true},
	}
	for _, tc := range cases {
		s.Run(tc.body, func() {
			req := httptest.NewRequest(http.MethodPost, "/dob/validate", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			s.Require().Equal(http.StatusOK, rec.Code)
			var resp ValidateResponse
			s.Require().NoError(json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(s.T(), tc.eligible, resp.Eligible)
		})
	}
}

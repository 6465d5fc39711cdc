package handler

import (
	"time"

	"agegate/internal/dob/service"
)

type YearsResponse struct {
	Years   []int  `json:"years"`
	YearMin int    `json:"year_min"`
	YearMax int    `json:"year_max"`
	DateMin string `json:"date_min"`
	DateMax string `json:"date_max"`
}

type FieldResponse struct {
	Field string `json:"field"`
	Valid bool   `json:"valid"`
}

type ValidateResponse struct {
	DayValid   bool `json:"day_valid"`
	MonthValid bool `json:"month_valid"`
	YearValid  bool `json:"year_valid"`
	DateValid  bool `json:"date_valid"`
	Eligible   bool `json:"eligible"`
	Age        *int `json:"age,omitempty"`
}

func toYearsResponse(r service.YearsRange) *YearsResponse {
	return &YearsResponse{
		Years:   r.Years,
		YearMin: r.YearMin,
		YearMax: r.YearMax,
		DateMin: r.DateMin.Format(time.DateOnly),
		DateMax: r.DateMax.Format(time.DateOnly),
	}
}

func toValidateResponse(r service.Result) *ValidateResponse {
	return &ValidateResponse{
		DayValid:   r.DayValid,
		MonthValid: r.MonthValid,
		YearValid:  r.YearValid,
		DateValid:  r.DateValid,
		Eligible:   r.Eligible,
		Age:        r.Age,
	}
}

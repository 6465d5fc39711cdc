package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	dErrors "agegate/pkg/domain-errors"
	"agegate/pkg/platform/validation"
)

// RawInput is a date component exactly as the user typed it. The JSON form may
// be a string or a number; numbers are kept as their decimal text so "07" and
// 7 reach the parser the same way.
type RawInput string

func (r *RawInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*r = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = RawInput(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("date component must be a string or a number")
	}
	text := n.String()
	if strings.ContainsAny(text, "eE") {
		f, err := n.Float64()
		if err != nil {
			return err
		}
		text = strconv.FormatFloat(f, 'f', -1, 64)
	}
	*r = RawInput(text)
	return nil
}

func (r RawInput) String() string { return string(r) }

// ValidateRequest carries raw day, 1-based month and year.
type ValidateRequest struct {
	Day   RawInput `json:"day" validate:"required,notblank,max=32"`
	Month RawInput `json:"month" validate:"required,notblank,max=32"`
	Year  RawInput `json:"year" validate:"required,notblank,max=32"`
}

func (r *ValidateRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

// FieldRequest carries one raw component.
type FieldRequest struct {
	Value RawInput `json:"value" validate:"required"`
}

func (r *FieldRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := validation.Validate(r); err != nil {
		return err
	}
	return validation.CheckStringLength("value", string(r.Value), validation.MaxComponentLength)
}

package dob

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntPrefix(t *testing.T) {
	cases := []struct {
		in    string
		want  int
		valid bool
	}{
		{"7", 7, true},
		{"07", 7, true},
		{"007", 7, true},
		{"  12", 12, true},
		{"\t3\n", 3, true},
		{"12abc", 12, true},
		{"27.5", 27, true},
		{"1e2", 1, true},
		{"+5", 5, true},
		{"-1", -1, true},
		{"-0", 0, true},
		{"", 0, false},
		{"abc", 0, false},
		{"-", 0, false},
		{"+-1", 0, false},
		{" x1", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			got, ok := parseIntPrefix(tc.in).Value()
			assert.Equal(t, tc.valid, ok)
			if tc.valid {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestComponentString(t *testing.T) {
	assert.Equal(t, "NaN", Invalid().String())
	assert.Equal(t, "-3", Int(-3).String())
	assert.False(t, Invalid().IsValid())
	assert.True(t, Int(0).IsValid())
}

func TestValidateUserInputDayOfMonth(t *testing.T) {
	for d := 1; d <= 31; d++ {
		assert.True(t, ValidateUserInputDayOfMonth(fmt.Sprint(d)), "day %d", d)
		assert.True(t, ValidateUserInputDayOfMonth(fmt.Sprintf("0%d", d)), "day 0%d", d)
		assert.True(t, ValidateUserInputDayOfMonth(fmt.Sprintf("00%d", d)), "day 00%d", d)
		assert.True(t, IsValidDayOfMonth(Int(d)), "numeric day %d", d)
	}

	for _, bad := range []string{"-1", "0", "32", "", "day"} {
		assert.False(t, ValidateUserInputDayOfMonth(bad), "day %q", bad)
	}
}

func TestValidateUserInputMonth(t *testing.T) {
	for m := 1; m <= 12; m++ {
		assert.True(t, ValidateUserInputMonth(fmt.Sprint(m)), "month %d", m)
		assert.True(t, ValidateUserInputMonth(fmt.Sprintf("0%d", m)), "month 0%d", m)
		assert.True(t, ValidateUserInputMonth(fmt.Sprintf("00%d", m)), "month 00%d", m)
	}

	for _, bad := range []string{"-1", "0", "13", "june"} {
		assert.False(t, ValidateUserInputMonth(bad), "month %q", bad)
	}
}

func TestParseMonth(t *testing.T) {
	t.Run("converts to zero based", func(t *testing.T) {
		got, ok := ParseMonth("06").Value()
		assert.True(t, ok)
		assert.Equal(t, 5, got)
	})

	t.Run("invalid input is not shifted", func(t *testing.T) {
		assert.False(t, ParseMonth("jun").IsValid())
	})

	t.Run("zero becomes minus one", func(t *testing.T) {
		got, _ := ParseMonth("0").Value()
		assert.Equal(t, -1, got)
	})
}

func TestIsValidMonth(t *testing.T) {
	assert.True(t, IsValidMonth(Int(0)))
	assert.True(t, IsValidMonth(Int(11)))
	assert.False(t, IsValidMonth(Int(-1)))
	assert.False(t, IsValidMonth(Int(12)))
	assert.False(t, IsValidMonth(Invalid()))
}

package username

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	cases := []struct {
		name           string
		fullName       string
		employeeNumber string
		want           string
	}{
		{"first and last", "John Doe", "1234", "jdoe1234"},
		{"middle name ignored", "John Michael Doe", "1234", "jdoe1234"},
		{"single name", "Madonna", "42", "madonna42"},
		{"special characters stripped", "Mary O'Brien", "EMP-001", "mobrienemp001"},
		{"uppercase number", "Jane Roe", "AB12", "jroeab12"},
		{"multi-byte initial", "Éva Novák", "9", "novk9"},
		{"multi-byte single name", "Žofia", "42", "ofia42"},
		{"empty name falls back", "", "77", "user77"},
		{"whitespace name falls back", "   ", "77", "user77"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Generate(tc.fullName, tc.employeeNumber))
		})
	}
}

func TestTempPassword(t *testing.T) {
	pw := TempPassword(10)
	assert.Len(t, pw, 10)
	assert.Regexp(t, regexp.MustCompile(`^[a-zA-Z0-9@#$]+$`), pw)

	// Below the floor the length is clamped up
	assert.Len(t, TempPassword(3), 8)

	// Two draws colliding would mean a broken generator
	assert.NotEqual(t, TempPassword(16), TempPassword(16))
}

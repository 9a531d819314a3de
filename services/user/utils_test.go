package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPasswordComplexity(t *testing.T) {
	assert.NoError(t, VerifyPasswordComplexity("Sunrise42"))

	cases := []struct {
		name string
		pw   string
	}{
		{"too short", "Ab1"},
		{"no uppercase", "sunrise42"},
		{"no lowercase", "SUNRISE42"},
		{"no number", "Sunriseee"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, VerifyPasswordComplexity(tc.pw))
		})
	}
}

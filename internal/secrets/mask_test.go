package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "empty", value: "", expected: ""},
		{name: "one char", value: "a", expected: "*"},
		{name: "two chars", value: "ab", expected: "**"},
		{name: "four chars fully redacted", value: "abcd", expected: "****"},
		{name: "five chars", value: "abcde", expected: "ab****bcde"},
		{name: "six chars", value: "abcdef", expected: "ab****cdef"},
		{name: "api key", value: "sk-0123456789abcdef", expected: "sk****cdef"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Mask(tc.value))
		})
	}
}

package errs_test

import (
	"fmt"
	"testing"

	"github.com/VladPetriv/money/pkg/errs"
	"github.com/stretchr/testify/assert"
)

func Test_IsExpected(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		args     error
		expected bool
	}{
		{
			name:     "should return true, since the error was custom",
			args:     errs.New("custom error"),
			expected: true,
		},
		{
			name:     "should return true, since the custom error was wrapped",
			args:     fmt.Errorf("get currency: %w", errs.Newf("currency %s not found", "xxx")),
			expected: true,
		},
		{
			name:     "should return false, since the error wasn't custom",
			args:     fmt.Errorf("not custom error"),
			expected: false,
		},
		{
			name:     "should return false, since the error was nil",
			args:     nil,
			expected: false,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			actual := errs.IsExpected(tc.args)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func Test_Message(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		args     error
		expected string
	}{
		{
			name:     "should return message of the wrapped custom error",
			args:     fmt.Errorf("outer: %w", errs.New("inner message")),
			expected: "inner message",
		},
		{
			name:     "should return empty string for not custom error",
			args:     fmt.Errorf("plain"),
			expected: "",
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, errs.Message(tc.args))
		})
	}
}

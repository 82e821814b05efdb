package typecast_test

import (
	"testing"

	"github.com/VladPetriv/money/pkg/typecast"
	"github.com/stretchr/testify/assert"
)

func TestToPtr(t *testing.T) {
	t.Parallel()

	ptr := typecast.ToPtr(false)
	assert.NotNil(t, ptr)
	assert.False(t, *ptr)

	code := "usd"
	assert.NotSame(t, &code, typecast.ToPtr(code))
}

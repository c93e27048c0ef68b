package tools

import (
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-toolbox/internal/config"
)

func TestGeneratePassword_RandomFailure(t *testing.T) {
	boom := errors.New("entropy exhausted")
	saved := randReader
	randReader = iotest.ErrReader(boom)
	t.Cleanup(func() { randReader = saved })

	_, err := GeneratePassword(DefaultPasswordOptions())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), config.ErrRandom)
}

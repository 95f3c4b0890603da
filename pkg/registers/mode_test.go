package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeFromKey(t *testing.T) {
	for _, mode := range AllModes() {
		resolved, err := ModeFromKey(mode.Key())
		assert.NoError(t, err)
		assert.Equal(t, mode, resolved)
	}

	_, err := ModeFromKey("rw")
	assert.ErrorIs(t, err, ErrSchema)
}

func TestMode_Accessibility(t *testing.T) {
	assert.True(t, Mode_Read.IsReadable())
	assert.False(t, Mode_Read.IsWriteable())

	assert.False(t, Mode_Write.IsReadable())
	assert.True(t, Mode_Write.IsWriteable())

	assert.True(t, Mode_ReadWrite.IsReadable())
	assert.True(t, Mode_ReadWrite.IsWriteable())

	assert.False(t, Mode_WritePulse.IsReadable())
	assert.True(t, Mode_WritePulse.IsWriteable())

	assert.True(t, Mode_ReadWritePulse.IsReadable())
	assert.True(t, Mode_ReadWritePulse.IsWriteable())
}

func TestAllModes_CoversEveryMode(t *testing.T) {
	assert.Len(t, AllModes(), int(TOTAL_MODES))
}

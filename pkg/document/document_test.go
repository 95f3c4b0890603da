package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadTOML_KeepsDocumentOrder(t *testing.T) {
	data, err := LoadTOML(`
[register.status]
mode = "r"

[constant.version]
value = 3

[register.config]
mode = "r_w"
enabled = true
ratio = 0.5
`)
	require.NoError(t, err)

	assert.Equal(t, []string{"register", "constant"}, data.Keys())

	registers := data.Child("register")
	require.NotNil(t, registers)
	assert.Equal(t, []string{"status", "config"}, registers.Keys())

	config := registers.Child("config")
	require.NotNil(t, config)

	mode, _ := config.Get("mode")
	enabled, _ := config.Get("enabled")
	ratio, _ := config.Get("ratio")

	assert.Equal(t, "r_w", mode)
	assert.Equal(t, true, enabled)
	assert.Equal(t, 0.5, ratio)

	version, _ := data.Child("constant").Child("version").Get("value")

	assert.Equal(t, int64(3), version)
}

func TestLoadTOML_RejectsUnsupportedValues(t *testing.T) {
	_, err := LoadTOML(`values = [1, 2, 3]`)

	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestLoadYAML_KeepsDocumentOrder(t *testing.T) {
	data, err := LoadYAML(`
register:
  status:
    mode: r
  config:
    mode: r_w
    enabled: true
    ratio: 0.5
constant:
  version:
    value: 3
`)
	require.NoError(t, err)

	assert.Equal(t, []string{"register", "constant"}, data.Keys())

	registers := data.Child("register")
	require.NotNil(t, registers)
	assert.Equal(t, []string{"status", "config"}, registers.Keys())

	config := registers.Child("config")
	require.NotNil(t, config)

	mode, _ := config.Get("mode")
	enabled, _ := config.Get("enabled")
	ratio, _ := config.Get("ratio")
	statusMode, _ := registers.Child("status").Get("mode")

	assert.Equal(t, "r", statusMode)
	assert.Equal(t, "r_w", mode)
	assert.Equal(t, true, enabled)
	assert.Equal(t, 0.5, ratio)

	version, _ := data.Child("constant").Child("version").Get("value")

	assert.Equal(t, int64(3), version)
}

func TestLoadYAML_RejectsSequences(t *testing.T) {
	_, err := LoadYAML(`
values:
  - 1
  - 2
`)

	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestLoadYAML_Empty(t *testing.T) {
	data, err := LoadYAML("")

	assert.NoError(t, err)
	assert.Equal(t, 0, data.Len())
}

func TestMap_ChildOfScalarIsNil(t *testing.T) {
	data, err := LoadTOML(`name = "caesar"`)
	assert.NoError(t, err)

	assert.Nil(t, data.Child("name"))
	assert.Nil(t, data.Child("missing"))
}

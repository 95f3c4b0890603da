package cheader

import (
	"strings"
	"testing"

	"github.com/hdlkit/regmap/pkg/generators"
	"github.com/hdlkit/regmap/pkg/registers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testList(t *testing.T) *registers.RegisterList {
	list := registers.NewRegisterList("caesar", "regs_caesar.toml")

	config, err := list.AppendRegister("config", registers.Mode_ReadWrite, "Main configuration.")
	require.NoError(t, err)

	_, err = config.AppendBit("enable", "", "1")
	require.NoError(t, err)

	_, err = config.AppendBitVector("threshold", "", 4, "0101", nil)
	require.NoError(t, err)

	array, err := list.AppendRegisterArray("channels", 2, "")
	require.NoError(t, err)

	_, err = array.AppendRegister("data", registers.Mode_Read, "")
	require.NoError(t, err)

	_, err = list.AddConstant("version", int64(3), "", registers.StringDataType_None)
	require.NoError(t, err)

	_, err = list.AddConstant("name", "caesar", "", registers.StringDataType_None)
	require.NoError(t, err)

	_, err = list.AddConstant("enabled", true, "", registers.StringDataType_None)
	require.NoError(t, err)

	return list
}

func TestGenerateTo(t *testing.T) {
	generator, err := NewGenerator("caesar", generators.GeneratedInfo("regs_caesar.toml"))
	require.NoError(t, err)

	var output strings.Builder
	require.NoError(t, generator.GenerateTo(&output, testList(t)))

	header := output.String()

	t.Log(header)

	assert.Contains(t, header, "// Generated from regs_caesar.toml.")
	assert.Contains(t, header, "#ifndef CAESAR_REGS_H")
	assert.Contains(t, header, "#define CAESAR_REGS_H")
	assert.Contains(t, header, "#endif // CAESAR_REGS_H")

	// 1 plain register plus 2 repetitions of 1 register
	assert.Contains(t, header, "#define CAESAR_NUM_REGS (3u)")

	assert.Contains(t, header, "#define CAESAR_CONFIG_INDEX (0u)")
	assert.Contains(t, header, "#define CAESAR_CHANNELS_DATA_INDEX(array_index) (1u + (array_index) * 1u + 0u)")

	assert.Contains(t, header, "#define CAESAR_CONFIG_ENABLE_SHIFT (0u)")
	assert.Contains(t, header, "#define CAESAR_CONFIG_ENABLE_MASK (0x1u)")
	assert.Contains(t, header, "#define CAESAR_CONFIG_ENABLE_DEFAULT (1u)")
	assert.Contains(t, header, "#define CAESAR_CONFIG_THRESHOLD_SHIFT (1u)")
	assert.Contains(t, header, "#define CAESAR_CONFIG_THRESHOLD_MASK (0x1Eu)")
	assert.Contains(t, header, "#define CAESAR_CONFIG_THRESHOLD_DEFAULT (5u)")

	assert.Contains(t, header, "#define CAESAR_CONSTANT_VERSION (3)")
	assert.Contains(t, header, `#define CAESAR_CONSTANT_NAME "caesar"`)
	assert.Contains(t, header, "#define CAESAR_CONSTANT_ENABLED (1)")
}

func TestGenerateTo_EmptyList(t *testing.T) {
	generator, err := NewGenerator("empty", nil)
	require.NoError(t, err)

	var output strings.Builder
	require.NoError(t, generator.GenerateTo(&output, registers.NewRegisterList("empty", "test.toml")))

	assert.Contains(t, output.String(), "#define EMPTY_NUM_REGS (0u)")
}

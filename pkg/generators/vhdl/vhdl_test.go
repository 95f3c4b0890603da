package vhdl

import (
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

	return list
}

func TestGetPackage(t *testing.T) {
	generator := NewGenerator("caesar", generators.GeneratedInfo("regs_caesar.toml"))
	pkg := generator.GetPackage(testList(t))

	t.Log(pkg)

	assert.Contains(t, pkg, "package caesar_regs_pkg is")
	assert.Contains(t, pkg, "package body caesar_regs_pkg is")
	assert.Contains(t, pkg, "-- Generated from regs_caesar.toml.")

	// Register indexes
	assert.Contains(t, pkg, "constant caesar_config : natural := 0;")
	assert.Contains(t, pkg, "function caesar_channels_data(array_index : natural) return natural;")
	assert.Contains(t, pkg, "constant caesar_channels_array_length : natural := 2;")

	// Register map with modes and reset values. The config register resets to
	// enable = 1 with threshold = 0101 above it.
	assert.Contains(t, pkg, "(idx => caesar_config, reg_type => r_w)")
	assert.Contains(t, pkg, "std_logic_vector(to_unsigned(11, 32))")
	assert.Contains(t, pkg, "subtype caesar_reg_range is natural range 0 to 2;")

	// Field constants
	assert.Contains(t, pkg, "constant caesar_config_enable : natural := 0;")
	assert.Contains(t, pkg, "subtype caesar_config_threshold is natural range 4 downto 1;")
	assert.Contains(t, pkg, "constant caesar_config_threshold_width : positive := 4;")

	// Array index function body
	assert.Contains(t, pkg, "return 1 + array_index * 1 + 0;")
	assert.Contains(t, pkg, `report "Array index out of bounds: "`)

	// Constants
	assert.Contains(t, pkg, "constant caesar_constant_version : integer := 3;")
	assert.Contains(t, pkg, `constant caesar_constant_name : string := "caesar";`)
}

func TestGetPackage_ConstantsOnly(t *testing.T) {
	list := registers.NewRegisterList("empty", "test.toml")

	_, err := list.AddConstant("version", int64(1), "", registers.StringDataType_None)
	require.NoError(t, err)

	generator := NewGenerator("empty", nil)
	pkg := generator.GetPackage(list)

	assert.Contains(t, pkg, "constant empty_constant_version : integer := 1;")
	assert.NotContains(t, pkg, "reg_definition_vec_t")
}

package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstant_Types(t *testing.T) {
	integer, err := NewConstant("count", int64(42), "", StringDataType_None)
	require.NoError(t, err)
	assert.Equal(t, ConstantType_Integer, integer.Type())
	assert.Equal(t, int64(42), integer.IntValue())

	boolean, err := NewConstant("enabled", true, "", StringDataType_None)
	require.NoError(t, err)
	assert.Equal(t, ConstantType_Boolean, boolean.Type())
	assert.Equal(t, true, boolean.BoolValue())

	float, err := NewConstant("ratio", 0.25, "", StringDataType_None)
	require.NoError(t, err)
	assert.Equal(t, ConstantType_Float, float.Type())
	assert.Equal(t, 0.25, float.FloatValue())

	str, err := NewConstant("name", "caesar", "", StringDataType_None)
	require.NoError(t, err)
	assert.Equal(t, ConstantType_String, str.Type())
	assert.Equal(t, "caesar", str.StringValue())
}

func TestNewConstant_UnsupportedValue(t *testing.T) {
	_, err := NewConstant("bad", []int{1, 2}, "", StringDataType_None)
	assert.ErrorIs(t, err, ErrSchema)
}

func TestNewConstant_DataTypes(t *testing.T) {
	path, err := NewConstant("bitstream", "out/top.bit", "", StringDataType_Path)
	require.NoError(t, err)
	assert.Equal(t, StringDataType_Path, path.DataType())

	vector, err := NewConstant("mask", "0b1010_1010", "", StringDataType_UnsignedVector)
	require.NoError(t, err)
	assert.Equal(t, StringDataType_UnsignedVector, vector.DataType())

	_, err = NewConstant("mask", "0xAB_CD", "", StringDataType_UnsignedVector)
	assert.NoError(t, err)

	// Not a binary or hexadecimal literal
	_, err = NewConstant("mask", "1010", "", StringDataType_UnsignedVector)
	assert.ErrorIs(t, err, ErrRange)

	// data_type is only meaningful for string constants
	_, err = NewConstant("count", int64(1), "", StringDataType_Path)
	assert.ErrorIs(t, err, ErrSchema)
}

func TestStringDataTypeFromKey(t *testing.T) {
	dataType, err := StringDataTypeFromKey("path")
	assert.NoError(t, err)
	assert.Equal(t, StringDataType_Path, dataType)

	dataType, err = StringDataTypeFromKey("unsigned_vector")
	assert.NoError(t, err)
	assert.Equal(t, StringDataType_UnsignedVector, dataType)

	_, err = StringDataTypeFromKey("nope")
	assert.ErrorIs(t, err, ErrSchema)
}

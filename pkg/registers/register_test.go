package registers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_FieldsArePackedBottomUp(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	enable, err := register.AppendBit("enable", "", "1")
	require.NoError(t, err)

	ratio, err := register.AppendBitVector("ratio", "", 4, "0101", nil)
	require.NoError(t, err)

	count, err := register.AppendInteger("count", "", 0, 100, 50)
	require.NoError(t, err)

	assert.Equal(t, 0, enable.BaseIndex())
	assert.Equal(t, 1, enable.Width())
	assert.Equal(t, 1, ratio.BaseIndex())
	assert.Equal(t, 4, ratio.Width())
	assert.Equal(t, 5, count.BaseIndex())
	assert.Equal(t, 7, count.Width())
	assert.Equal(t, 12, register.BitCount())
	assert.Len(t, register.Fields(), 3)
}

func TestRegister_RangeStr(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	enable, err := register.AppendBit("enable", "", "0")
	require.NoError(t, err)

	ratio, err := register.AppendBitVector("ratio", "", 4, "0000", nil)
	require.NoError(t, err)

	assert.Equal(t, "0", enable.RangeStr())
	assert.Equal(t, "4:1", ratio.RangeStr())
}

func TestRegister_DefaultValueCombinesFieldDefaults(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	_, err := register.AppendBit("enable", "", "1")
	require.NoError(t, err)

	_, err = register.AppendBitVector("ratio", "", 4, "0101", nil)
	require.NoError(t, err)

	_, err = register.AppendInteger("count", "", 0, 100, 50)
	require.NoError(t, err)

	expected := uint64(1) | uint64(0b0101)<<1 | uint64(50)<<5

	assert.Equal(t, expected, register.DefaultValue())
}

func TestRegister_DuplicateFieldName(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	_, err := register.AppendBit("enable", "", "0")
	require.NoError(t, err)

	_, err = register.AppendBit("enable", "", "0")
	assert.ErrorIs(t, err, ErrReference)
}

func TestRegister_FieldsMayNotExceedRegisterWidth(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	_, err := register.AppendBitVector("low", "", 30, strings.Repeat("0", 30), nil)
	require.NoError(t, err)

	_, err = register.AppendBitVector("high", "", 3, "000", nil)
	assert.ErrorIs(t, err, ErrConsistency)

	// Two more bits fit exactly
	_, err = register.AppendBitVector("high", "", 2, "00", nil)
	assert.NoError(t, err)
	assert.Equal(t, RegisterWidth, register.BitCount())
}

func TestBit_InvalidDefault(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	_, err := register.AppendBit("enable", "", "2")
	assert.ErrorIs(t, err, ErrRange)
}

func TestBitVector_InvalidDefaults(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	_, err := register.AppendBitVector("ratio", "", 4, "00", nil)
	assert.ErrorIs(t, err, ErrRange)

	_, err = register.AppendBitVector("ratio", "", 4, "01x1", nil)
	assert.ErrorIs(t, err, ErrRange)

	_, err = register.AppendBitVector("ratio", "", 0, "", nil)
	assert.ErrorIs(t, err, ErrRange)
}

func TestBitVector_TypedFieldMustMatchWidth(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	fieldType, err := NewSigned(8)
	require.NoError(t, err)

	_, err = register.AppendBitVector("ratio", "", 4, "0000", fieldType)
	assert.ErrorIs(t, err, ErrConsistency)

	vector, err := register.AppendBitVector("offset", "", 8, "11111111", fieldType)
	require.NoError(t, err)

	assert.Equal(t, "-1", vector.DefaultValueStr())
}

func TestBit_GetSetValue(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	_, err := register.AppendBitVector("ratio", "", 4, "0000", nil)
	require.NoError(t, err)

	bit, err := register.AppendBit("enable", "", "0")
	require.NoError(t, err)

	contribution, err := bit.SetValue(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<4, contribution)

	value, err := bit.GetValue(contribution)
	require.NoError(t, err)
	assert.Equal(t, float64(1), value)

	_, err = bit.SetValue(2)
	assert.ErrorIs(t, err, ErrRange)
}

func TestBitVector_GetSetValue(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	_, err := register.AppendBit("enable", "", "0")
	require.NoError(t, err)

	vector, err := register.AppendBitVector("ratio", "", 4, "0000", nil)
	require.NoError(t, err)

	contribution, err := vector.SetValue(9)
	require.NoError(t, err)
	assert.Equal(t, uint64(9)<<1, contribution)

	value, err := vector.GetValue(contribution)
	require.NoError(t, err)
	assert.Equal(t, float64(9), value)

	_, err = vector.SetValue(16)
	assert.ErrorIs(t, err, ErrRange)
}

func TestInteger_WidthFollowsRange(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	count, err := register.AppendInteger("count", "", 0, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 7, count.Width())

	offset, err := register.AppendInteger("offset", "", -100, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, 8, offset.Width())

	single, err := register.AppendInteger("single", "", 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, single.Width())
}

func TestInteger_Validation(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	_, err := register.AppendInteger("bad_range", "", 10, 5, 10)
	assert.ErrorIs(t, err, ErrRange)

	_, err = register.AppendInteger("bad_default", "", 0, 5, 6)
	assert.ErrorIs(t, err, ErrRange)
}

func TestInteger_RangeMustFitRegisterWidth(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	// The full 32 bit ranges are still representable
	wide, err := register.AppendInteger("wide", "", 0, int64(1)<<32-1, 0)
	require.NoError(t, err)
	assert.Equal(t, RegisterWidth, wide.Width())

	signedRegister := NewRegister("offsets", Mode_ReadWrite, "")

	signed, err := signedRegister.AppendInteger("signed", "", -(int64(1) << 31), int64(1)<<31-1, 0)
	require.NoError(t, err)
	assert.Equal(t, RegisterWidth, signed.Width())

	_, err = NewRegister("a", Mode_ReadWrite, "").AppendInteger("huge", "", 0, int64(1)<<40, 0)
	assert.ErrorIs(t, err, ErrConsistency)

	_, err = NewRegister("b", Mode_ReadWrite, "").AppendInteger("huge", "", 0, int64(1)<<32, 0)
	assert.ErrorIs(t, err, ErrConsistency)

	_, err = NewRegister("c", Mode_ReadWrite, "").AppendInteger("huge", "", -(int64(1) << 40), 0, 0)
	assert.ErrorIs(t, err, ErrConsistency)
}

func TestInteger_NegativeValues(t *testing.T) {
	register := NewRegister("config", Mode_ReadWrite, "")

	offset, err := register.AppendInteger("offset", "", -10, 10, -1)
	require.NoError(t, err)

	contribution, err := offset.SetValue(-7)
	require.NoError(t, err)

	value, err := offset.GetValue(contribution)
	require.NoError(t, err)
	assert.Equal(t, float64(-7), value)

	// A raw pattern decoding outside of the range is a range error
	_, err = offset.GetValue(uint64(0b01111))
	assert.ErrorIs(t, err, ErrRange)
}

package registers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterList_PlainRegisterIndexes(t *testing.T) {
	list := NewRegisterList("caesar", "regs_caesar.toml")

	status, err := list.AppendRegister("status", Mode_Read, "")
	require.NoError(t, err)

	config, err := list.AppendRegister("config", Mode_ReadWrite, "")
	require.NoError(t, err)

	assert.Equal(t, 0, status.Index())
	assert.Equal(t, 1, config.Index())
}

func TestRegisterList_ArrayIndexes(t *testing.T) {
	list := NewRegisterList("caesar", "regs_caesar.toml")

	_, err := list.AppendRegister("status", Mode_Read, "")
	require.NoError(t, err)

	array, err := list.AppendRegisterArray("channels", 3, "")
	require.NoError(t, err)

	read, err := array.AppendRegister("read_address", Mode_Read, "")
	require.NoError(t, err)

	write, err := array.AppendRegister("write_address", Mode_Write, "")
	require.NoError(t, err)

	// Local indexes within the array template
	assert.Equal(t, 0, read.Index())
	assert.Equal(t, 1, write.Index())

	// 1 plain register, then 3 repetitions of 2 registers
	assert.Equal(t, 1, array.BaseIndex())
	assert.Equal(t, 6, array.Index())
	assert.Equal(t, 3, array.StartIndex(1))

	// The next item continues after the whole array
	tail, err := list.AppendRegister("tail", Mode_Read, "")
	require.NoError(t, err)
	assert.Equal(t, 7, tail.Index())
}

func TestRegisterList_NamespaceIsShared(t *testing.T) {
	list := NewRegisterList("caesar", "regs_caesar.toml")

	_, err := list.AppendRegister("status", Mode_Read, "")
	require.NoError(t, err)

	_, err = list.AppendRegister("status", Mode_Write, "")
	assert.ErrorIs(t, err, ErrReference)

	_, err = list.AppendRegisterArray("status", 2, "")
	assert.ErrorIs(t, err, ErrReference)
}

func TestRegisterList_ArrayLengthMustBePositive(t *testing.T) {
	list := NewRegisterList("caesar", "regs_caesar.toml")

	_, err := list.AppendRegisterArray("channels", 0, "")
	assert.ErrorIs(t, err, ErrRange)

	_, err = list.AppendRegisterArray("channels", -1, "")
	assert.ErrorIs(t, err, ErrRange)
}

func TestRegisterList_GetRegister(t *testing.T) {
	list := NewRegisterList("caesar", "regs_caesar.toml")

	_, err := list.AppendRegister("status", Mode_Read, "")
	require.NoError(t, err)

	_, err = list.AppendRegisterArray("channels", 2, "")
	require.NoError(t, err)

	register, err := list.GetRegister("status")
	assert.NoError(t, err)
	assert.Equal(t, "status", register.Name())

	_, err = list.GetRegister("missing")
	assert.ErrorIs(t, err, ErrReference)

	// An array is not a plain register
	_, err = list.GetRegister("channels")
	assert.ErrorIs(t, err, ErrReference)
}

func TestRegisterList_Constants(t *testing.T) {
	list := NewRegisterList("caesar", "regs_caesar.toml")

	_, err := list.AddConstant("version", int64(3), "", StringDataType_None)
	require.NoError(t, err)

	_, err = list.AddConstant("version", int64(4), "", StringDataType_None)
	assert.ErrorIs(t, err, ErrReference)

	constant, err := list.GetConstant("version")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), constant.IntValue())

	_, err = list.GetConstant("missing")
	assert.ErrorIs(t, err, ErrReference)

	// Constants have their own namespace, a register may share the name
	_, err = list.AppendRegister("version", Mode_Read, "")
	assert.NoError(t, err)
}

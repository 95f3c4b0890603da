package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllOnes(t *testing.T) {
	assert.Equal(t, uint64(0), AllOnes[uint64](0))
	assert.Equal(t, uint64(1), AllOnes[uint64](1))
	assert.Equal(t, uint64(0xFF), AllOnes[uint64](8))
	assert.Equal(t, uint64(0xFFFFFFFF), AllOnes[uint64](32))
	assert.Equal(t, uint64(0xFFFFFFFFFFFFFFFF), AllOnes[uint64](64))
}

func TestBitView_ReadWrite(t *testing.T) {
	var value uint64
	view := CreateBitView(&value)

	view.Write(0b101, 4, 3)

	assert.Equal(t, uint64(0b101_0000), view.Value())
	assert.Equal(t, uint64(0b101), view.Read(4, 3))

	view.Write(0b11, 0, 2)

	assert.Equal(t, uint64(0b101_0011), view.Value())
	assert.Equal(t, uint64(0b11), view.Read(0, 4))
}

func TestBitView_WriteTruncatesToWidth(t *testing.T) {
	var value uint64
	view := CreateBitView(&value)

	view.Write(0xFF, 0, 4)

	assert.Equal(t, uint64(0xF), view.Value())
}

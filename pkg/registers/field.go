package registers

import (
	"fmt"

	"github.com/hdlkit/regmap/pkg/utils"
)

// RegisterField is the capability shared by all register field variants
// (bits, bit vectors, integers). A field owns a fixed range of bits within
// its register and converts field values in and out of that range.
type RegisterField interface {
	// Returns the field name, unique within its register
	Name() string

	// Returns the field description (for documentation)
	Description() string

	// BaseIndex returns the index within the register of the lowest bit of
	// this field. Together with Width it decides the base index of every
	// subsequently appended field, so it never changes after creation.
	BaseIndex() int

	// Width returns the number of bits that this field occupies
	Width() int

	// RangeStr returns the bits occupied by this field the way they shall
	// appear in documentation: "hi:lo", or the plain bit index for a one bit
	// field
	RangeStr() string

	// DefaultValueStr formats the default value the way it shall appear in
	// documentation
	DefaultValueStr() string

	// DefaultValueUint returns the default value as the raw unsigned bit
	// pattern of the field, not shifted to the field's position
	DefaultValueUint() uint64

	// GetValue extracts the value of this field from a full register value
	GetValue(registerValue uint64) (float64, error)

	// SetValue converts a field value into the bit-shifted register
	// contribution of this field, with the bits of all other fields set to
	// zero. Contributions of multiple fields can be ORed together into a
	// full register value.
	SetValue(fieldValue float64) (uint64, error)

	// Deep copy, so that default registers can be seeded into a new model
	// without sharing mutable state
	clone() RegisterField
}

// fieldBits holds the placement of a field within its register
type fieldBits struct {
	name        string
	baseIndex   int
	width       int
	description string
}

func (f *fieldBits) Name() string {
	return f.name
}

func (f *fieldBits) Description() string {
	return f.description
}

func (f *fieldBits) BaseIndex() int {
	return f.baseIndex
}

func (f *fieldBits) Width() int {
	return f.width
}

func (f *fieldBits) RangeStr() string {
	if f.width == 1 {
		return fmt.Sprint(f.baseIndex)
	}

	return fmt.Sprintf("%v:%v", f.baseIndex+f.width-1, f.baseIndex)
}

// Extracts the raw bits of this field from a full register value
func (f *fieldBits) extract(registerValue uint64) uint64 {
	return utils.CreateBitView(&registerValue).Read(f.baseIndex, f.width)
}

package registers

import (
	"fmt"
	"math"

	"github.com/hdlkit/regmap/pkg/utils"
)

// Bit is a one bit register field
type Bit struct {
	fieldBits
	defaultValue string
}

func newBit(name string, baseIndex int, description string, defaultValue string) (*Bit, error) {
	if defaultValue != "0" && defaultValue != "1" {
		return nil, utils.MakeError(ErrRange,
			`bit field %q has invalid default value %q, must be "0" or "1"`, name, defaultValue)
	}

	return &Bit{
		fieldBits: fieldBits{
			name:        name,
			baseIndex:   baseIndex,
			width:       1,
			description: description,
		},
		defaultValue: defaultValue,
	}, nil
}

func (f *Bit) DefaultValueStr() string {
	return f.defaultValue
}

func (f *Bit) DefaultValueUint() uint64 {
	if f.defaultValue == "1" {
		return 1
	}

	return 0
}

func (f *Bit) GetValue(registerValue uint64) (float64, error) {
	return float64(f.extract(registerValue)), nil
}

func (f *Bit) SetValue(fieldValue float64) (uint64, error) {
	if fieldValue != math.Trunc(fieldValue) || fieldValue < 0 || fieldValue > 1 {
		return 0, utils.MakeError(ErrRange, "value %v is invalid for bit field %q", fieldValue, f.name)
	}

	return uint64(fieldValue) << f.baseIndex, nil
}

func (f *Bit) String() string {
	return fmt.Sprintf("bit %v (bit %v)", f.name, f.RangeStr())
}

func (f *Bit) clone() RegisterField {
	copied := *f
	return &copied
}

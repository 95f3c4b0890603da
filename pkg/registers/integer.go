package registers

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hdlkit/regmap/pkg/utils"
)

// Integer is a register field holding an integer value within an inclusive
// [min, max] range. The field occupies the minimum number of bits needed to
// cover the range, using two's complement representation when the range
// extends below zero.
type Integer struct {
	fieldBits
	minValue     int64
	maxValue     int64
	defaultValue int64
	defaultUint  uint64
	numeric      FieldType
}

// Returns the minimum number of bits needed to represent every value of the
// inclusive [minValue, maxValue] range, in two's complement when minValue is
// negative. Returns 0 when no width up to RegisterWidth covers the range.
func bitWidthOfRange(minValue int64, maxValue int64) int {
	for width := 1; width <= RegisterWidth; width++ {
		var low, high int64

		if minValue < 0 {
			low = -(int64(1) << (width - 1))
			high = int64(1)<<(width-1) - 1
		} else {
			low = 0
			high = int64(utils.AllOnes[uint64](width))
		}

		if low <= minValue && maxValue <= high {
			return width
		}
	}

	return 0
}

func newInteger(
	name string,
	baseIndex int,
	description string,
	minValue int64,
	maxValue int64,
	defaultValue int64,
) (*Integer, error) {
	if maxValue < minValue {
		return nil, utils.MakeError(ErrRange,
			"integer field %q has max_value %v smaller than min_value %v", name, maxValue, minValue)
	}

	width := bitWidthOfRange(minValue, maxValue)

	if width == 0 {
		return nil, utils.MakeError(ErrConsistency,
			"integer field %q range [%v, %v] does not fit in %v bits", name, minValue, maxValue, RegisterWidth)
	}

	var numeric FieldType
	var err error

	if minValue < 0 {
		numeric, err = NewSigned(width)
	} else {
		numeric, err = NewUnsigned(width)
	}

	if err != nil {
		return nil, fmt.Errorf("integer field %q: %w", name, err)
	}

	if defaultValue < minValue || defaultValue > maxValue {
		return nil, utils.MakeError(ErrRange,
			"integer field %q has default value %v outside of range [%v, %v]",
			name, defaultValue, minValue, maxValue)
	}

	defaultUint, err := numeric.Encode(float64(defaultValue))

	if err != nil {
		return nil, fmt.Errorf("integer field %q: %w", name, err)
	}

	return &Integer{
		fieldBits: fieldBits{
			name:        name,
			baseIndex:   baseIndex,
			width:       width,
			description: description,
		},
		minValue:     minValue,
		maxValue:     maxValue,
		defaultValue: defaultValue,
		defaultUint:  defaultUint,
		numeric:      numeric,
	}, nil
}

// Returns the smallest legal value of the field
func (f *Integer) MinValue() int64 {
	return f.minValue
}

// Returns the biggest legal value of the field
func (f *Integer) MaxValue() int64 {
	return f.maxValue
}

func (f *Integer) DefaultValueStr() string {
	return strconv.FormatInt(f.defaultValue, 10)
}

func (f *Integer) DefaultValueUint() uint64 {
	return f.defaultUint
}

func (f *Integer) GetValue(registerValue uint64) (float64, error) {
	value := f.numeric.Decode(f.extract(registerValue))

	if value < float64(f.minValue) || value > float64(f.maxValue) {
		return 0, utils.MakeError(ErrRange,
			"register value 0x%X decodes to %v, outside of integer field %q range [%v, %v]",
			registerValue, value, f.name, f.minValue, f.maxValue)
	}

	return value, nil
}

func (f *Integer) SetValue(fieldValue float64) (uint64, error) {
	if fieldValue != math.Trunc(fieldValue) ||
		fieldValue < float64(f.minValue) || fieldValue > float64(f.maxValue) {
		return 0, utils.MakeError(ErrRange,
			"value %v is invalid for integer field %q of range [%v, %v]",
			fieldValue, f.name, f.minValue, f.maxValue)
	}

	raw, err := f.numeric.Encode(fieldValue)

	if err != nil {
		return 0, fmt.Errorf("integer field %q: %w", f.name, err)
	}

	return raw << f.baseIndex, nil
}

func (f *Integer) String() string {
	return fmt.Sprintf("integer %v (bits %v, range [%v, %v])", f.name, f.RangeStr(), f.minValue, f.maxValue)
}

func (f *Integer) clone() RegisterField {
	copied := *f
	return &copied
}

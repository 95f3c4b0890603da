package registers

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/hdlkit/regmap/pkg/utils"
)

// BitVector is a multi bit register field. Without a field type its value is
// the plain unsigned integer formed by its bits; with a field type attached
// the raw bits are interpreted through that type's numeric policy.
type BitVector struct {
	fieldBits
	defaultValue string
	defaultUint  uint64
	fieldType    FieldType
}

func newBitVector(
	name string,
	baseIndex int,
	width int,
	description string,
	defaultValue string,
	fieldType FieldType,
) (*BitVector, error) {
	if width < 1 || width > RegisterWidth {
		return nil, utils.MakeError(ErrRange,
			"bit vector field %q has invalid width %v, must be within [1, %v]", name, width, RegisterWidth)
	}

	if fieldType != nil && fieldType.Width() != width {
		return nil, utils.MakeError(ErrConsistency,
			"field type of bit vector %q covers %v bits but the field is %v bits wide",
			name, fieldType.Width(), width)
	}

	if len(defaultValue) != width || strings.Trim(defaultValue, "01") != "" {
		return nil, utils.MakeError(ErrRange,
			"bit vector field %q has invalid default value %q, must be a bit pattern of %v characters",
			name, defaultValue, width)
	}

	defaultUint, err := strconv.ParseUint(defaultValue, 2, 64)

	if err != nil {
		return nil, utils.MakeError(ErrRange,
			"bit vector field %q has invalid default value %q: %v", name, defaultValue, err)
	}

	return &BitVector{
		fieldBits: fieldBits{
			name:        name,
			baseIndex:   baseIndex,
			width:       width,
			description: description,
		},
		defaultValue: defaultValue,
		defaultUint:  defaultUint,
		fieldType:    fieldType,
	}, nil
}

// FieldType returns the numeric policy attached to this field, or nil when
// the field holds plain unsigned bits
func (f *BitVector) FieldType() FieldType {
	return f.fieldType
}

func (f *BitVector) DefaultValueStr() string {
	if f.fieldType != nil {
		return f.fieldType.FormatValue(f.fieldType.Decode(f.defaultUint))
	}

	return "0b" + f.defaultValue
}

func (f *BitVector) DefaultValueUint() uint64 {
	return f.defaultUint
}

func (f *BitVector) GetValue(registerValue uint64) (float64, error) {
	raw := f.extract(registerValue)

	if f.fieldType != nil {
		return f.fieldType.Decode(raw), nil
	}

	return float64(raw), nil
}

func (f *BitVector) SetValue(fieldValue float64) (uint64, error) {
	if f.fieldType != nil {
		raw, err := f.fieldType.Encode(fieldValue)

		if err != nil {
			return 0, fmt.Errorf("bit vector field %q: %w", f.name, err)
		}

		return raw << f.baseIndex, nil
	}

	maxValue := float64(utils.AllOnes[uint64](f.width))

	if fieldValue != math.Trunc(fieldValue) || fieldValue < 0 || fieldValue > maxValue {
		return 0, utils.MakeError(ErrRange,
			"value %v is invalid for unsigned of width %v in bit vector field %q", fieldValue, f.width, f.name)
	}

	return uint64(fieldValue) << f.baseIndex, nil
}

func (f *BitVector) String() string {
	return fmt.Sprintf("bit vector %v (bits %v)", f.name, f.RangeStr())
}

func (f *BitVector) clone() RegisterField {
	copied := *f
	return &copied
}

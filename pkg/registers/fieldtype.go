package registers

import (
	"math"
	"strconv"

	"github.com/hdlkit/regmap/pkg/utils"
)

// FieldType converts between a field's local numeric domain and the raw
// unsigned bit pattern of a fixed width that is stored in the register.
type FieldType interface {
	// Width returns the number of raw bits covered by values of this type
	Width() int

	// MinValue returns the smallest value encodable by this type
	MinValue() float64

	// MaxValue returns the biggest value encodable by this type
	MaxValue() float64

	// Encode converts a field value into its raw unsigned bit pattern.
	// Values outside of [MinValue, MaxValue], or values that are not exactly
	// representable with this type's resolution, yield a range error.
	Encode(value float64) (uint64, error)

	// Decode converts a raw unsigned bit pattern into the field value
	Decode(raw uint64) float64

	// FormatValue formats a field value the way it shall appear in documentation
	FormatValue(value float64) string
}

// Unsigned is the identity field type: raw bit patterns are interpreted as
// plain unsigned integers
type Unsigned struct {
	width int
}

// Creates an unsigned field type of the given bit width
func NewUnsigned(width int) (*Unsigned, error) {
	if width < 1 || width > RegisterWidth {
		return nil, utils.MakeError(ErrConsistency, "unsigned field type width %v outside of [1, %v]", width, RegisterWidth)
	}

	return &Unsigned{width: width}, nil
}

func (t *Unsigned) Width() int {
	return t.width
}

func (t *Unsigned) MinValue() float64 {
	return 0
}

func (t *Unsigned) MaxValue() float64 {
	return float64(utils.AllOnes[uint64](t.width))
}

func (t *Unsigned) Encode(value float64) (uint64, error) {
	if value != math.Trunc(value) || value < t.MinValue() || value > t.MaxValue() {
		return 0, utils.MakeError(ErrRange, "value %v is invalid for unsigned of width %v", t.FormatValue(value), t.width)
	}

	return uint64(value), nil
}

func (t *Unsigned) Decode(raw uint64) float64 {
	return float64(raw)
}

func (t *Unsigned) FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// Signed interprets raw bit patterns as two's complement signed integers
type Signed struct {
	width int
}

// Creates a two's complement signed field type of the given bit width
func NewSigned(width int) (*Signed, error) {
	if width < 1 || width > RegisterWidth {
		return nil, utils.MakeError(ErrConsistency, "signed field type width %v outside of [1, %v]", width, RegisterWidth)
	}

	return &Signed{width: width}, nil
}

func (t *Signed) Width() int {
	return t.width
}

func (t *Signed) MinValue() float64 {
	return -math.Exp2(float64(t.width - 1))
}

func (t *Signed) MaxValue() float64 {
	return math.Exp2(float64(t.width-1)) - 1
}

func (t *Signed) Encode(value float64) (uint64, error) {
	if value != math.Trunc(value) || value < t.MinValue() || value > t.MaxValue() {
		return 0, utils.MakeError(ErrRange, "value %v is invalid for signed of width %v", t.FormatValue(value), t.width)
	}

	return uint64(int64(value)) & utils.AllOnes[uint64](t.width), nil
}

func (t *Signed) Decode(raw uint64) float64 {
	signBit := uint64(1) << (t.width - 1)

	if raw&signBit != 0 {
		return float64(int64(raw) - (int64(1) << t.width))
	}

	return float64(raw)
}

func (t *Signed) FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// UnsignedFixedPoint interprets raw bit patterns as unsigned fixed point
// numbers. The value of the lowest raw bit is 2^fractionalBits, so negative
// fractionalBits place the binary point inside the field while positive
// fractionalBits scale the field up.
type UnsignedFixedPoint struct {
	raw            Unsigned
	integerBits    int
	fractionalBits int
}

// Creates an unsigned fixed point field type covering bit weights
// 2^fractionalBits up to 2^(integerBits - 1). The raw width is
// integerBits - fractionalBits, which must fit a register field.
func NewUnsignedFixedPoint(integerBits int, fractionalBits int) (*UnsignedFixedPoint, error) {
	width := integerBits - fractionalBits

	if width < 1 || width > RegisterWidth {
		return nil, utils.MakeError(ErrConsistency,
			"unsigned fixed point width integer_bits - fractional_bits = %v - %v = %v outside of [1, %v]",
			integerBits, fractionalBits, width, RegisterWidth)
	}

	return &UnsignedFixedPoint{
		raw:            Unsigned{width: width},
		integerBits:    integerBits,
		fractionalBits: fractionalBits,
	}, nil
}

func (t *UnsignedFixedPoint) Width() int {
	return t.raw.Width()
}

// Returns the number of bits with weight 2^0 or higher
func (t *UnsignedFixedPoint) IntegerBits() int {
	return t.integerBits
}

// Returns the weight exponent of the lowest bit
func (t *UnsignedFixedPoint) FractionalBits() int {
	return t.fractionalBits
}

func (t *UnsignedFixedPoint) MinValue() float64 {
	return 0
}

func (t *UnsignedFixedPoint) MaxValue() float64 {
	return math.Ldexp(t.raw.MaxValue(), t.fractionalBits)
}

func (t *UnsignedFixedPoint) Encode(value float64) (uint64, error) {
	unscaled := math.Ldexp(value, -t.fractionalBits)

	if unscaled != math.Trunc(unscaled) || unscaled < t.raw.MinValue() || unscaled > t.raw.MaxValue() {
		return 0, utils.MakeError(ErrRange,
			"value %v is invalid for unsigned fixed point of %v integer and %v fractional bits",
			t.FormatValue(value), t.integerBits, t.fractionalBits)
	}

	return uint64(unscaled), nil
}

func (t *UnsignedFixedPoint) Decode(raw uint64) float64 {
	return math.Ldexp(t.raw.Decode(raw), t.fractionalBits)
}

func (t *UnsignedFixedPoint) FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// SignedFixedPoint interprets raw bit patterns as two's complement fixed
// point numbers, with the same bit weight convention as UnsignedFixedPoint
type SignedFixedPoint struct {
	raw            Signed
	integerBits    int
	fractionalBits int
}

// Creates a signed fixed point field type covering bit weights
// 2^fractionalBits up to 2^(integerBits - 1), the highest carrying the sign.
// The raw width is integerBits - fractionalBits, which must fit a register
// field.
func NewSignedFixedPoint(integerBits int, fractionalBits int) (*SignedFixedPoint, error) {
	width := integerBits - fractionalBits

	if width < 1 || width > RegisterWidth {
		return nil, utils.MakeError(ErrConsistency,
			"signed fixed point width integer_bits - fractional_bits = %v - %v = %v outside of [1, %v]",
			integerBits, fractionalBits, width, RegisterWidth)
	}

	return &SignedFixedPoint{
		raw:            Signed{width: width},
		integerBits:    integerBits,
		fractionalBits: fractionalBits,
	}, nil
}

func (t *SignedFixedPoint) Width() int {
	return t.raw.Width()
}

// Returns the number of bits with weight 2^0 or higher, including the sign bit
func (t *SignedFixedPoint) IntegerBits() int {
	return t.integerBits
}

// Returns the weight exponent of the lowest bit
func (t *SignedFixedPoint) FractionalBits() int {
	return t.fractionalBits
}

func (t *SignedFixedPoint) MinValue() float64 {
	return math.Ldexp(t.raw.MinValue(), t.fractionalBits)
}

func (t *SignedFixedPoint) MaxValue() float64 {
	return math.Ldexp(t.raw.MaxValue(), t.fractionalBits)
}

func (t *SignedFixedPoint) Encode(value float64) (uint64, error) {
	unscaled := math.Ldexp(value, -t.fractionalBits)

	if unscaled != math.Trunc(unscaled) || unscaled < t.raw.MinValue() || unscaled > t.raw.MaxValue() {
		return 0, utils.MakeError(ErrRange,
			"value %v is invalid for signed fixed point of %v integer and %v fractional bits",
			t.FormatValue(value), t.integerBits, t.fractionalBits)
	}

	return t.raw.Encode(unscaled)
}

func (t *SignedFixedPoint) Decode(raw uint64) float64 {
	return math.Ldexp(t.raw.Decode(raw), t.fractionalBits)
}

func (t *SignedFixedPoint) FormatValue(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

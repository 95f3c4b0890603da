package registers

import (
	"fmt"

	"github.com/hdlkit/regmap/pkg/utils"
)

// RegisterWidth is the number of bits of one addressable register word
const RegisterWidth = 32

// RegisterItem is one top-level entry of a register list: either a plain
// Register or a RegisterArray. The order of items within a list is the
// generated memory layout order.
type RegisterItem interface {
	Name() string

	Description() string

	// Index returns the word index of the last register slot occupied by
	// this item within its register list
	Index() int
}

// Register is an addressable unit of the register map, composed of an
// ordered sequence of fields. Fields are allocated bottom up: each appended
// field starts at the register's cumulative bit count.
type Register struct {
	name        string
	mode        Mode
	description string
	index       int
	fields      []RegisterField
	bitIndex    int
}

// Creates a standalone register, e.g. for use in a default register list.
// The register's word index is assigned when it is appended to a register
// list.
func NewRegister(name string, mode Mode, description string) *Register {
	return &Register{
		name:        name,
		mode:        mode,
		description: description,
	}
}

// Returns the register name, unique within its register list or array
func (r *Register) Name() string {
	return r.name
}

// Returns the register access mode
func (r *Register) Mode() Mode {
	return r.mode
}

// Returns the register description (for documentation)
func (r *Register) Description() string {
	return r.description
}

// Index returns the word index of this register: within its register list
// for a plain register, within the array template for an array register
func (r *Register) Index() int {
	return r.index
}

// Returns the ordered fields of the register. Insertion order is bit layout
// order, lowest bits first.
func (r *Register) Fields() []RegisterField {
	return r.fields
}

// Returns the number of bits currently allocated to fields. The next
// appended field starts at this index.
func (r *Register) BitCount() int {
	return r.bitIndex
}

// DefaultValue returns the raw register value with every field at its
// default, the reset value of the register
func (r *Register) DefaultValue() uint64 {
	var value uint64
	view := utils.CreateBitView(&value)

	for _, field := range r.fields {
		view.Write(field.DefaultValueUint(), field.BaseIndex(), field.Width())
	}

	return value
}

func (r *Register) checkNewField(name string, width int) error {
	for _, field := range r.fields {
		if field.Name() == name {
			return utils.MakeError(ErrReference, "register %q already has a field named %q", r.name, name)
		}
	}

	if r.bitIndex+width > RegisterWidth {
		return utils.MakeError(ErrConsistency,
			"appending field %q of width %v to register %q exceeds the %v bit register width",
			name, width, r.name, RegisterWidth)
	}

	return nil
}

// AppendBit adds a one bit field after the register's last allocated bit.
// The default value must be the literal "0" or "1".
func (r *Register) AppendBit(name string, description string, defaultValue string) (*Bit, error) {
	if err := r.checkNewField(name, 1); err != nil {
		return nil, err
	}

	field, err := newBit(name, r.bitIndex, description, defaultValue)

	if err != nil {
		return nil, err
	}

	r.fields = append(r.fields, field)
	r.bitIndex += field.Width()

	return field, nil
}

// AppendBitVector adds a field of the given width after the register's last
// allocated bit. The default value must be a bit pattern of exactly width
// characters. A nil fieldType leaves the field as plain unsigned bits; a non
// nil fieldType must cover exactly width bits.
func (r *Register) AppendBitVector(
	name string,
	description string,
	width int,
	defaultValue string,
	fieldType FieldType,
) (*BitVector, error) {
	if err := r.checkNewField(name, width); err != nil {
		return nil, err
	}

	field, err := newBitVector(name, r.bitIndex, width, description, defaultValue, fieldType)

	if err != nil {
		return nil, err
	}

	r.fields = append(r.fields, field)
	r.bitIndex += field.Width()

	return field, nil
}

// AppendInteger adds an integer field covering [minValue, maxValue] after
// the register's last allocated bit. The field occupies the minimum number
// of bits needed for the range.
func (r *Register) AppendInteger(
	name string,
	description string,
	minValue int64,
	maxValue int64,
	defaultValue int64,
) (*Integer, error) {
	width := bitWidthOfRange(minValue, maxValue)

	if err := r.checkNewField(name, width); err != nil {
		return nil, err
	}

	field, err := newInteger(name, r.bitIndex, description, minValue, maxValue, defaultValue)

	if err != nil {
		return nil, err
	}

	r.fields = append(r.fields, field)
	r.bitIndex += field.Width()

	return field, nil
}

func (r *Register) String() string {
	return fmt.Sprintf("register %v (%v, %v fields)", r.name, r.mode, len(r.fields))
}

// Deep copy. The copy shares no mutable state with the original.
func (r *Register) clone() *Register {
	copied := *r
	copied.fields = utils.Map(r.fields, func(field RegisterField) RegisterField {
		return field.clone()
	})

	return &copied
}

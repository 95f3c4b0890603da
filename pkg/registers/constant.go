package registers

import (
	"fmt"
	"regexp"

	"github.com/hdlkit/regmap/pkg/utils"
)

// ConstantType is the type of a constant's value
type ConstantType uint

const (
	ConstantType_Integer ConstantType = iota
	ConstantType_Boolean
	ConstantType_Float
	ConstantType_String
)

func (t ConstantType) String() string {
	switch t {
	case ConstantType_Integer:
		return "integer"
	case ConstantType_Boolean:
		return "boolean"
	case ConstantType_Float:
		return "float"
	case ConstantType_String:
		return "string"
	}

	panic("unreachable")
}

// StringDataType restricts the allowed values of a string constant and tells
// generators how to render it
type StringDataType uint

const (
	// Plain string, no restrictions
	StringDataType_None StringDataType = iota
	// Filesystem path
	StringDataType_Path
	// Unsigned vector bit pattern literal, e.g. "0b1010" or "0xff"
	StringDataType_UnsignedVector
)

var stringDataTypes = map[StringDataType]string{
	StringDataType_Path:           "path",
	StringDataType_UnsignedVector: "unsigned_vector",
}

var stringDataTypesByKey = utils.GenMap(utils.Keys(stringDataTypes),
	func(t StringDataType) string { return stringDataTypes[t] })

// Returns the data type key used in register definition documents
func (t StringDataType) Key() string {
	if key, hasKey := stringDataTypes[t]; hasKey {
		return key
	}

	panic("unreachable")
}

// Resolves a register definition document data type key against the closed
// set of string data types
func StringDataTypeFromKey(key string) (StringDataType, error) {
	if dataType, hasDataType := stringDataTypesByKey[key]; hasDataType {
		return dataType, nil
	}

	return 0, utils.MakeError(ErrSchema, "invalid data type %q", key)
}

var unsignedVectorPattern = regexp.MustCompile(`^(0b[01_]+|0x[0-9a-fA-F_]+)$`)

// Constant is a named value outside of the register address space, exposed
// to generated artifacts. Immutable once created.
type Constant struct {
	name        string
	value       any
	valueType   ConstantType
	description string
	dataType    StringDataType
}

// Creates a constant. The value must be an int64, bool, float64 or string.
// A data type other than StringDataType_None is only legal for string
// values, and for StringDataType_UnsignedVector the value must be a "0b" or
// "0x" literal.
func NewConstant(name string, value any, description string, dataType StringDataType) (*Constant, error) {
	var valueType ConstantType

	switch v := value.(type) {
	case int64:
		valueType = ConstantType_Integer
	case bool:
		valueType = ConstantType_Boolean
	case float64:
		valueType = ConstantType_Float
	case string:
		valueType = ConstantType_String

		if dataType == StringDataType_UnsignedVector && !unsignedVectorPattern.MatchString(v) {
			return nil, utils.MakeError(ErrRange,
				"constant %q value %q is not a valid unsigned vector literal", name, v)
		}
	default:
		return nil, utils.MakeError(ErrSchema,
			"constant %q has unsupported value type %T", name, value)
	}

	if dataType != StringDataType_None && valueType != ConstantType_String {
		return nil, utils.MakeError(ErrSchema,
			`may not set "data_type" for non-string constant %q`, name)
	}

	return &Constant{
		name:        name,
		value:       value,
		valueType:   valueType,
		description: description,
		dataType:    dataType,
	}, nil
}

// Returns the constant name, unique among the constants of its register list
func (c *Constant) Name() string {
	return c.name
}

// Returns the constant value as one of int64, bool, float64 or string
func (c *Constant) Value() any {
	return c.value
}

// Returns the type of the constant value
func (c *Constant) Type() ConstantType {
	return c.valueType
}

// Returns the constant description (for documentation)
func (c *Constant) Description() string {
	return c.description
}

// Returns the string data type tag, StringDataType_None for untyped and
// non-string constants
func (c *Constant) DataType() StringDataType {
	return c.dataType
}

// Returns the value of an integer constant
func (c *Constant) IntValue() int64 {
	return c.value.(int64)
}

// Returns the value of a boolean constant
func (c *Constant) BoolValue() bool {
	return c.value.(bool)
}

// Returns the value of a float constant
func (c *Constant) FloatValue() float64 {
	return c.value.(float64)
}

// Returns the value of a string constant
func (c *Constant) StringValue() string {
	return c.value.(string)
}

func (c *Constant) String() string {
	return fmt.Sprintf("constant %v = %v (%v)", c.name, c.value, c.valueType)
}

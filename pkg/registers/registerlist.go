package registers

import (
	"fmt"

	"github.com/hdlkit/regmap/pkg/utils"
)

// RegisterList is the in-memory model of one hardware module's register map:
// the ordered registers and register arrays of the module, plus its ordered
// constants. After parsing the model is read-only to all consumers.
//
// Registers and arrays share one name namespace; constants have their own.
type RegisterList struct {
	name      string
	source    string
	items     []RegisterItem
	constants []*Constant
}

// Creates an empty register list for the given module. The source reference
// (typically the definition file path) is included in diagnostics.
func NewRegisterList(name string, source string) *RegisterList {
	return &RegisterList{
		name:   name,
		source: source,
	}
}

// Returns the module name
func (l *RegisterList) Name() string {
	return l.name
}

// Returns the source reference used in diagnostics
func (l *RegisterList) Source() string {
	return l.source
}

// Returns the ordered top-level items. The order is the generated memory
// layout order.
func (l *RegisterList) Items() []RegisterItem {
	return l.items
}

// Returns the ordered constants
func (l *RegisterList) Constants() []*Constant {
	return l.constants
}

func (l *RegisterList) itemByName(name string) RegisterItem {
	for _, item := range l.items {
		if item.Name() == name {
			return item
		}
	}

	return nil
}

func (l *RegisterList) nextIndex() int {
	if len(l.items) == 0 {
		return 0
	}

	return l.items[len(l.items)-1].Index() + 1
}

// AppendRegister adds an empty register at the next free word index.
// Registers and register arrays share one namespace, so the name must be
// free among all top-level items.
func (l *RegisterList) AppendRegister(name string, mode Mode, description string) (*Register, error) {
	if l.itemByName(name) != nil {
		return nil, utils.MakeError(ErrReference, "duplicate name %q in %s", name, l.source)
	}

	register := &Register{
		name:        name,
		mode:        mode,
		description: description,
		index:       l.nextIndex(),
	}

	l.items = append(l.items, register)

	return register, nil
}

// AppendRegisterArray adds an empty register array of the given length at
// the next free word index. Registers for the array template are appended
// through the array's own AppendRegister.
func (l *RegisterList) AppendRegisterArray(name string, length int, description string) (*RegisterArray, error) {
	if l.itemByName(name) != nil {
		return nil, utils.MakeError(ErrReference, "duplicate name %q in %s", name, l.source)
	}

	if length < 1 {
		return nil, utils.MakeError(ErrRange,
			"register array %q in %s must have a positive array_length, got %v", name, l.source, length)
	}

	array := &RegisterArray{
		name:        name,
		length:      length,
		description: description,
		baseIndex:   l.nextIndex(),
	}

	l.items = append(l.items, array)

	return array, nil
}

// GetRegister returns the plain register with the given name. Used to merge
// definitions into a default register.
func (l *RegisterList) GetRegister(name string) (*Register, error) {
	item := l.itemByName(name)

	if register, isRegister := item.(*Register); isRegister {
		return register, nil
	}

	return nil, utils.MakeError(ErrReference, "%s does not have a register named %q", l.source, name)
}

// AddConstant adds a constant. Constant names form their own namespace,
// separate from registers and arrays.
func (l *RegisterList) AddConstant(name string, value any, description string, dataType StringDataType) (*Constant, error) {
	for _, constant := range l.constants {
		if constant.Name() == name {
			return nil, utils.MakeError(ErrReference, "duplicate constant name %q in %s", name, l.source)
		}
	}

	constant, err := NewConstant(name, value, description, dataType)

	if err != nil {
		return nil, fmt.Errorf("error while parsing %s: %w", l.source, err)
	}

	l.constants = append(l.constants, constant)

	return constant, nil
}

// GetConstant returns the constant with the given name
func (l *RegisterList) GetConstant(name string) (*Constant, error) {
	for _, constant := range l.constants {
		if constant.Name() == name {
			return constant, nil
		}
	}

	return nil, utils.MakeError(ErrReference, "%s does not have a constant named %q", l.source, name)
}

// Seeds the list with deep copies of the given default registers, assigning
// consecutive word indexes. The caller's registers are never mutated by
// anything that later happens to this list.
func (l *RegisterList) seedDefaultRegisters(defaultRegisters []*Register) {
	for _, register := range defaultRegisters {
		copied := register.clone()
		copied.index = l.nextIndex()
		l.items = append(l.items, copied)
	}
}

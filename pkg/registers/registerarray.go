package registers

import (
	"fmt"

	"github.com/hdlkit/regmap/pkg/utils"
)

// RegisterArray is a named, fixed-length repetition of a block of registers.
// The registers are stored once as a template; every repetition shares the
// same layout.
type RegisterArray struct {
	name        string
	length      int
	description string
	baseIndex   int
	registers   []*Register
}

// Returns the array name, unique among the top-level items of its register
// list
func (a *RegisterArray) Name() string {
	return a.name
}

// Returns the array description (for documentation)
func (a *RegisterArray) Description() string {
	return a.description
}

// Returns the number of repetitions of the register block
func (a *RegisterArray) Length() int {
	return a.length
}

// Returns the ordered template registers shared by every repetition
func (a *RegisterArray) Registers() []*Register {
	return a.registers
}

// BaseIndex returns the word index of the first register of the first
// repetition within the register list
func (a *RegisterArray) BaseIndex() int {
	return a.baseIndex
}

// Index returns the word index of the last register slot occupied by the
// array within its register list
func (a *RegisterArray) Index() int {
	return a.baseIndex + a.length*len(a.registers) - 1
}

// StartIndex returns the word index of the first register of the given
// repetition
func (a *RegisterArray) StartIndex(arrayIndex int) int {
	return a.baseIndex + arrayIndex*len(a.registers)
}

// AppendRegister adds a register to the array template, repeated in every
// repetition of the array
func (a *RegisterArray) AppendRegister(name string, mode Mode, description string) (*Register, error) {
	for _, register := range a.registers {
		if register.Name() == name {
			return nil, utils.MakeError(ErrReference,
				"register array %q already has a register named %q", a.name, name)
		}
	}

	register := &Register{
		name:        name,
		mode:        mode,
		description: description,
		index:       len(a.registers),
	}

	a.registers = append(a.registers, register)

	return register, nil
}

func (a *RegisterArray) String() string {
	return fmt.Sprintf("register array %v (length %v, %v registers)", a.name, a.length, len(a.registers))
}

// Deep copy. The copy shares no mutable state with the original.
func (a *RegisterArray) clone() *RegisterArray {
	copied := *a
	copied.registers = utils.Map(a.registers, func(register *Register) *Register {
		return register.clone()
	})

	return &copied
}

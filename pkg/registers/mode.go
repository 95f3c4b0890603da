package registers

import (
	"sort"

	"github.com/hdlkit/regmap/pkg/utils"
)

// Mode is a register's access policy, as seen from the software side of the
// register bus
type Mode uint

const (
	// Bus can read a value that hardware provides
	Mode_Read Mode = iota
	// Bus can write a value that hardware utilizes
	Mode_Write
	// Bus can both read and write the value
	Mode_ReadWrite
	// Bus can write a value that is asserted for one clock cycle only
	Mode_WritePulse
	// Bus can read, and write a value that is asserted for one clock cycle only
	Mode_ReadWritePulse

	// Total modes implemented
	TOTAL_MODES
)

// Describes one register access mode
type ModeDescriptor struct {
	// Mode key used in register definition documents
	Key string

	// Mode description (for documentation)
	Description string
}

var modes = map[Mode]*ModeDescriptor{
	Mode_Read:           {Key: "r", Description: "Bus can read a value that hardware provides"},
	Mode_Write:          {Key: "w", Description: "Bus can write a value that hardware utilizes"},
	Mode_ReadWrite:      {Key: "r_w", Description: "Bus can read the value and write the value that hardware utilizes"},
	Mode_WritePulse:     {Key: "wpulse", Description: "Bus can write a value that is asserted for one clock cycle"},
	Mode_ReadWritePulse: {Key: "r_wpulse", Description: "Bus can read the value and write a value that is asserted for one clock cycle"},
}

var modesByKey = utils.GenMap(utils.Keys(modes), func(m Mode) string { return modes[m].Key })

// Returns the descriptor of the mode
func (m Mode) Descriptor() *ModeDescriptor {
	if descriptor, hasDescriptor := modes[m]; hasDescriptor {
		return descriptor
	}

	panic("unreachable")
}

// Returns the mode key used in register definition documents
func (m Mode) Key() string {
	return m.Descriptor().Key
}

func (m Mode) String() string {
	return m.Key()
}

// Returns whether software can read registers of this mode
func (m Mode) IsReadable() bool {
	return m == Mode_Read || m == Mode_ReadWrite || m == Mode_ReadWritePulse
}

// Returns whether software can write registers of this mode
func (m Mode) IsWriteable() bool {
	return m != Mode_Read
}

// Returns all implemented modes, ordered for stable documentation output
func AllModes() []Mode {
	all := utils.Keys(modes)
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	return all
}

// Resolves a register definition document mode key against the closed set of
// implemented modes
func ModeFromKey(key string) (Mode, error) {
	if mode, hasMode := modesByKey[key]; hasMode {
		return mode, nil
	}

	return 0, utils.MakeError(ErrSchema, "unknown register mode %q", key)
}

// Package generators contains helpers shared by all register artifact
// generators. Generators consume a parsed register list strictly through its
// read-only surface.
package generators

import (
	"fmt"

	"github.com/hdlkit/regmap/pkg/registers"
)

// RegisterRef is one register of a register list together with the array
// that contains it. Array is nil for plain registers.
type RegisterRef struct {
	Register *registers.Register
	Array    *registers.RegisterArray
}

// IterateRegisters returns every register of the list in memory layout
// order, array template registers included once each
func IterateRegisters(list *registers.RegisterList) []RegisterRef {
	var refs []RegisterRef

	for _, item := range list.Items() {
		switch typed := item.(type) {
		case *registers.Register:
			refs = append(refs, RegisterRef{Register: typed})

		case *registers.RegisterArray:
			for _, register := range typed.Registers() {
				refs = append(refs, RegisterRef{Register: register, Array: typed})
			}
		}
	}

	return refs
}

// QualifiedName returns the generated artifact name of a register:
// module_register, or module_array_register for array registers
func (r RegisterRef) QualifiedName(moduleName string) string {
	if r.Array == nil {
		return fmt.Sprintf("%s_%s", moduleName, r.Register.Name())
	}

	return fmt.Sprintf("%s_%s_%s", moduleName, r.Array.Name(), r.Register.Name())
}

// GeneratedInfo returns the standard comment lines placed at the top of
// every generated artifact
func GeneratedInfo(source string) []string {
	info := []string{"This file is automatically generated by regmap. Do not edit."}

	if source != "" {
		info = append(info, fmt.Sprintf("Generated from %s.", source))
	}

	return info
}

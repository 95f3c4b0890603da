package registers

import (
	"path/filepath"
	"strings"

	"github.com/hdlkit/regmap/pkg/document"
	"github.com/hdlkit/regmap/pkg/utils"
)

// FromTOMLFile parses a register definition TOML file into a register list.
// Default registers, if any, are deep-copied into the produced list before
// parsing and may be extended by the file.
func FromTOMLFile(moduleName string, path string, defaultRegisters []*Register) (*RegisterList, error) {
	data, err := document.LoadTOMLFile(path)

	if err != nil {
		return nil, err
	}

	return NewRegisterParser(moduleName, path, defaultRegisters).Parse(data)
}

// FromTOML parses in-memory register definition TOML data. The source
// reference is only used in diagnostics.
func FromTOML(moduleName string, source string, data string, defaultRegisters []*Register) (*RegisterList, error) {
	parsed, err := document.LoadTOML(data)

	if err != nil {
		return nil, err
	}

	return NewRegisterParser(moduleName, source, defaultRegisters).Parse(parsed)
}

// FromYAML parses in-memory register definition YAML data, with the same
// semantics as FromTOML
func FromYAML(moduleName string, source string, data string, defaultRegisters []*Register) (*RegisterList, error) {
	parsed, err := document.LoadYAML(data)

	if err != nil {
		return nil, err
	}

	return NewRegisterParser(moduleName, source, defaultRegisters).Parse(parsed)
}

// FromYAMLFile parses a register definition YAML file into a register list,
// with the same semantics as FromTOMLFile
func FromYAMLFile(moduleName string, path string, defaultRegisters []*Register) (*RegisterList, error) {
	data, err := document.LoadYAMLFile(path)

	if err != nil {
		return nil, err
	}

	return NewRegisterParser(moduleName, path, defaultRegisters).Parse(data)
}

// FromFile parses a register definition file, dispatching on the file
// extension. ".toml", ".yaml" and ".yml" files are supported.
func FromFile(moduleName string, path string, defaultRegisters []*Register) (*RegisterList, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FromTOMLFile(moduleName, path, defaultRegisters)

	case ".yaml", ".yml":
		return FromYAMLFile(moduleName, path, defaultRegisters)
	}

	return nil, utils.MakeError(ErrSchema, "unsupported register definition file format %q", filepath.Ext(path))
}

// DefaultRegistersFromFile loads the plain registers of a register definition
// file, for use as the default registers seeded into other modules' parses
func DefaultRegistersFromFile(path string) ([]*Register, error) {
	list, err := FromFile("default", path, nil)

	if err != nil {
		return nil, err
	}

	defaults := make([]*Register, 0, len(list.Items()))

	for _, item := range list.Items() {
		register, isRegister := item.(*Register)

		if !isRegister {
			return nil, utils.MakeError(ErrSchema,
				"default register file %s may only contain plain registers, got register array %q",
				path, item.Name())
		}

		defaults = append(defaults, register)
	}

	return defaults, nil
}

// DefaultModuleName derives a module name from the path of a register
// definition file: the file stem, with any "regs_" prefix or "_regs" suffix
// stripped
func DefaultModuleName(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	stem = strings.TrimPrefix(stem, "regs_")

	return strings.TrimSuffix(stem, "_regs")
}

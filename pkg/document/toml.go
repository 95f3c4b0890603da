package document

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/hdlkit/regmap/pkg/utils"
)

// LoadTOML loads a TOML document into an ordered document tree
func LoadTOML(data string) (*Map, error) {
	var raw map[string]any

	meta, err := toml.Decode(data, &raw)

	if err != nil {
		return nil, err
	}

	return fromTOML(meta, raw)
}

// LoadTOMLFile loads a TOML file into an ordered document tree
func LoadTOMLFile(path string) (*Map, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("requested TOML file does not exist: %s", path)
	}

	var raw map[string]any

	meta, err := toml.DecodeFile(path, &raw)

	if err != nil {
		return nil, fmt.Errorf("error while parsing TOML file %s: %w", path, err)
	}

	return fromTOML(meta, raw)
}

// Rebuilds the decoded TOML data as an ordered tree. The decoded map alone
// has lost the document order, but toml.MetaData lists every key path in
// order of appearance.
func fromTOML(meta toml.MetaData, raw map[string]any) (*Map, error) {
	root := NewMap()

	for _, key := range meta.Keys() {
		node := root
		value := any(raw)

		for _, component := range key {
			table, isTable := value.(map[string]any)

			if !isTable {
				return nil, utils.MakeError(ErrInvalidDocument,
					"key %q holds both a value and a table", key.String())
			}

			value = table[component]

			if _, isTable := value.(map[string]any); isTable {
				child, err := node.ensureChild(component)

				if err != nil {
					return nil, err
				}

				node = child
				continue
			}

			scalar, err := normalizeTOMLValue(key.String(), value)

			if err != nil {
				return nil, err
			}

			node.Set(component, scalar)
		}
	}

	return root, nil
}

func normalizeTOMLValue(key string, value any) (any, error) {
	switch v := value.(type) {
	case string, bool, int64, float64:
		return v, nil
	}

	return nil, utils.MakeError(ErrInvalidDocument, "key %q holds an unsupported value type %T", key, value)
}

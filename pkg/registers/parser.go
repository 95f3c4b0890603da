package registers

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"github.com/hdlkit/regmap/pkg/document"
	"github.com/hdlkit/regmap/pkg/utils"
)

// Recognized keys of the three document tiers. Any key outside of these sets
// is a fatal schema error.
var (
	recognizedConstantKeys = map[string]bool{
		"value": true, "description": true, "data_type": true,
	}
	recognizedRegisterKeys = map[string]bool{
		"mode": true, "description": true, "bit": true, "bit_vector": true, "integer": true,
	}
	recognizedRegisterArrayKeys = map[string]bool{
		"array_length": true, "description": true, "register": true,
	}
)

// Required and recognized keys of one field kind's definition entries
type fieldKeySchema struct {
	required   []string
	recognized map[string]bool
}

var (
	bitKeys = fieldKeySchema{
		recognized: map[string]bool{"description": true, "default_value": true},
	}
	bitVectorKeys = fieldKeySchema{
		required:   []string{"width"},
		recognized: map[string]bool{"description": true, "width": true, "default_value": true},
	}
	integerKeys = fieldKeySchema{
		required:   []string{"max_value"},
		recognized: map[string]bool{"description": true, "min_value": true, "max_value": true, "default_value": true},
	}
)

// RegisterParser builds a validated RegisterList from a register definition
// document. The document's three tiers are processed in fixed order,
// constants first, then plain registers, then register arrays, regardless of
// their order in the source. Any validation failure aborts the parse with no
// partial model.
type RegisterParser struct {
	registerList         *RegisterList
	source               string
	defaultRegisterNames map[string]bool
	namesTaken           map[string]bool
}

// Creates a parser for one module. The produced register list is pre-seeded
// with deep copies of the default registers, so the caller's list stays
// untouched and can be reused across parses.
func NewRegisterParser(moduleName string, source string, defaultRegisters []*Register) *RegisterParser {
	registerList := NewRegisterList(moduleName, source)
	registerList.seedDefaultRegisters(defaultRegisters)

	defaultRegisterNames := make(map[string]bool, len(defaultRegisters))

	for _, register := range defaultRegisters {
		defaultRegisterNames[register.Name()] = true
	}

	return &RegisterParser{
		registerList:         registerList,
		source:               source,
		defaultRegisterNames: defaultRegisterNames,
		namesTaken:           make(map[string]bool),
	}
}

// Parse builds the register list from the document data
func (p *RegisterParser) Parse(data *document.Map) (*RegisterList, error) {
	if data.Has("constant") {
		constants := data.Child("constant")

		if constants == nil {
			return nil, utils.MakeError(ErrSchema, `"constant" in %s must be a table`, p.source)
		}

		for _, name := range constants.Keys() {
			if err := p.parseConstant(name, constants.Child(name)); err != nil {
				return nil, err
			}
		}
	}

	if data.Has("register") {
		registers := data.Child("register")

		if registers == nil {
			return nil, utils.MakeError(ErrSchema, `"register" in %s must be a table`, p.source)
		}

		for _, name := range registers.Keys() {
			if err := p.parsePlainRegister(name, registers.Child(name)); err != nil {
				return nil, err
			}
		}
	}

	if data.Has("register_array") {
		arrays := data.Child("register_array")

		if arrays == nil {
			return nil, utils.MakeError(ErrSchema, `"register_array" in %s must be a table`, p.source)
		}

		for _, name := range arrays.Keys() {
			if err := p.parseRegisterArray(name, arrays.Child(name)); err != nil {
				return nil, err
			}
		}
	}

	return p.registerList, nil
}

func (p *RegisterParser) parseConstant(name string, items *document.Map) error {
	if items == nil {
		return utils.MakeError(ErrSchema, "constant %q in %s must be a table", name, p.source)
	}

	if !items.Has("value") {
		return utils.MakeError(ErrSchema, `constant %q in %s does not have "value" field`, name, p.source)
	}

	for _, key := range items.Keys() {
		if !recognizedConstantKeys[key] {
			return utils.MakeError(ErrSchema,
				"error while parsing constant %q in %s: unknown key %q", name, p.source, key)
		}
	}

	value, _ := items.Get("value")

	if _, isMap := value.(*document.Map); isMap {
		return utils.MakeError(ErrSchema,
			`error while parsing constant %q in %s: "value" must be a scalar`, name, p.source)
	}

	description, err := p.stringValue(items, "description", "", "constant %q", name)

	if err != nil {
		return err
	}

	dataType := StringDataType_None

	if items.Has("data_type") {
		dataTypeKey, err := p.stringValue(items, "data_type", "", "constant %q", name)

		if err != nil {
			return err
		}

		dataType, err = StringDataTypeFromKey(dataTypeKey)

		if err != nil {
			return fmt.Errorf("error while parsing constant %q in %s: %w", name, p.source, err)
		}
	}

	_, err = p.registerList.AddConstant(name, value, description, dataType)

	return err
}

func (p *RegisterParser) parsePlainRegister(name string, items *document.Map) error {
	if items == nil {
		return utils.MakeError(ErrSchema, "register %q in %s must be a table", name, p.source)
	}

	for _, key := range items.Keys() {
		if !recognizedRegisterKeys[key] {
			return utils.MakeError(ErrSchema,
				"error while parsing register %q in %s: unknown key %q", name, p.source, key)
		}
	}

	description, err := p.stringValue(items, "description", "", "register %q", name)

	if err != nil {
		return err
	}

	var register *Register

	if p.defaultRegisterNames[name] {
		// A default register can be updated with a custom description and
		// extended with the fields the module uses, but its mode is fixed.
		if items.Has("mode") {
			return utils.MakeError(ErrConsistency,
				`overloading register %q in %s, one can not change "mode" from default`, name, p.source)
		}

		register, err = p.registerList.GetRegister(name)

		if err != nil {
			return err
		}

		register.description = description
	} else {
		if !items.Has("mode") {
			return utils.MakeError(ErrSchema,
				`register %q in %s does not have "mode" field`, name, p.source)
		}

		mode, err := p.modeValue(items, "register %q", name)

		if err != nil {
			return err
		}

		register, err = p.registerList.AppendRegister(name, mode, description)

		if err != nil {
			return err
		}
	}

	p.namesTaken[name] = true

	return p.parseFieldGroups(register, items, registerContext(name, ""))
}

func (p *RegisterParser) parseRegisterArray(name string, items *document.Map) error {
	if items == nil {
		return utils.MakeError(ErrSchema, "register array %q in %s must be a table", name, p.source)
	}

	if p.namesTaken[name] {
		return utils.MakeError(ErrReference, "duplicate name %q in %s", name, p.source)
	}

	if !items.Has("array_length") {
		return utils.MakeError(ErrSchema,
			`register array %q in %s does not have "array_length" attribute`, name, p.source)
	}

	for _, key := range items.Keys() {
		if !recognizedRegisterArrayKeys[key] {
			return utils.MakeError(ErrSchema,
				"error while parsing register array %q in %s: unknown key %q", name, p.source, key)
		}
	}

	lengthValue, _ := items.Get("array_length")
	rawLength, isInteger := lengthValue.(int64)

	if !isInteger {
		return utils.MakeError(ErrSchema,
			`error while parsing register array %q in %s: "array_length" must be an integer`, name, p.source)
	}

	length, err := safecast.Conv[int](rawLength)

	if err != nil {
		return utils.MakeError(ErrRange,
			"register array %q in %s has invalid array_length %v", name, p.source, rawLength)
	}

	description, err := p.stringValue(items, "description", "", "register array %q", name)

	if err != nil {
		return err
	}

	array, err := p.registerList.AppendRegisterArray(name, length, description)

	if err != nil {
		return err
	}

	registers := items.Child("register")

	if registers == nil || registers.Len() == 0 {
		return utils.MakeError(ErrSchema,
			`register array %q in %s does not have any "register" defined`, name, p.source)
	}

	for _, registerName := range registers.Keys() {
		registerItems := registers.Child(registerName)

		if registerItems == nil {
			return utils.MakeError(ErrSchema,
				"register %q within array %q in %s must be a table", registerName, name, p.source)
		}

		// Array registers take no part in default register merging, so the
		// mode is always required
		if !registerItems.Has("mode") {
			return utils.MakeError(ErrSchema,
				`register %q within array %q in %s does not have "mode" field`, registerName, name, p.source)
		}

		for _, key := range registerItems.Keys() {
			if !recognizedRegisterKeys[key] {
				return utils.MakeError(ErrSchema,
					"error while parsing register %q in array %q in %s: unknown key %q",
					registerName, name, p.source, key)
			}
		}

		mode, err := p.modeValue(registerItems, "register %q in array %q", registerName, name)

		if err != nil {
			return err
		}

		registerDescription, err := p.stringValue(registerItems, "description", "",
			"register %q in array %q", registerName, name)

		if err != nil {
			return err
		}

		register, err := array.AppendRegister(registerName, mode, registerDescription)

		if err != nil {
			return err
		}

		if err := p.parseFieldGroups(register, registerItems, registerContext(registerName, name)); err != nil {
			return err
		}
	}

	return nil
}

// Parses the bit, bit_vector and integer groups of one register definition,
// in that fixed order
func (p *RegisterParser) parseFieldGroups(register *Register, items *document.Map, context string) error {
	if items.Has("bit") {
		group := items.Child("bit")

		if group == nil {
			return utils.MakeError(ErrSchema, `"bit" in %s in %s must be a table`, context, p.source)
		}

		if err := p.parseBits(register, group, context); err != nil {
			return err
		}
	}

	if items.Has("bit_vector") {
		group := items.Child("bit_vector")

		if group == nil {
			return utils.MakeError(ErrSchema, `"bit_vector" in %s in %s must be a table`, context, p.source)
		}

		if err := p.parseBitVectors(register, group, context); err != nil {
			return err
		}
	}

	if items.Has("integer") {
		group := items.Child("integer")

		if group == nil {
			return utils.MakeError(ErrSchema, `"integer" in %s in %s must be a table`, context, p.source)
		}

		if err := p.parseIntegers(register, group, context); err != nil {
			return err
		}
	}

	return nil
}

func (p *RegisterParser) parseBits(register *Register, group *document.Map, context string) error {
	for _, fieldName := range group.Keys() {
		fieldItems, err := p.checkFieldItems(group, fieldName, bitKeys, context)

		if err != nil {
			return err
		}

		description, err := p.fieldStringValue(fieldItems, "description", "", fieldName, context)

		if err != nil {
			return err
		}

		defaultValue, err := p.fieldStringValue(fieldItems, "default_value", "0", fieldName, context)

		if err != nil {
			return err
		}

		if _, err := register.AppendBit(fieldName, description, defaultValue); err != nil {
			return fmt.Errorf("error while parsing %s in %s: %w", context, p.source, err)
		}
	}

	return nil
}

func (p *RegisterParser) parseBitVectors(register *Register, group *document.Map, context string) error {
	for _, fieldName := range group.Keys() {
		fieldItems, err := p.checkFieldItems(group, fieldName, bitVectorKeys, context)

		if err != nil {
			return err
		}

		width, err := p.fieldIntValue(fieldItems, "width", 0, fieldName, context)

		if err != nil {
			return err
		}

		intWidth, err := safecast.Conv[int](width)

		if err != nil {
			return utils.MakeError(ErrRange,
				"field %q in %s in %s has invalid width %v", fieldName, context, p.source, width)
		}

		description, err := p.fieldStringValue(fieldItems, "description", "", fieldName, context)

		if err != nil {
			return err
		}

		fallback := ""
		if intWidth > 0 {
			fallback = strings.Repeat("0", intWidth)
		}

		defaultValue, err := p.fieldStringValue(fieldItems, "default_value", fallback, fieldName, context)

		if err != nil {
			return err
		}

		if _, err := register.AppendBitVector(fieldName, description, intWidth, defaultValue, nil); err != nil {
			return fmt.Errorf("error while parsing %s in %s: %w", context, p.source, err)
		}
	}

	return nil
}

func (p *RegisterParser) parseIntegers(register *Register, group *document.Map, context string) error {
	for _, fieldName := range group.Keys() {
		fieldItems, err := p.checkFieldItems(group, fieldName, integerKeys, context)

		if err != nil {
			return err
		}

		maxValue, err := p.fieldIntValue(fieldItems, "max_value", 0, fieldName, context)

		if err != nil {
			return err
		}

		minValue, err := p.fieldIntValue(fieldItems, "min_value", 0, fieldName, context)

		if err != nil {
			return err
		}

		description, err := p.fieldStringValue(fieldItems, "description", "", fieldName, context)

		if err != nil {
			return err
		}

		defaultValue, err := p.fieldIntValue(fieldItems, "default_value", minValue, fieldName, context)

		if err != nil {
			return err
		}

		if _, err := register.AppendInteger(fieldName, description, minValue, maxValue, defaultValue); err != nil {
			return fmt.Errorf("error while parsing %s in %s: %w", context, p.source, err)
		}
	}

	return nil
}

// Validates one field definition entry against its kind's key schema and
// returns the entry items
func (p *RegisterParser) checkFieldItems(
	group *document.Map,
	fieldName string,
	schema fieldKeySchema,
	context string,
) (*document.Map, error) {
	fieldItems := group.Child(fieldName)

	if fieldItems == nil {
		return nil, utils.MakeError(ErrSchema,
			"field %q in %s in %s must be a table", fieldName, context, p.source)
	}

	for _, key := range schema.required {
		if !fieldItems.Has(key) {
			return nil, utils.MakeError(ErrSchema,
				"field %q in %s in %s does not have the required %q property",
				fieldName, context, p.source, key)
		}
	}

	for _, key := range fieldItems.Keys() {
		if !schema.recognized[key] {
			return nil, utils.MakeError(ErrSchema,
				"error while parsing field %q in %s in %s: unknown key %q",
				fieldName, context, p.source, key)
		}
	}

	return fieldItems, nil
}

// Returns a human readable block reference like `register "status"` or
// `register "config" in array "channels"`
func registerContext(registerName string, arrayName string) string {
	if arrayName == "" {
		return fmt.Sprintf("register %q", registerName)
	}

	return fmt.Sprintf("register %q in array %q", registerName, arrayName)
}

func (p *RegisterParser) stringValue(
	items *document.Map,
	key string,
	fallback string,
	contextFormat string,
	contextArgs ...any,
) (string, error) {
	raw, has := items.Get(key)

	if !has {
		return fallback, nil
	}

	value, isString := raw.(string)

	if !isString {
		context := fmt.Sprintf(contextFormat, contextArgs...)
		return "", utils.MakeError(ErrSchema,
			"error while parsing %s in %s: %q must be a string", context, p.source, key)
	}

	return value, nil
}

func (p *RegisterParser) modeValue(items *document.Map, contextFormat string, contextArgs ...any) (Mode, error) {
	context := fmt.Sprintf(contextFormat, contextArgs...)

	modeKey, err := p.stringValue(items, "mode", "", contextFormat, contextArgs...)

	if err != nil {
		return 0, err
	}

	mode, err := ModeFromKey(modeKey)

	if err != nil {
		return 0, fmt.Errorf("error while parsing %s in %s: %w", context, p.source, err)
	}

	return mode, nil
}

func (p *RegisterParser) fieldStringValue(
	fieldItems *document.Map,
	key string,
	fallback string,
	fieldName string,
	context string,
) (string, error) {
	raw, has := fieldItems.Get(key)

	if !has {
		return fallback, nil
	}

	value, isString := raw.(string)

	if !isString {
		return "", utils.MakeError(ErrSchema,
			"error while parsing field %q in %s in %s: %q must be a string",
			fieldName, context, p.source, key)
	}

	return value, nil
}

func (p *RegisterParser) fieldIntValue(
	fieldItems *document.Map,
	key string,
	fallback int64,
	fieldName string,
	context string,
) (int64, error) {
	raw, has := fieldItems.Get(key)

	if !has {
		return fallback, nil
	}

	value, isInteger := raw.(int64)

	if !isInteger {
		return 0, utils.MakeError(ErrSchema,
			"error while parsing field %q in %s in %s: %q must be an integer",
			fieldName, context, p.source, key)
	}

	return value, nil
}

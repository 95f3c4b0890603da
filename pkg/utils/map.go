package utils

// Generates a map from a sequence of items and a function that generates a key from an item
func GenMap[T any, Key comparable](input []T, keyFunc func(T) Key) map[Key]T {
	output := make(map[Key]T, len(input))

	for _, value := range input {
		output[keyFunc(value)] = value
	}

	return output
}

// Returns an array with all the keys of a map
func Keys[Key comparable, Value any](input map[Key]Value) []Key {
	keys := make([]Key, 0, len(input))

	for key := range input {
		keys = append(keys, key)
	}

	return keys
}

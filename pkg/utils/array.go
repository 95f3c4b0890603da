package utils

import (
	"golang.org/x/exp/constraints"
)

// Generates a sequence constructed by applying a function to all elements of a given input sequence
func Map[T any, U any](input []T, mapFunction func(T) U) []U {
	output := make([]U, len(input))

	for i := range input {
		output[i] = mapFunction(input[i])
	}

	return output
}

// Returns the biggest item of a sequence
func Max[T constraints.Ordered](input []T) T {
	max := input[0]

	for _, item := range input {
		if item > max {
			max = item
		}
	}

	return max
}

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

// Returns the maximum value produced by applying a function to each item of a sequence
func MaxOf[T any, U constraints.Ordered](input []T, value func(T) U) U {
	var result U

	for i, item := range input {
		if v := value(item); i == 0 || v > result {
			result = v
		}
	}

	return result
}

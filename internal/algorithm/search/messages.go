package search

import "fmt"

func foundMessage(target, index int) string {
	return fmt.Sprintf("found %d at index %d", target, index)
}

func notFoundMessage(target int) string {
	return fmt.Sprintf("%d is not in the array", target)
}

func rangeExhausted(low, high int) string {
	return fmt.Sprintf(" (low %d > high %d)", low, high)
}

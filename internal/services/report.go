package services

import (
	"strings"

	"github.com/prodcalc/tracker/types"
)

const (
	totalDayHours      = 24.0
	productiveCategory = "Productive"
)

// RemainingProductiveHours reports how much of the 24-hour day is left
// after subtracting hours logged under non-productive categories.
// Productive tasks do not count against the budget. The result is not
// clamped and goes negative when non-productive hours exceed the day.
func RemainingProductiveHours(tasks []types.Task) float64 {
	var nonProductive float64
	for _, task := range tasks {
		if !strings.EqualFold(task.Category, productiveCategory) {
			nonProductive += task.Hours
		}
	}
	return totalDayHours - nonProductive
}

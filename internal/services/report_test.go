package services

import (
	"testing"

	"github.com/prodcalc/tracker/types"
	"github.com/stretchr/testify/assert"
)

func TestRemainingProductiveHours(t *testing.T) {
	tests := []struct {
		name  string
		tasks []types.Task
		want  float64
	}{
		{
			name:  "no tasks leaves the full day",
			tasks: nil,
			want:  24,
		},
		{
			name: "productive tasks do not count against the budget",
			tasks: []types.Task{
				{Category: "Productive", Hours: 3.5},
				{Category: "Productive", Hours: 8},
			},
			want: 24,
		},
		{
			name: "category match is case-insensitive",
			tasks: []types.Task{
				{Category: "pRoDuCtIvE", Hours: 5},
			},
			want: 24,
		},
		{
			name: "non-productive hours are subtracted",
			tasks: []types.Task{
				{Category: "Productive", Hours: 3.5},
				{Category: "Leisure", Hours: 2},
			},
			want: 22,
		},
		{
			name: "result goes negative without clamping",
			tasks: []types.Task{
				{Category: "Leisure", Hours: 20},
				{Category: "Sleep", Hours: 10},
			},
			want: -6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RemainingProductiveHours(tt.tasks), 1e-9)
		})
	}
}

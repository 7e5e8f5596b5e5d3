package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextID(t *testing.T) {
	tests := []struct {
		name     string
		existing []int
		want     int
	}{
		{"empty", nil, 0},
		{"sequential", []int{0, 1, 2}, 3},
		{"gaps ignored", []int{0, 2, 5}, 6},
		{"unordered", []int{5, 0, 2}, 6},
		{"single", []int{7}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextID(tt.existing))
		})
	}
}

func TestNextIDNeverCollides(t *testing.T) {
	ids := []int{3, 1, 4, 1, 5}
	next := NextID(ids)
	for _, id := range ids {
		assert.NotEqual(t, id, next)
	}
}

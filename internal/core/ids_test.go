package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLastID(t *testing.T) {
	tests := []struct {
		name   string
		ids    []int
		want   int
		wantOK bool
	}{
		{name: "empty", ids: nil, want: 0, wantOK: false},
		{name: "single", ids: []int{4}, want: 4, wantOK: true},
		{name: "unordered", ids: []int{3, 7, 1}, want: 7, wantOK: true},
		{name: "negative ids", ids: []int{-5, -2, -9}, want: -2, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			people := make([]*Person, 0, len(tt.ids))
			for _, id := range tt.ids {
				people = append(people, &Person{ID: id})
			}

			got, ok := LastID(people)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, NextID([]*Person{}))
	assert.Equal(t, 8, NextID([]*Person{{ID: 3}, {ID: 7}, {ID: 1}}))
}

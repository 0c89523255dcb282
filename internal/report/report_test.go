package report

import (
	"reflect"
	"testing"
)

func TestPairImages(t *testing.T) {
	tests := []struct {
		name   string
		before []string
		after  []string
		want   []ImagePair
	}{
		{
			name:   "equal lengths",
			before: []string{"b1.jpg", "b2.jpg"},
			after:  []string{"a1.jpg", "a2.jpg"},
			want: []ImagePair{
				{Before: "b1.jpg", After: "a1.jpg"},
				{Before: "b2.jpg", After: "a2.jpg"},
			},
		},
		{
			name:   "more before than after",
			before: []string{"b1.jpg", "b2.jpg", "b3.jpg"},
			after:  []string{"a1.jpg"},
			want: []ImagePair{
				{Before: "b1.jpg", After: "a1.jpg"},
				{Before: "b2.jpg"},
				{Before: "b3.jpg"},
			},
		},
		{
			name:  "only after",
			after: []string{"a1.jpg", "a2.jpg"},
			want: []ImagePair{
				{After: "a1.jpg"},
				{After: "a2.jpg"},
			},
		},
		{
			name: "both empty",
			want: []ImagePair{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PairImages(tt.before, tt.after)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PairImages(%v, %v) = %v, want %v", tt.before, tt.after, got, tt.want)
			}
		})
	}
}

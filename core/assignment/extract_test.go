package assignment

import "testing"

func TestExtractCourseLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "numeric prefix and section",
			in:   "3-ENGR-1410-Intro to Engineering - Section A",
			want: "ENGR-1410-Intro to Engineering",
		},
		{
			name: "several numeric prefixes",
			in:   "1-2-CPSC-2120-Algorithms and Data Structures - Lab 004",
			want: "CPSC-2120-Algorithms and Data Structures",
		},
		{
			name: "three letter code",
			in:   "ENG-1030-Composition and Rhetoric - Honors",
			want: "ENG-1030-Composition and Rhetoric",
		},
		{
			name: "first separator wins",
			in:   "MATH-2060-Calculus III - Section 2 - Spring",
			want: "MATH-2060-Calculus III",
		},
		{
			name: "no trailing text before separator",
			in:   "MATH-1080 - Section 2",
			want: "MATH-1080 - Section 2",
		},
		{name: "no separator", in: "PHYS-1220-Physics with Calculus", want: "PHYS-1220-Physics with Calculus"},
		{name: "no recognizable pattern", in: "Intro to Pottery", want: "Intro to Pottery"},
		{name: "empty", in: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractCourseLabel(tt.in); got != tt.want {
				t.Errorf("extractCourseLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

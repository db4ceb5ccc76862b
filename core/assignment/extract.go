package assignment

import "regexp"

// Course names come in noisy, eg. "3-ENGR-1410-Intro to Engineering - Section A".
// The label we want is the course code plus its trailing text, up to (not
// including) the first " -": optional numeric-dash prefixes, a 3-4 char code, a
// dash, 4 digits, then a non-greedy tail.
var coursePattern = regexp.MustCompile(`(?:\d-)*(\w{3,4}-\d{4}.+?)\s-`)

// extractCourseLabel returns the clean course label, or the name unchanged when
// no pattern is found. It never fails.
func extractCourseLabel(name string) string {
	if m := coursePattern.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

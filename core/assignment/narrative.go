package assignment

import (
	"fmt"
	"strings"
)

// The narrative is spoken through an SSML-bearing payload; the emphasis/break
// tags below are literal markup for the voice platform, never escaped.
const (
	itemSentenceFmt  = "<emphasis>%s</emphasis> for %s, is due %s at %s. <break time=\"1s\"/>"
	nothingDueAtAll  = "You don't have anything due today or tomorrow! Lucky! "
	nothingToday     = "You don't have anything due today."
	nothingTomorrow  = "You don't have anything due tomorrow. "
	narrativeClosing = "Good luck!"
)

// Narrative renders the classified partition into a single deterministic spoken
// string: one sentence per assignment in feed order, then the empty-bucket
// phrasing, then the closing.
func (b Buckets) Narrative() string {
	var sb strings.Builder
	for _, item := range b.Items {
		fmt.Fprintf(&sb, itemSentenceFmt, item.Title, item.CourseLabel, item.Due, item.DueAt.Format(dueTimeLayout))
	}
	if b.Total() == 0 {
		sb.WriteString(nothingDueAtAll)
	} else {
		if b.TodayCount() == 0 {
			sb.WriteString(nothingToday)
		}
		if b.TomorrowCount() == 0 {
			sb.WriteString(nothingTomorrow)
		}
	}
	sb.WriteString(narrativeClosing)
	return sb.String()
}

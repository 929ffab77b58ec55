package daterange

import "time"

// Range is an inclusive [Start, End] pair of calendar dates, both at
// midnight in the parser's timezone.
type Range struct {
	Start time.Time
	End   time.Time
}

package model

import "time"

// Conversion is the outcome of moving one instant from a source zone to a
// target zone.
type Conversion struct {
	Source     time.Time
	Target     time.Time
	Timezone   string
	Offset     string
	Difference string
}

package app

import "time"

// TickMsg triggers one meter cycle.
type TickMsg time.Time

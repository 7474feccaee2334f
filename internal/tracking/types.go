package tracking

import "time"

// StillThreshold is how long the cursor has to stay put before the resting
// position qualifies for capture once movement resumes.
const StillThreshold = 1 * time.Second

// Point is an absolute screen coordinate.
type Point struct {
	X int
	Y int
}

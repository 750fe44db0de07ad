package play

import "time"

// refillMsg fires once the heart refill delay has passed.
type refillMsg time.Time

// listenMsg runs the speech recognizer after the "listening" frame has
// been drawn.
type listenMsg struct{}

// feedbackDoneMsg dismisses the answer feedback.
type feedbackDoneMsg struct{}

package compost

// Feedback plays catch outcome cues. Implementations must not block the
// tick and may do nothing.
type Feedback interface {
	Success()
	Failure()
}

// NopFeedback is a Feedback that does nothing.
type NopFeedback struct{}

func (NopFeedback) Success() {}
func (NopFeedback) Failure() {}

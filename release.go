package vkframe

// releaseStack records how to release each acquired object at the moment it is
// acquired. Unwinding runs the steps last in, first out, so release order is the
// exact reverse of acquisition.
type releaseStack struct {
	steps []releaseStep
}

type releaseStep struct {
	name    string
	release func()
}

func (s *releaseStack) push(name string, release func()) {
	s.steps = append(s.steps, releaseStep{name: name, release: release})
}

func (s *releaseStack) len() int {
	return len(s.steps)
}

// unwind releases everything and leaves the stack empty, so a second unwind is a
// no-op.
func (s *releaseStack) unwind() {
	for len(s.steps) > 0 {
		step := s.steps[len(s.steps)-1]
		s.steps = s.steps[:len(s.steps)-1]
		Logger().Debug("release", "object", step.name)
		step.release()
	}
}

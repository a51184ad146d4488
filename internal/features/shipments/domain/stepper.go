package domain

// Step is one entry of the progress stepper.
type Step struct {
	Label     DisplayStatus `json:"label"`
	Completed bool          `json:"completed"`
	Current   bool          `json:"current"`
}

// RenderSteps marks every step up to and including current as completed.
func RenderSteps(current DisplayStatus) []Step {
	idx := StepIndex(current)

	out := make([]Step, len(steps))
	for i, label := range steps {
		out[i] = Step{
			Label:     label,
			Completed: i <= idx,
			Current:   i == idx,
		}
	}
	return out
}

// StepsFor renders the stepper for a backend status. Unmapped statuses
// return a *MappingError.
func StepsFor(status BackendStatus) ([]Step, error) {
	display, err := ToDisplay(status)
	if err != nil {
		return nil, err
	}
	return RenderSteps(display), nil
}

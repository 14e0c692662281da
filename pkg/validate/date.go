package validate

// dateValidator always accepts; actual filtering happens through the
// rule's weight and context gating in pkg/scan, not here.
type dateValidator struct{}

func NewDate() Validator { return dateValidator{} }

func (dateValidator) Validate(raw, _, _ string, _, _ int) Outcome {
	return Accepted(raw, "")
}

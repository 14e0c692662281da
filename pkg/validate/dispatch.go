package validate

// Kind is a tagged union over validator identity. The rule catalog names a
// validator by Kind (plus Spec parameters) and Build turns that into the
// concrete Validator value stored on rules.Rule.
type Kind int

const (
	KindNone Kind = iota
	KindCPF
	KindCNPJ
	KindPhone
	KindCEP
	KindEmailTLD
	KindDate
	KindContextualID
	KindFullName
)

// Spec parameterizes KindContextualID; other kinds need no parameters.
type Spec struct {
	Kind     Kind
	Keywords []string // only meaningful for KindContextualID
}

// Build dispatches a Spec to its concrete Validator. Returns nil for
// KindNone (rules with no validator skip this step entirely).
func Build(s Spec) Validator {
	switch s.Kind {
	case KindCPF:
		return NewCPF()
	case KindCNPJ:
		return NewCNPJ()
	case KindPhone:
		return NewPhone()
	case KindCEP:
		return NewCEP()
	case KindEmailTLD:
		return NewEmail()
	case KindDate:
		return NewDate()
	case KindContextualID:
		return NewContextualID(s.Keywords)
	case KindFullName:
		return NewFullName()
	default:
		return nil
	}
}

package types

// Decision represents the outcome of a single visa application
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRefused  Decision = "refused"
)

// String returns the string representation of the decision
func (d Decision) String() string {
	return string(d)
}

// IsKnown checks if the decision is one of the recognized values
func (d Decision) IsKnown() bool {
	switch d {
	case DecisionApproved, DecisionRefused:
		return true
	default:
		return false
	}
}

// StatusTag discriminates the result of a status lookup
type StatusTag string

const (
	StatusTagSuccess  StatusTag = "success"
	StatusTagNotFound StatusTag = "not_found"
	StatusTagError    StatusTag = "error"
)

// String returns the string representation of the tag
func (t StatusTag) String() string {
	return string(t)
}

package domain

// Decision is the outcome of evaluating an action for a principal.
type Decision struct {
	Allowed bool
	Action  Action
	Message string
}

// Allow returns a granting decision.
func Allow(action Action) Decision {
	return Decision{Allowed: true, Action: action}
}

// Deny returns a refusing decision naming the action.
func Deny(action Action) Decision {
	return Decision{Action: action, Message: (&PolicyDeniedError{Action: action}).Error()}
}

// Err converts a refusing decision into a PolicyDeniedError. Allowed decisions return nil.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return &PolicyDeniedError{Action: d.Action}
}

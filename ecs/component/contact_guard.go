package component

// ContactGuard is the per-step debounce flag. The first qualifying contact
// in a step sets Handled; the contact reset system clears it at the end of
// every step.
type ContactGuard struct {
	Handled bool
}

var ContactGuardComponent = NewComponent[ContactGuard]()

package input

// Injector injects gesture commands into the system.
type Injector interface {
	Inject(event *GestureEvent) error
}

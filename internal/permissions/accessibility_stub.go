//go:build !darwin || !cgo

package permissions

// There is no Accessibility gate outside macOS (or without cgo); report
// granted and let the injection backend surface its own unavailability.
func HasAccessibility() bool { return true }

func RequestAccessibility() bool { return true }

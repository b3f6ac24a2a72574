package storage

// Store is an opaque key-value store for string values. The application
// persists its whole state through two of these: a long-lived store for the
// roster and remembered sessions, and a process-scoped store for sessions
// that should not outlive the run.
type Store interface {
	// Get returns the value for key and whether the key was present.
	Get(key string) (string, bool, error)

	// Set writes the value for key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}

package store

// SessionStore abstracts session persistence; the owning package decides the
// concrete session type.
type SessionStore[T any] interface {
	SaveSession(session T) error
	LoadSession() (T, error)
	ClearSession() error
}

// ConfigStore abstracts client preference persistence.
type ConfigStore[T any] interface {
	SaveConfig(cfg T) error
	LoadConfig() (T, error)
	ClearConfig() error
}

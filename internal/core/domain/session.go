package domain

// SessionState is derived from the latest session check against the sorter service.
type SessionState int

const (
	SessionUnknown SessionState = iota
	SessionAuthenticated
	SessionUnauthenticated
)

func (s SessionState) String() string {
	switch s {
	case SessionAuthenticated:
		return "authenticated"
	case SessionUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

package ports

// PreferencePort is local key/value storage for user preferences. Get
// returns ok=false when the key was never written.
type PreferencePort interface {
	Get(key string) (value []byte, ok bool, err error)
	Put(key string, value []byte) error
}

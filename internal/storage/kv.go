package storage

// Record kinds partition the key space. Per-date records use the date
// key (YYYY-MM-DD); the profile is a singleton; routes key by ID.
const (
	KindCheckin    = "checkin"
	KindTaskDay    = "taskday"
	KindProfile    = "profile"
	KindCommuteLog = "commutelog"
	KindRoute      = "route"
)

// ProfileKey is the fixed key for the singleton commute profile.
const ProfileKey = "active"

// KV is the durable key-value substrate every backend implements:
// one JSON blob per (kind, key). Writes are last-write-wins.
type KV interface {
	Init() error
	Load() error
	Close() error

	Get(kind, key string) ([]byte, bool, error)
	Set(kind, key string, value []byte) error
	Delete(kind, key string) error
	// List returns all values of a kind ordered by key ascending.
	List(kind string) ([][]byte, error)

	GetConfigPath() string
}

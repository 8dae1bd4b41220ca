package ports

import "context"

// Namespaces of the persisted key space.
const (
	NamespaceUsers        = "fin_users"
	NamespaceSession      = "fin_current_user"
	NamespaceTransactions = "fin_data"
	NamespaceSettings     = "fin_settings"
)

// Key addresses one value in the Store. Global keys leave UserID empty;
// per-user keys render as "<namespace>_<userID>".
type Key struct {
	Namespace string
	UserID    string
}

func (k Key) String() string {
	if k.UserID == "" {
		return k.Namespace
	}
	return k.Namespace + "_" + k.UserID
}

var (
	UsersKey   = Key{Namespace: NamespaceUsers}
	SessionKey = Key{Namespace: NamespaceSession}
)

func TransactionsKey(userID string) Key {
	return Key{Namespace: NamespaceTransactions, UserID: userID}
}

func SettingsKey(userID string) Key {
	return Key{Namespace: NamespaceSettings, UserID: userID}
}

// Store is the key-value persistence port. Values are JSON documents.
// Writes to different keys are independent; there is no multi-key atomicity.
type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key Key) ([]byte, bool, error)
	Set(ctx context.Context, key Key, value []byte) error
	// Remove deletes the key. Removing a missing key is not an error.
	Remove(ctx context.Context, key Key) error
}

// Pinger is implemented by stores backed by a remote server.
type Pinger interface {
	Ping(ctx context.Context) error
}

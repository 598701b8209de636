// Package store provides the durable key/value records backing the
// conversation log and user profile. Absence of a key means "use defaults",
// not an error.
package store

// Fixed, namespaced record keys.
const (
	KeyChatHistory = "dot_chat_history"
	KeyProfile     = "dot_profile"
)

// Store is the narrow persistence interface the rest of the app depends on.
// Load returns (nil, nil) when the key is absent.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Remove(key string) error
}

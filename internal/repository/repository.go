package repository

import "aggregat4/jwttoken/internal/domain"

// CredentialStore looks up users by name. Usernames are assumed to be unique: callers compare the
// password of the returned user only. Implementations must be safe for concurrent use.
type CredentialStore interface {
	FindUser(username string) *domain.Credential
}

var staticUsers = []domain.Credential{
	{Username: "Admin", Password: "Admin@123", Role: "Admin"},
	{Username: "User", Password: "User@123", Role: "User"},
}

// StaticStore serves the fixed, ordered user list compiled into the binary.
type StaticStore struct{}

func NewStaticStore() *StaticStore {
	return &StaticStore{}
}

// ListUsers returns a copy of all users in their defined order.
func (s *StaticStore) ListUsers() []domain.Credential {
	users := make([]domain.Credential, len(staticUsers))
	copy(users, staticUsers)
	return users
}

// FindUser returns the first user with exactly this username, or nil.
func (s *StaticStore) FindUser(username string) *domain.Credential {
	for _, user := range s.ListUsers() {
		if user.Username == username {
			return &user
		}
	}
	return nil
}

var _ CredentialStore = (*StaticStore)(nil)

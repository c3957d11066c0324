package postgres

import (
	"fmt"

	"github.com/oksasatya/go-ddd-identity/internal/domain/user"
)

// userRecord is the row shape of the users table.
type userRecord struct {
	ID    string
	Email string
	Name  string
}

func recordFromUser(u *user.User) userRecord {
	return userRecord{
		ID:    u.ID().String(),
		Email: u.Email().Value(),
		Name:  u.Name().Value(),
	}
}

// toDomain rehydrates the aggregate. A row that no longer satisfies the value
// object rules is reported as corrupt rather than silently returned.
func (r userRecord) toDomain() (*user.User, error) {
	id, err := user.ParseID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row %q: %w", r.ID, err)
	}
	email, err := user.NewEmail(r.Email)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row %q: %w", r.ID, err)
	}
	name, err := user.NewName(r.Name)
	if err != nil {
		return nil, fmt.Errorf("corrupt user row %q: %w", r.ID, err)
	}
	return user.Reconstitute(id, email, name), nil
}

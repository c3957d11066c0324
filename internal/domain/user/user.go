package user

import "fmt"

// User is the aggregate root of the account domain. Its id is fixed at
// creation; email and name are always valid because they can only be set
// from value objects.
type User struct {
	id    ID
	email Email
	name  Name
}

// Create registers a brand new user with a freshly generated id.
// Uniqueness of the email is not checked here.
func Create(email Email, name Name) *User {
	return &User{id: GenerateID(), email: email, name: name}
}

// Reconstitute rebuilds a user loaded from storage.
func Reconstitute(id ID, email Email, name Name) *User {
	return &User{id: id, email: email, name: name}
}

// ID returns the identity assigned at creation.
func (u *User) ID() ID { return u.id }

// Email returns the current email.
func (u *User) Email() Email { return u.email }

// Name returns the current display name.
func (u *User) Name() Name { return u.name }

// UpdateEmail replaces the email. Setting the current value again is rejected.
func (u *User) UpdateEmail(newEmail Email) error {
	if newEmail.Equals(u.email) {
		return invalid(ReasonNoOpChange, "New email must be different from current email")
	}
	u.email = newEmail
	return nil
}

// UpdateName replaces the name. Setting the current value again is rejected.
func (u *User) UpdateName(newName Name) error {
	if newName.Equals(u.name) {
		return invalid(ReasonNoOpChange, "New name must be different from current name")
	}
	u.name = newName
	return nil
}

// HasEmail reports whether the user currently holds email.
func (u *User) HasEmail(email Email) bool { return u.email.Equals(email) }

// Equals compares identity only.
func (u *User) Equals(other *User) bool {
	if u == nil || other == nil {
		return u == other
	}
	return u.id.Equals(other.id)
}

// String renders the user for logs.
func (u *User) String() string {
	return fmt.Sprintf("User(id=%s, email=%s, name=%s)", u.id, u.email, u.name)
}

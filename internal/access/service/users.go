package service

import (
	"context"
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/aussiebroadwan/access/internal/access/domain"
	"github.com/aussiebroadwan/access/internal/access/policy"
	"github.com/aussiebroadwan/access/internal/access/store"
	"github.com/aussiebroadwan/access/pkg/cryptox"
)

var reUsername = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// UserService manages accounts. Reads are limited by the caller's row filter:
// users are partitioned by department and a caller always owns their own row.
type UserService struct {
	Store  store.Store
	Access AccessInvalidator
}

func validateUsername(username string) string {
	switch {
	case len(username) < 3 || len(username) > 50:
		return "must be 3-50 characters"
	case !reUsername.MatchString(username):
		return "may only contain letters, digits or _"
	}
	return ""
}

func validatePassword(password string) string {
	if len(password) < 6 || len(password) > 100 {
		return "must be 6-100 characters"
	}
	return ""
}

func validateProfile(f fieldErrors, u domain.User) {
	f.check(len(u.RealName) <= 50, "real_name", "too long (max 50)")
	f.check(len(u.Phone) <= 20, "phone", "too long (max 20)")
	f.check(len(u.Email) <= 100, "email", "too long (max 100)")
	if u.Email != "" {
		_, err := mail.ParseAddress(u.Email)
		f.check(err == nil, "email", "invalid address")
	}
	f.check(u.DeptID >= 0, "dept_id", "must not be negative")
}

// Get returns the user when the filter allows it and store.ErrNotFound
// otherwise, so hidden users are indistinguishable from missing ones.
func (s *UserService) Get(ctx context.Context, id int64, filter policy.RowFilter) (domain.User, error) {
	u, err := s.Store.Users().Get(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	if !filter.Allows(u.DeptID, u.ID) {
		return domain.User{}, store.ErrNotFound
	}
	return u, nil
}

func (s *UserService) List(ctx context.Context, q store.UserQuery) ([]domain.User, int, error) {
	return s.Store.Users().List(ctx, q)
}

// Create hashes password and inserts the user with its roles. The department
// must lie inside the caller's data scope.
func (s *UserService) Create(ctx context.Context, caller ScopeInfo, u domain.User, password string) (domain.User, error) {
	u.Username = strings.TrimSpace(u.Username)
	f := fieldErrors{}
	if msg := validateUsername(u.Username); msg != "" {
		f.add("username", msg)
	}
	if msg := validatePassword(password); msg != "" {
		f.add("password", msg)
	}
	validateProfile(f, u)
	f.check(u.Status.Valid(), "status", "must be 0 or 1")
	if err := f.err(); err != nil {
		return domain.User{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	u.PasswordHash = hash

	if err := checkPlacement(caller, u.DeptID); err != nil {
		return domain.User{}, err
	}

	var created domain.User
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := requireUserDepartment(ctx, tx, u.DeptID); err != nil {
			return err
		}
		if err := requireRoles(ctx, tx, u.RoleIDs); err != nil {
			return err
		}
		id, err := tx.Users().Create(ctx, u)
		if err != nil {
			return err
		}
		created, err = tx.Users().Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}
	return created, nil
}

// Update changes the profile and department of a user. A new department must
// lie inside the caller's data scope.
func (s *UserService) Update(ctx context.Context, caller ScopeInfo, u domain.User) (domain.User, error) {
	f := fieldErrors{}
	validateProfile(f, u)
	if err := f.err(); err != nil {
		return domain.User{}, err
	}

	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Users().Get(ctx, u.ID)
		if err != nil {
			return err
		}
		if current.DeptID != u.DeptID {
			if err := checkPlacement(caller, u.DeptID); err != nil {
				return err
			}
		}
		if err := requireUserDepartment(ctx, tx, u.DeptID); err != nil {
			return err
		}
		if err := tx.Users().Update(ctx, u); err != nil {
			return err
		}
		updated, err = tx.Users().Get(ctx, u.ID)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}

	invalidateUser(s.Access, u.ID)
	return updated, nil
}

// UpdateStatus enables or disables an account. The admin account cannot be
// disabled.
func (s *UserService) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	if !status.Valid() {
		return &ValidationError{Details: map[string]string{"status": "must be 0 or 1"}}
	}
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().Get(ctx, id)
		if err != nil {
			return err
		}
		if u.Username == domain.AdminUsername && !status.Enabled() {
			return fmt.Errorf("%w: user %q cannot be disabled", ErrProtected, u.Username)
		}
		return tx.Users().UpdateStatus(ctx, id, status)
	})
	if err != nil {
		return err
	}

	invalidateUser(s.Access, id)
	return nil
}

// ResetPassword sets a new password. An empty password is replaced by a
// generated one, which is returned so it can be handed to the user.
func (s *UserService) ResetPassword(ctx context.Context, id int64, password string) (string, error) {
	if password == "" {
		generated, err := cryptox.GeneratePassword()
		if err != nil {
			return "", err
		}
		password = generated
	}
	if msg := validatePassword(password); msg != "" {
		return "", &ValidationError{Details: map[string]string{"password": msg}}
	}
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	if err := s.Store.Users().UpdatePasswordHash(ctx, id, hash); err != nil {
		return "", err
	}
	return password, nil
}

// AssignRoles replaces the user's roles. Assigning an unknown role fails
// validation; an empty list removes every role.
func (s *UserService) AssignRoles(ctx context.Context, id int64, roleIDs []int64) (domain.User, error) {
	var updated domain.User
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().Get(ctx, id); err != nil {
			return err
		}
		if err := requireRoles(ctx, tx, roleIDs); err != nil {
			return err
		}
		if err := tx.Users().SetRoles(ctx, id, roleIDs); err != nil {
			return err
		}
		var err error
		updated, err = tx.Users().Get(ctx, id)
		return err
	})
	if err != nil {
		return domain.User{}, err
	}

	invalidateUser(s.Access, id)
	return updated, nil
}

// Delete removes a user. The admin account is protected.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		u, err := tx.Users().Get(ctx, id)
		if err != nil {
			return err
		}
		if u.Username == domain.AdminUsername {
			return fmt.Errorf("%w: user %q cannot be deleted", ErrProtected, u.Username)
		}
		return tx.Users().Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	invalidateUser(s.Access, id)
	return nil
}

func requireUserDepartment(ctx context.Context, tx store.Tx, deptID int64) error {
	if deptID == 0 {
		return nil
	}
	return requireDepartments(ctx, tx, []int64{deptID})
}

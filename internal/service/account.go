package service

import (
	"errors"
	"strings"

	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/model"
	"github.com/suribe27/PROYECTO-HOTEL-FINAL/internal/repository"
)

// AccountService orchestrates account registration and authentication.
type AccountService struct {
	accounts *repository.AccountRepository
}

// NewAccountService constructs an AccountService with its dependencies.
func NewAccountService(accounts *repository.AccountRepository) *AccountService {
	return &AccountService{accounts: accounts}
}

// CreateAccount validates the fields and inserts a new account. A second
// call with the same email always fails with repository.ErrDuplicateAccount.
func (s *AccountService) CreateAccount(name, email, password string) (*model.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return nil, validationError("name is required")
	}
	if email == "" {
		return nil, validationError("email is required")
	}
	if password == "" {
		return nil, validationError("password is required")
	}
	return s.accounts.Create(model.Account{Name: name, Email: email, Password: password})
}

// Authenticate returns the account matching the exact email/password pair.
// A missing account and a wrong password are indistinguishable to the
// caller; both yield ErrInvalidCredentials.
func (s *AccountService) Authenticate(email, password string) (*model.Account, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, validationError("email is required")
	}
	if password == "" {
		return nil, validationError("password is required")
	}

	account, err := s.accounts.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if account.Password != password {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// ChangePassword overwrites the stored password after verifying the current
// one. On any failure the stored password is left untouched.
func (s *AccountService) ChangePassword(email, currentPassword, newPassword string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return validationError("email is required")
	}
	if currentPassword == "" {
		return validationError("current password is required")
	}
	if newPassword == "" {
		return validationError("new password is required")
	}

	account, err := s.accounts.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if account.Password != currentPassword {
		return ErrInvalidCredentials
	}
	return s.accounts.UpdatePassword(email, newPassword)
}

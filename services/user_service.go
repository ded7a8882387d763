//go:generate go run go.uber.org/mock/mockgen -source=user_service.go -destination=../mocks/mock_user_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"messenger/auth"
	"messenger/domain"
	"messenger/errors"
	"messenger/repositories"
	"messenger/search"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const searchLimit = 25

type IUserService interface {
	GetUser(id uuid.UUID) (domain.Summary, error)
	UpdateProfile(callerID uuid.UUID, firstName, surname string) (domain.Summary, error)
	ChangePassword(callerID uuid.UUID, oldPassword, newPassword, repeatPassword string) error
	DeleteAccount(callerID uuid.UUID) error
	FindUsers(ctx context.Context, phrase string) ([]domain.Summary, error)
	AddContact(callerID, contactID uuid.UUID) ([]domain.Summary, error)
	RemoveContact(callerID, contactID uuid.UUID) ([]domain.Summary, error)
	MyContacts(callerID uuid.UUID) ([]domain.Summary, error)
}

// UserService is the user directory: profile maintenance, contact lists and
// phrase search. The chat and message services consume it for identity
// resolution only.
type UserService struct {
	users repositories.IUserRepository
	index search.IUserIndex
	log   *slog.Logger
}

func NewUserService(users repositories.IUserRepository, index search.IUserIndex, log *slog.Logger) *UserService {
	return &UserService{users: users, index: index, log: log}
}

func (s *UserService) GetUser(id uuid.UUID) (domain.Summary, error) {
	user, err := s.users.GetByID(id)
	if err == errors.ErrNotFound {
		return domain.Summary{}, fmt.Errorf("%w: user %s", errors.ErrNotFound, id)
	}
	if err != nil {
		return domain.Summary{}, err
	}
	return user.Summary(), nil
}

func (s *UserService) UpdateProfile(callerID uuid.UUID, firstName, surname string) (domain.Summary, error) {
	user, err := s.users.GetByID(callerID)
	if err != nil {
		return domain.Summary{}, err
	}
	user.FirstName = firstName
	user.Surname = surname
	if err := s.users.Save(user); err != nil {
		return domain.Summary{}, err
	}
	if err := s.index.Index(user); err != nil {
		s.log.Warn("Search index update failed", "userId", user.ID, "err", err)
	}
	return user.Summary(), nil
}

// ChangePassword verifies the old password before accepting the new one.
// A mismatch between the two copies of the new password is a bad request,
// a wrong old password is an access problem.
func (s *UserService) ChangePassword(callerID uuid.UUID, oldPassword, newPassword, repeatPassword string) error {
	user, err := s.users.GetByID(callerID)
	if err != nil {
		return err
	}
	match, err := auth.ComparePassword(oldPassword, user.PasswordHash)
	if err != nil || !match {
		return errors.ErrAccessDenied
	}
	if newPassword != repeatPassword {
		return fmt.Errorf("%w: you provided 2 different passwords", errors.ErrInvalidRequest)
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing failed: %w", err)
	}
	user.PasswordHash = hash
	return s.users.Save(user)
}

func (s *UserService) DeleteAccount(callerID uuid.UUID) error {
	if err := s.users.Delete(callerID); err != nil {
		return err
	}
	if err := s.index.Remove(callerID); err != nil {
		s.log.Warn("Search index removal failed", "userId", callerID, "err", err)
	}
	return nil
}

// FindUsers searches the directory by phrase over username and display
// names. Blank phrases are rejected, an empty result set is an error the
// caller can surface as "no such user".
func (s *UserService) FindUsers(ctx context.Context, phrase string) ([]domain.Summary, error) {
	if strings.TrimSpace(phrase) == "" {
		return nil, fmt.Errorf("%w: search phrase cannot be empty", errors.ErrInvalidRequest)
	}
	ids, err := s.index.Search(ctx, phrase, searchLimit)
	if err != nil {
		return nil, err
	}

	var results []domain.Summary
	for _, id := range ids {
		user, err := s.users.GetByID(id)
		if err == errors.ErrNotFound {
			// Deleted since last index write, skip.
			continue
		}
		if err != nil {
			return nil, err
		}
		results = append(results, user.Summary())
	}
	if len(results) == 0 {
		return nil, errors.ErrNoSuchUser
	}
	return results, nil
}

// AddContact puts another user on the caller's contact list and returns the
// updated list. The owner of the list cannot be on the list.
func (s *UserService) AddContact(callerID, contactID uuid.UUID) ([]domain.Summary, error) {
	exists, err := s.users.ExistsByID(contactID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %s", errors.ErrNotFound, contactID)
	}
	if callerID == contactID {
		return nil, fmt.Errorf("%w: owner of the list cannot be on the list", errors.ErrInvalidRequest)
	}
	user, err := s.users.GetByID(callerID)
	if err != nil {
		return nil, err
	}
	if !user.HasContact(contactID) {
		user.Contacts = append(user.Contacts, contactID)
		if err := s.users.Save(user); err != nil {
			return nil, err
		}
	}
	return s.MyContacts(callerID)
}

func (s *UserService) RemoveContact(callerID, contactID uuid.UUID) ([]domain.Summary, error) {
	exists, err := s.users.ExistsByID(contactID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: user %s", errors.ErrNotFound, contactID)
	}
	user, err := s.users.GetByID(callerID)
	if err != nil {
		return nil, err
	}
	if !user.HasContact(contactID) {
		return nil, fmt.Errorf("%w: there is no such user on contact list", errors.ErrInvalidRequest)
	}
	user.Contacts = lo.Without(user.Contacts, contactID)
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return s.MyContacts(callerID)
}

func (s *UserService) MyContacts(callerID uuid.UUID) ([]domain.Summary, error) {
	user, err := s.users.GetByID(callerID)
	if err != nil {
		return nil, err
	}
	if len(user.Contacts) == 0 {
		return nil, fmt.Errorf("%w: your contact list is empty", errors.ErrEmptyList)
	}
	contacts := make([]domain.Summary, 0, len(user.Contacts))
	for _, id := range user.Contacts {
		contact, err := s.users.GetByID(id)
		if err == errors.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact.Summary())
	}
	return contacts, nil
}

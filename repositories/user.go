//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"strings"

	"messenger/domain"
	"messenger/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IUserRepository interface {
	Create(user domain.User) (domain.User, error)
	Save(user domain.User) error
	GetByID(id uuid.UUID) (domain.User, error)
	GetByUsername(username string) (domain.User, error)
	ExistsByID(id uuid.UUID) (bool, error)
	Delete(id uuid.UUID) error
	All() ([]domain.User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

func userKey(id uuid.UUID) []byte { return []byte("user:" + id.String()) }

func usernameKey(username string) []byte {
	return []byte("username:" + strings.ToLower(username))
}

// Create persists a new user. The username index key doubles as the
// uniqueness constraint: both writes happen in one transaction, so two
// concurrent registrations cannot both claim the same name.
func (r *UserRepository) Create(user domain.User) (domain.User, error) {
	user.ID = uuid.New()
	if user.Contacts == nil {
		user.Contacts = []uuid.UUID{}
	}
	data, err := json.Marshal(user)
	if err != nil {
		return domain.User{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		nameKey := usernameKey(user.Username)
		if _, err := txn.Get(nameKey); err == nil {
			return errors.ErrUserAlreadyExists
		}
		if err := txn.Set(nameKey, []byte(user.ID.String())); err != nil {
			return err
		}
		return txn.Set(userKey(user.ID), data)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Save overwrites an existing user record. The username is immutable, so no
// index maintenance is needed here.
func (r *UserRepository) Save(user domain.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(userKey(user.ID), data)
	})
}

func (r *UserRepository) GetByID(id uuid.UUID) (domain.User, error) {
	var user domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, userKey(id), &user)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *UserRepository) GetByUsername(username string) (domain.User, error) {
	var user domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(usernameKey(username))
		if err != nil {
			return translateBadgerErr(err)
		}
		var id uuid.UUID
		if err := item.Value(func(val []byte) error {
			parsed, err := uuid.Parse(string(val))
			id = parsed
			return err
		}); err != nil {
			return err
		}
		return getJSON(txn, userKey(id), &user)
	})
	if err != nil {
		return domain.User{}, err
	}
	return user, nil
}

func (r *UserRepository) ExistsByID(id uuid.UUID) (bool, error) {
	exists := false
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(userKey(id))
		if err == nil {
			exists = true
			return nil
		}
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
	return exists, err
}

func (r *UserRepository) Delete(id uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var user domain.User
		if err := getJSON(txn, userKey(id), &user); err != nil {
			return err
		}
		if err := txn.Delete(usernameKey(user.Username)); err != nil {
			return err
		}
		return txn.Delete(userKey(id))
	})
}

// All scans every user record. Only the search indexer and the directory
// search fallback walk the full directory.
func (r *UserRepository) All() ([]domain.User, error) {
	var users []domain.User
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("user:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var user domain.User
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &user)
			}); err != nil {
				return err
			}
			users = append(users, user)
		}
		return nil
	})
	return users, err
}

// getJSON fetches a key and decodes its JSON value, mapping the badger
// not-found error onto the domain sentinel.
func getJSON(txn *badger.Txn, key []byte, out any) error {
	item, err := txn.Get(key)
	if err != nil {
		return translateBadgerErr(err)
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

func translateBadgerErr(err error) error {
	if err == badger.ErrKeyNotFound {
		return errors.ErrNotFound
	}
	return err
}

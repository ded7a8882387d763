//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"

	"messenger/domain"
	"messenger/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IChatRepository interface {
	SaveNew(chat domain.Chat) (domain.Chat, error)
	GetByID(id uuid.UUID) (domain.Chat, error)
	GetByMembers(members domain.MemberSet) (domain.Chat, error)
	ExistsByID(id uuid.UUID) (bool, error)
	ChatsForUser(userID uuid.UUID) ([]domain.Chat, error)
	Delete(id uuid.UUID) error
}

type ChatRepository struct {
	db *badger.DB
}

func NewChatRepository(db *badger.DB) IChatRepository {
	return &ChatRepository{db: db}
}

func chatKey(id uuid.UUID) []byte { return []byte("chat:" + id.String()) }

func memberSetKey(members domain.MemberSet) []byte {
	return []byte("memberset:" + members.CanonicalKey())
}

func chatMemberKey(userID, chatID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("chatmember:%s:%s", userID, chatID))
}

func chatMemberPrefix(userID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("chatmember:%s:", userID))
}

// SaveNew persists a chat together with its member-set uniqueness key and
// one membership index entry per member, all in a single transaction. If
// the member-set key is already taken the write fails with ErrChatExists,
// which closes the race between two concurrent resolve-or-create calls for
// the same participant set.
func (r *ChatRepository) SaveNew(chat domain.Chat) (domain.Chat, error) {
	chat.ID = uuid.New()
	data, err := json.Marshal(chat)
	if err != nil {
		return domain.Chat{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		setKey := memberSetKey(chat.Members)
		if _, err := txn.Get(setKey); err == nil {
			return errors.ErrChatExists
		}
		if err := txn.Set(setKey, []byte(chat.ID.String())); err != nil {
			return err
		}
		for _, member := range chat.Members {
			if err := txn.Set(chatMemberKey(member, chat.ID), nil); err != nil {
				return err
			}
		}
		return txn.Set(chatKey(chat.ID), data)
	})
	if err != nil {
		return domain.Chat{}, err
	}
	return chat, nil
}

func (r *ChatRepository) GetByID(id uuid.UUID) (domain.Chat, error) {
	var chat domain.Chat
	err := r.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, chatKey(id), &chat)
	})
	if err != nil {
		return domain.Chat{}, err
	}
	return chat, nil
}

// GetByMembers resolves a chat through the canonical member-set key.
func (r *ChatRepository) GetByMembers(members domain.MemberSet) (domain.Chat, error) {
	var chat domain.Chat
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(memberSetKey(members))
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
		return getJSON(txn, chatKey(id), &chat)
	})
	if err != nil {
		return domain.Chat{}, err
	}
	return chat, nil
}

func (r *ChatRepository) ExistsByID(id uuid.UUID) (bool, error) {
	exists := false
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(chatKey(id))
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

// ChatsForUser walks the membership index of one user. This is the only
// scan the chat resolver needs: the sender is by definition a member of any
// chat that could match.
func (r *ChatRepository) ChatsForUser(userID uuid.UUID) ([]domain.Chat, error) {
	var chats []domain.Chat
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := chatMemberPrefix(userID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rawID := it.Item().Key()[len(prefix):]
			chatID, err := uuid.Parse(string(rawID))
			if err != nil {
				return fmt.Errorf("corrupt membership key %q: %w", it.Item().Key(), err)
			}
			var chat domain.Chat
			if err := getJSON(txn, chatKey(chatID), &chat); err != nil {
				return err
			}
			chats = append(chats, chat)
		}
		return nil
	})
	return chats, err
}

// Delete removes the chat record, its uniqueness key and its membership
// index entries. Deleting an absent chat is a no-op so that cleanup races
// (owner delete vs. sweeper-triggered delete) stay benign.
func (r *ChatRepository) Delete(id uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var chat domain.Chat
		err := getJSON(txn, chatKey(id), &chat)
		if err == errors.ErrNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		if err := txn.Delete(memberSetKey(chat.Members)); err != nil {
			return err
		}
		for _, member := range chat.Members {
			if err := txn.Delete(chatMemberKey(member, id)); err != nil {
				return err
			}
		}
		return txn.Delete(chatKey(id))
	})
}

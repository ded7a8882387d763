//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"messenger/domain"
	"messenger/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IMessageRepository interface {
	Save(message domain.Message) (domain.Message, error)
	GetByID(id uuid.UUID) (domain.Message, error)
	Delete(id uuid.UUID) error
	DeleteByChat(chatID uuid.UUID) error
	HasMessages(chatID uuid.UUID) (bool, error)
	MessagesForChat(chatID uuid.UUID) ([]domain.Message, error)
	PageExpired(cutoff time.Time, cursor *string, size int) ([]uuid.UUID, *string, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) IMessageRepository {
	return &MessageRepository{db: db, log: log}
}

func messageKey(id uuid.UUID) []byte { return []byte("msg:" + id.String()) }

func chatMessageKey(chatID, messageID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("chatmsg:%s:%s", chatID, messageID))
}

func chatMessagePrefix(chatID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("chatmsg:%s:", chatID))
}

// expireKey orders non-permanent messages by timestamp using 19-digit zero
// padding, so a lexicographic prefix scan walks them oldest first. The
// message id disambiguates two messages written in the same nanosecond.
func expireKey(at time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("expire:%019d:%s", at.UnixNano(), id))
}

const expirePrefix = "expire:"

// Save writes the message record, the chat-message index entry and, for
// non-permanent messages, the expiry index entry. A rewrite of an existing
// message (edit, retention toggle) replaces a possibly stale expiry entry
// in the same transaction, so the sweep index never disagrees with the row.
func (r *MessageRepository) Save(message domain.Message) (domain.Message, error) {
	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	data, err := json.Marshal(message)
	if err != nil {
		return domain.Message{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		var previous domain.Message
		switch err := getJSON(txn, messageKey(message.ID), &previous); err {
		case nil:
			if err := txn.Delete(expireKey(previous.At, previous.ID)); err != nil {
				return err
			}
		case errors.ErrNotFound:
		default:
			return err
		}

		if err := txn.Set(messageKey(message.ID), data); err != nil {
			return err
		}
		if err := txn.Set(chatMessageKey(message.ChatID, message.ID), nil); err != nil {
			return err
		}
		if !message.Permanent {
			return txn.Set(expireKey(message.At, message.ID), nil)
		}
		return nil
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

func (r *MessageRepository) GetByID(id uuid.UUID) (domain.Message, error) {
	var message domain.Message
	err := r.db.View(func(txn *badger.Txn) error {
		return getJSON(txn, messageKey(id), &message)
	})
	if err != nil {
		return domain.Message{}, err
	}
	return message, nil
}

// Delete removes the message and both index entries. An absent message is a
// no-op: the sweeper and an owner delete may race for the same row, and
// "already gone" is the desired outcome for whoever loses.
func (r *MessageRepository) Delete(id uuid.UUID) error {
	return r.db.Update(func(txn *badger.Txn) error {
		var message domain.Message
		err := getJSON(txn, messageKey(id), &message)
		if err == errors.ErrNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return deleteMessageKeys(txn, message)
	})
}

// DeleteByChat removes every message owned by the chat. Used by the owned
// chat delete to cascade before the chat record itself goes away.
func (r *MessageRepository) DeleteByChat(chatID uuid.UUID) error {
	ids, err := r.messageIDsForChat(chatID)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := r.Delete(id); err != nil {
			return err
		}
	}
	return nil
}

// HasMessages reports whether the chat still owns at least one message.
func (r *MessageRepository) HasMessages(chatID uuid.UUID) (bool, error) {
	found := false
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := chatMessagePrefix(chatID)
		it.Seek(prefix)
		found = it.ValidForPrefix(prefix)
		return nil
	})
	return found, err
}

func (r *MessageRepository) MessagesForChat(chatID uuid.UUID) ([]domain.Message, error) {
	ids, err := r.messageIDsForChat(chatID)
	if err != nil {
		return nil, err
	}
	messages := make([]domain.Message, 0, len(ids))
	for _, id := range ids {
		message, err := r.GetByID(id)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// PageExpired returns up to size ids of non-permanent messages stamped
// before the cutoff, oldest first, together with a cursor for the next
// page. The cursor is the suffix of the last visited key, so a record is
// never revisited within one sweep even while matching rows shrink under
// concurrent deletes.
func (r *MessageRepository) PageExpired(cutoff time.Time, cursor *string, size int) ([]uuid.UUID, *string, error) {
	var ids []uuid.UUID
	var lastKey string
	bound := fmt.Sprintf("%019d", cutoff.UnixNano())

	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte(expirePrefix)
		seekKey := prefix
		if cursor != nil {
			seekKey = append([]byte(expirePrefix), []byte(*cursor)...)
		}
		it.Seek(seekKey)
		if cursor != nil && it.ValidForPrefix(prefix) {
			it.Next()
		}

		for ; it.ValidForPrefix(prefix); it.Next() {
			suffix := string(it.Item().Key()[len(expirePrefix):])
			if suffix >= bound {
				break
			}
			if len(ids) == size {
				break
			}
			// suffix is "{padded-ts}:{uuid}"
			rawID := suffix[len(bound)+1:]
			id, err := uuid.Parse(rawID)
			if err != nil {
				r.log.Warn("Skipping corrupt expiry key", "key", string(it.Item().Key()))
				lastKey = suffix
				continue
			}
			ids = append(ids, id)
			lastKey = suffix
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if len(ids) == 0 {
		return nil, nil, nil
	}
	return ids, &lastKey, nil
}

func (r *MessageRepository) messageIDsForChat(chatID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = false
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := chatMessagePrefix(chatID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			rawID := it.Item().Key()[len(prefix):]
			id, err := uuid.Parse(string(rawID))
			if err != nil {
				return fmt.Errorf("corrupt chat-message key %q: %w", it.Item().Key(), err)
			}
			ids = append(ids, id)
		}
		return nil
	})
	return ids, err
}

func deleteMessageKeys(txn *badger.Txn, message domain.Message) error {
	if err := txn.Delete(chatMessageKey(message.ChatID, message.ID)); err != nil {
		return err
	}
	if err := txn.Delete(expireKey(message.At, message.ID)); err != nil {
		return err
	}
	return txn.Delete(messageKey(message.ID))
}

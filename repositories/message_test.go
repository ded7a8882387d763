package repositories

import (
	"log/slog"
	"testing"
	"time"

	"messenger/domain"
	"messenger/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openMessageRepository(t *testing.T) IMessageRepository {
	t.Helper()
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMessageRepository(db, slog.Default())
}

func Test_Message_Save_And_Get(t *testing.T) {
	req := require.New(t)
	repository := openMessageRepository(t)

	message, err := repository.Save(domain.Message{
		ChatID:   uuid.New(),
		SenderID: uuid.New(),
		Content:  "this message will self destruct in 7 days",
		At:       time.Now().UTC(),
	})
	req.NoError(err)
	req.NotEqual(uuid.Nil, message.ID)

	fetched, err := repository.GetByID(message.ID)
	req.NoError(err)
	req.Equal(message.Content, fetched.Content)
	req.Equal(message.ChatID, fetched.ChatID)

	_, err = repository.GetByID(uuid.New())
	req.ErrorIs(err, errors.ErrNotFound)
}

func Test_Message_PageExpired_Paging(t *testing.T) {
	req := require.New(t)
	repository := openMessageRepository(t)
	chatID := uuid.New()
	senderID := uuid.New()
	cutoff := time.Now().UTC().Add(-7 * 24 * time.Hour)

	var oldIDs []uuid.UUID
	for i := 0; i < 5; i++ {
		message, err := repository.Save(domain.Message{
			ChatID:   chatID,
			SenderID: senderID,
			Content:  "expired",
			At:       cutoff.Add(-time.Duration(5-i) * time.Hour),
		})
		req.NoError(err)
		oldIDs = append(oldIDs, message.ID)
	}
	_, err := repository.Save(domain.Message{
		ChatID: chatID, SenderID: senderID, Content: "kept forever",
		Permanent: true, At: cutoff.Add(-time.Hour),
	})
	req.NoError(err)
	_, err = repository.Save(domain.Message{
		ChatID: chatID, SenderID: senderID, Content: "still fresh",
		At: cutoff.Add(time.Hour),
	})
	req.NoError(err)

	// Walk the index in pages of 2: three pages, oldest first, then empty.
	var collected []uuid.UUID
	var cursor *string
	for {
		ids, next, err := repository.PageExpired(cutoff, cursor, 2)
		req.NoError(err)
		if len(ids) == 0 {
			break
		}
		req.LessOrEqual(len(ids), 2)
		collected = append(collected, ids...)
		cursor = next
	}
	req.Equal(oldIDs, collected)
}

func Test_Message_Rewrite_Moves_Expiry_Entry(t *testing.T) {
	req := require.New(t)
	repository := openMessageRepository(t)
	cutoff := time.Now().UTC().Add(-7 * 24 * time.Hour)

	message, err := repository.Save(domain.Message{
		ChatID:   uuid.New(),
		SenderID: uuid.New(),
		Content:  "about to be pinned",
		At:       cutoff.Add(-time.Hour),
	})
	req.NoError(err)

	ids, _, err := repository.PageExpired(cutoff, nil, 10)
	req.NoError(err)
	req.Equal([]uuid.UUID{message.ID}, ids)

	// Flipping the flag must drop the stale expiry entry in the same write.
	message.Permanent = true
	_, err = repository.Save(message)
	req.NoError(err)

	ids, _, err = repository.PageExpired(cutoff, nil, 10)
	req.NoError(err)
	req.Empty(ids)
}

func Test_Message_Delete_And_HasMessages(t *testing.T) {
	req := require.New(t)
	repository := openMessageRepository(t)
	chatID := uuid.New()
	senderID := uuid.New()

	first, err := repository.Save(domain.Message{
		ChatID: chatID, SenderID: senderID, Content: "first", At: time.Now().UTC(),
	})
	req.NoError(err)
	second, err := repository.Save(domain.Message{
		ChatID: chatID, SenderID: senderID, Content: "second", At: time.Now().UTC(),
	})
	req.NoError(err)

	occupied, err := repository.HasMessages(chatID)
	req.NoError(err)
	req.True(occupied)

	req.NoError(repository.Delete(first.ID))
	occupied, err = repository.HasMessages(chatID)
	req.NoError(err)
	req.True(occupied)

	req.NoError(repository.Delete(second.ID))
	occupied, err = repository.HasMessages(chatID)
	req.NoError(err)
	req.False(occupied)

	// Deleting an absent message is a no-op.
	req.NoError(repository.Delete(second.ID))
}

func Test_Message_DeleteByChat(t *testing.T) {
	req := require.New(t)
	repository := openMessageRepository(t)
	chatID := uuid.New()
	otherChatID := uuid.New()
	senderID := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := repository.Save(domain.Message{
			ChatID: chatID, SenderID: senderID, Content: "doomed", At: time.Now().UTC(),
		})
		req.NoError(err)
	}
	survivor, err := repository.Save(domain.Message{
		ChatID: otherChatID, SenderID: senderID, Content: "safe", At: time.Now().UTC(),
	})
	req.NoError(err)

	req.NoError(repository.DeleteByChat(chatID))

	occupied, err := repository.HasMessages(chatID)
	req.NoError(err)
	req.False(occupied)

	messages, err := repository.MessagesForChat(otherChatID)
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal(survivor.ID, messages[0].ID)
}

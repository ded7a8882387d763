package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"messenger/domain"
	"messenger/errors"
	"messenger/moderation"
	"messenger/observability"
	"messenger/repositories"
	"messenger/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const (
	testRetention = 7 * 24 * time.Hour
	testPageSize  = 2
)

type sweepFixture struct {
	sweeper  *Sweeper
	monitor  *observability.SweepMonitor
	chats    repositories.IChatRepository
	messages repositories.IMessageRepository
}

func newSweepFixture(t *testing.T) sweepFixture {
	t.Helper()
	req := require.New(t)
	log := slog.Default()

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	userRepository := repositories.NewUserRepository(db)
	chatRepository := repositories.NewChatRepository(db)
	messageRepository := repositories.NewMessageRepository(db, log)

	moderator, err := moderation.NewModerator(nil, '*')
	req.NoError(err)

	chatService := services.NewChatService(chatRepository, messageRepository, userRepository, log)
	messageService := services.NewMessageService(
		messageRepository, userRepository, chatService, moderator, 200, log,
	)

	monitor := observability.NewSweepMonitor()
	sweeper := NewSweeper(
		messageRepository, chatRepository, messageService, monitor,
		time.Hour, testRetention, testPageSize, log,
	)
	return sweepFixture{sweeper: sweeper, monitor: monitor, chats: chatRepository, messages: messageRepository}
}

func (f sweepFixture) newChat(t *testing.T) domain.Chat {
	t.Helper()
	chat, err := f.chats.SaveNew(domain.Chat{Members: domain.NewMemberSet(uuid.New(), uuid.New())})
	require.NoError(t, err)
	return chat
}

func (f sweepFixture) storeMessage(t *testing.T, chatID uuid.UUID, age time.Duration, permanent bool) domain.Message {
	t.Helper()
	message, err := f.messages.Save(domain.Message{
		ChatID:    chatID,
		SenderID:  uuid.New(),
		Content:   "payload",
		Permanent: permanent,
		At:        time.Now().UTC().Add(-age),
	})
	require.NoError(t, err)
	return message
}

func Test_Sweep_Removes_Expired_And_Cascades_Empty_Chats(t *testing.T) {
	req := require.New(t)
	f := newSweepFixture(t)

	// A chat whose only message is 8 days old disappears with it.
	doomedChat := f.newChat(t)
	doomedMessage := f.storeMessage(t, doomedChat.ID, 8*24*time.Hour, false)

	// A 30 day old permanent message keeps its chat alive.
	pinnedChat := f.newChat(t)
	pinnedMessage := f.storeMessage(t, pinnedChat.ID, 30*24*time.Hour, true)

	// A chat holding both an expired and a fresh message survives.
	mixedChat := f.newChat(t)
	expiredSibling := f.storeMessage(t, mixedChat.ID, 9*24*time.Hour, false)
	freshSibling := f.storeMessage(t, mixedChat.ID, time.Hour, false)

	f.sweeper.Sweep(context.Background())

	_, err := f.messages.GetByID(doomedMessage.ID)
	req.ErrorIs(err, errors.ErrNotFound)
	exists, err := f.chats.ExistsByID(doomedChat.ID)
	req.NoError(err)
	req.False(exists)

	_, err = f.messages.GetByID(pinnedMessage.ID)
	req.NoError(err)
	exists, err = f.chats.ExistsByID(pinnedChat.ID)
	req.NoError(err)
	req.True(exists)

	_, err = f.messages.GetByID(expiredSibling.ID)
	req.ErrorIs(err, errors.ErrNotFound)
	_, err = f.messages.GetByID(freshSibling.ID)
	req.NoError(err)
	exists, err = f.chats.ExistsByID(mixedChat.ID)
	req.NoError(err)
	req.True(exists)

	stats := f.monitor.Snapshot()
	req.Equal(uint64(2), stats.MessagesRemoved)
	req.Equal(uint64(1), stats.ChatsRemoved)
	req.Equal(uint64(0), stats.SweepErrors)
	req.False(stats.LastSweep.IsZero())
}

func Test_Sweep_Pages_Through_Large_Backlogs(t *testing.T) {
	req := require.New(t)
	f := newSweepFixture(t)

	// Well above the page size, so the sweep must follow the cursor.
	chat := f.newChat(t)
	backlog := testPageSize*3 + 1
	for i := 0; i < backlog; i++ {
		f.storeMessage(t, chat.ID, 8*24*time.Hour+time.Duration(i)*time.Minute, false)
	}

	f.sweeper.Sweep(context.Background())

	occupied, err := f.messages.HasMessages(chat.ID)
	req.NoError(err)
	req.False(occupied)

	stats := f.monitor.Snapshot()
	req.Equal(uint64(backlog), stats.MessagesRemoved)
	req.Equal(uint64(1), stats.ChatsRemoved)
}

func Test_Sweep_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	f := newSweepFixture(t)

	chat := f.newChat(t)
	f.storeMessage(t, chat.ID, 8*24*time.Hour, false)

	f.sweeper.Sweep(context.Background())
	f.sweeper.Sweep(context.Background())

	stats := f.monitor.Snapshot()
	req.Equal(uint64(1), stats.MessagesRemoved)
	req.Equal(uint64(0), stats.SweepErrors)
}

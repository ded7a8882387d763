//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"messenger/domain"
	"messenger/errors"
	"messenger/moderation"
	"messenger/repositories"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IMessageService interface {
	Send(senderID uuid.UUID, receiverIDs []uuid.UUID, content string) (domain.Message, error)
	Edit(messageID, callerID uuid.UUID, content string) (domain.Message, error)
	ToggleRetention(messageID, callerID uuid.UUID) (domain.Message, error)
	Delete(messageID uuid.UUID) error
	DeleteAsOwner(messageID, callerID uuid.UUID) error
	GetByID(messageID uuid.UUID) (domain.Message, error)
}

// MessageService owns the message lifecycle: validation, creation through
// chat resolution, author-only mutation, and deletion with the empty-chat
// cleanup. Both user deletes and the retention sweep funnel through the
// same Delete primitive.
type MessageService struct {
	messages  repositories.IMessageRepository
	users     repositories.IUserRepository
	chats     IChatService
	moderator moderation.Moderator
	maxLength int
	log       *slog.Logger
}

func NewMessageService(
	messages repositories.IMessageRepository,
	users repositories.IUserRepository,
	chats IChatService,
	moderator moderation.Moderator,
	maxLength int,
	log *slog.Logger,
) *MessageService {
	return &MessageService{
		messages:  messages,
		users:     users,
		chats:     chats,
		moderator: moderator,
		maxLength: maxLength,
		log:       log,
	}
}

// Send validates the content and receiver set, resolves the canonical chat
// for the participant set, and persists the new message. The sender's own
// id is silently dropped from the receivers; an unknown receiver fails the
// whole send naming the missing id.
func (s *MessageService) Send(senderID uuid.UUID, receiverIDs []uuid.UUID, content string) (domain.Message, error) {
	if err := s.checkContent(content); err != nil {
		return domain.Message{}, err
	}

	receivers := lo.Uniq(lo.Filter(receiverIDs, func(id uuid.UUID, _ int) bool {
		return id != senderID
	}))
	for _, id := range receivers {
		exists, err := s.users.ExistsByID(id)
		if err != nil {
			return domain.Message{}, err
		}
		if !exists {
			return domain.Message{}, fmt.Errorf("%w: user %s", errors.ErrNotFound, id)
		}
	}
	if len(receivers) == 0 {
		return domain.Message{}, errors.ErrNoReceivers
	}

	members := domain.NewMemberSet(append([]uuid.UUID{senderID}, receivers...)...)
	chat, err := s.chats.ResolveOrCreate(senderID, members)
	if err != nil {
		return domain.Message{}, err
	}

	return s.messages.Save(domain.Message{
		ChatID:    chat.ID,
		SenderID:  senderID,
		Receivers: receivers,
		Content:   s.moderator.Censor(content),
		At:        time.Now().UTC(),
	})
}

// Edit replaces the content and refreshes the timestamp. Only the original
// sender may edit.
func (s *MessageService) Edit(messageID, callerID uuid.UUID, content string) (domain.Message, error) {
	if err := s.checkContent(content); err != nil {
		return domain.Message{}, err
	}
	message, err := s.authored(messageID, callerID)
	if err != nil {
		return domain.Message{}, err
	}
	message.Content = s.moderator.Censor(content)
	message.At = time.Now().UTC()
	return s.messages.Save(message)
}

// ToggleRetention flips the permanent flag, pulling the message out of (or
// back into) the expiry sweep.
func (s *MessageService) ToggleRetention(messageID, callerID uuid.UUID) (domain.Message, error) {
	message, err := s.authored(messageID, callerID)
	if err != nil {
		return domain.Message{}, err
	}
	message.Permanent = !message.Permanent
	return s.messages.Save(message)
}

// Delete removes a message and then asks for the empty-chat cleanup. The
// ordering is load-bearing: the emptiness check must run after the row is
// gone, otherwise the chat always looks occupied by the very message being
// deleted.
func (s *MessageService) Delete(messageID uuid.UUID) error {
	message, err := s.GetByID(messageID)
	if err != nil {
		return err
	}
	chatID := message.ChatID
	if err := s.messages.Delete(messageID); err != nil {
		return err
	}
	return s.chats.DeleteIfEmpty(chatID)
}

// DeleteAsOwner is the caller-facing delete: author check, then the shared
// Delete primitive.
func (s *MessageService) DeleteAsOwner(messageID, callerID uuid.UUID) error {
	if _, err := s.authored(messageID, callerID); err != nil {
		return err
	}
	return s.Delete(messageID)
}

func (s *MessageService) GetByID(messageID uuid.UUID) (domain.Message, error) {
	message, err := s.messages.GetByID(messageID)
	if err == errors.ErrNotFound {
		return domain.Message{}, fmt.Errorf("%w: message %s", errors.ErrNotFound, messageID)
	}
	return message, err
}

// authored fetches the message and verifies the caller wrote it.
func (s *MessageService) authored(messageID, callerID uuid.UUID) (domain.Message, error) {
	message, err := s.GetByID(messageID)
	if err != nil {
		return domain.Message{}, err
	}
	if message.SenderID != callerID {
		return domain.Message{}, errors.ErrAccessDenied
	}
	return message, nil
}

func (s *MessageService) checkContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("%w: message cannot be empty", errors.ErrInvalidRequest)
	}
	if over := len([]rune(content)) - s.maxLength; over > 0 {
		return fmt.Errorf("%w: this message is %d characters too long", errors.ErrInvalidRequest, over)
	}
	return nil
}

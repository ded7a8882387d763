//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"

	"messenger/domain"
	"messenger/errors"
	"messenger/repositories"

	"github.com/google/uuid"
)

type IChatService interface {
	ResolveOrCreate(senderID uuid.UUID, members domain.MemberSet) (domain.Chat, error)
	GetOwned(chatID, callerID uuid.UUID) (domain.Chat, error)
	MyChats(callerID uuid.UUID) ([]domain.ChatView, error)
	DeleteIfEmpty(chatID uuid.UUID) error
	DeleteOwned(chatID, callerID uuid.UUID) error
}

// ChatService maps participant sets onto canonical chats and owns chat
// deletion, both the advisory empty-chat cleanup and the member-initiated
// delete with its message cascade.
type ChatService struct {
	chats    repositories.IChatRepository
	messages repositories.IMessageRepository
	users    repositories.IUserRepository
	log      *slog.Logger
}

func NewChatService(
	chats repositories.IChatRepository,
	messages repositories.IMessageRepository,
	users repositories.IUserRepository,
	log *slog.Logger,
) *ChatService {
	return &ChatService{chats: chats, messages: messages, users: users, log: log}
}

// ResolveOrCreate finds the sender's chat whose member set equals the given
// one, or creates it. Only the sender's own chats are scanned: the sender
// is in the set, so any matching chat must already list it as a member. A
// lost creation race is resolved by re-reading the winner through the
// canonical member-set key.
func (s *ChatService) ResolveOrCreate(senderID uuid.UUID, members domain.MemberSet) (domain.Chat, error) {
	existing, err := s.chats.ChatsForUser(senderID)
	if err != nil {
		return domain.Chat{}, err
	}
	for _, chat := range existing {
		if chat.Members.Equal(members) {
			return chat, nil
		}
	}

	chat, err := s.chats.SaveNew(domain.Chat{Members: members})
	if err == errors.ErrChatExists {
		s.log.Debug("Lost chat creation race, reusing existing chat", "members", members.CanonicalKey())
		return s.chats.GetByMembers(members)
	}
	if err != nil {
		return domain.Chat{}, err
	}
	return chat, nil
}

func (s *ChatService) GetOwned(chatID, callerID uuid.UUID) (domain.Chat, error) {
	chat, err := s.chats.GetByID(chatID)
	if err == errors.ErrNotFound {
		return domain.Chat{}, fmt.Errorf("%w: chat %s", errors.ErrNotFound, chatID)
	}
	if err != nil {
		return domain.Chat{}, err
	}
	if !chat.Members.Contains(callerID) {
		return domain.Chat{}, errors.ErrAccessDenied
	}
	return chat, nil
}

// MyChats lists the caller's chats with member summaries.
func (s *ChatService) MyChats(callerID uuid.UUID) ([]domain.ChatView, error) {
	chats, err := s.chats.ChatsForUser(callerID)
	if err != nil {
		return nil, err
	}
	if len(chats) == 0 {
		return nil, fmt.Errorf("%w: your chat list is empty", errors.ErrEmptyList)
	}

	views := make([]domain.ChatView, 0, len(chats))
	for _, chat := range chats {
		view := domain.ChatView{ID: chat.ID}
		for _, memberID := range chat.Members {
			member, err := s.users.GetByID(memberID)
			if err != nil {
				return nil, err
			}
			view.Members = append(view.Members, member.Summary())
		}
		views = append(views, view)
	}
	return views, nil
}

// DeleteIfEmpty removes the chat when its last message is gone. It is
// advisory cleanup invoked after every message deletion: a chat that has
// already disappeared, or still holds messages, is left alone.
func (s *ChatService) DeleteIfEmpty(chatID uuid.UUID) error {
	exists, err := s.chats.ExistsByID(chatID)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	occupied, err := s.messages.HasMessages(chatID)
	if err != nil {
		return err
	}
	if occupied {
		return nil
	}
	s.log.Debug("Removing empty chat", "chatId", chatID)
	return s.chats.Delete(chatID)
}

// DeleteOwned removes a chat on behalf of one of its members, cascading the
// deletion to every message the chat owns.
func (s *ChatService) DeleteOwned(chatID, callerID uuid.UUID) error {
	exists, err := s.chats.ExistsByID(chatID)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: chat %s", errors.ErrNotFound, chatID)
	}
	chat, err := s.chats.GetByID(chatID)
	if err != nil {
		return err
	}
	if !chat.Members.Contains(callerID) {
		return errors.ErrAccessDenied
	}
	if err := s.messages.DeleteByChat(chatID); err != nil {
		return err
	}
	return s.chats.Delete(chatID)
}

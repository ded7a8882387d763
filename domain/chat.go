package domain

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// MemberSet is the unordered, unique set of user ids belonging to a chat.
type MemberSet []uuid.UUID

// NewMemberSet deduplicates the given ids.
func NewMemberSet(ids ...uuid.UUID) MemberSet {
	return MemberSet(lo.Uniq(ids))
}

// Contains reports membership of a single user id.
func (m MemberSet) Contains(id uuid.UUID) bool {
	return lo.Contains(m, id)
}

// Equal compares two member sets as sets: same cardinality and mutual
// containment, independent of ordering.
func (m MemberSet) Equal(other MemberSet) bool {
	if len(m) != len(other) {
		return false
	}
	return lo.Every(m, other) && lo.Every(other, m)
}

// CanonicalKey returns a stable textual form of the set, identical for any
// ordering of the same members. Used as the storage uniqueness key that
// keeps two concurrent sends from creating duplicate chats.
func (m MemberSet) CanonicalKey() string {
	ids := lo.Map(m, func(id uuid.UUID, _ int) string { return id.String() })
	sort.Strings(ids)
	return strings.Join(ids, ",")
}

// Chat is a persistent grouping of users sharing a message thread, keyed by
// its exact member set. Messages are owned by the chat but stored apart and
// reached through the chat-message index.
type Chat struct {
	ID      uuid.UUID
	Members MemberSet
}

// ChatView pairs a chat id with the member summaries shown in listings.
type ChatView struct {
	ID      uuid.UUID
	Members []Summary
}

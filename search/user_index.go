//go:generate go run go.uber.org/mock/mockgen -source=user_index.go -destination=../mocks/mock_user_index.go -package=mocks
// Package search maintains the full-text index used by the user directory.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"messenger/domain"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

type IUserIndex interface {
	Index(user domain.User) error
	Remove(id uuid.UUID) error
	Search(ctx context.Context, phrase string, limit int) ([]uuid.UUID, error)
}

type UserIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewUserIndex(writer *bluge.Writer, log *slog.Logger) IUserIndex {
	return &UserIndex{writer: writer, log: log}
}

// Index upserts one user document. Username, first name and surname are
// folded into a single searchable field, matching the phrase search the
// directory exposes.
func (i *UserIndex) Index(user domain.User) error {
	name := strings.ToLower(fmt.Sprintf("%s %s %s", user.Username, user.FirstName, user.Surname))
	doc := bluge.NewDocument(user.ID.String()).
		AddField(bluge.NewTextField("name", name).StoreValue())
	return i.writer.Update(doc.ID(), doc)
}

func (i *UserIndex) Remove(id uuid.UUID) error {
	return i.writer.Delete(bluge.Identifier(id.String()))
}

// Search returns the ids of users whose name matches the phrase, best
// matches first. A missing user id in a stored document is skipped rather
// than failing the whole search.
func (i *UserIndex) Search(ctx context.Context, phrase string, limit int) ([]uuid.UUID, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("index reader: %w", err)
	}
	defer reader.Close()

	phrase = strings.ToLower(strings.TrimSpace(phrase))
	query := bluge.NewBooleanQuery().
		AddShould(bluge.NewMatchQuery(phrase).SetField("name")).
		AddShould(bluge.NewWildcardQuery("*" + phrase + "*").SetField("name"))

	iterator, err := reader.Search(ctx, bluge.NewTopNSearch(limit, query))
	if err != nil {
		return nil, fmt.Errorf("index search: %w", err)
	}

	var ids []uuid.UUID
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				if id, parseErr := uuid.Parse(string(value)); parseErr == nil {
					ids = append(ids, id)
				} else {
					i.log.Warn("Skipping document with corrupt id", "value", string(value))
				}
			}
			return true
		})
		if err != nil {
			return nil, err
		}
	}
	return ids, nil
}

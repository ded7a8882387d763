package search

import (
	"context"
	"log/slog"
	"testing"

	"messenger/domain"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func openUserIndex(t *testing.T) IUserIndex {
	t.Helper()
	req := require.New(t)
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewUserIndex(writer, slog.Default())
}

func Test_UserIndex_Search(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	index := openUserIndex(t)

	alice := domain.User{ID: uuid.New(), Username: "alice42", FirstName: "Alice", Surname: "Martin"}
	bob := domain.User{ID: uuid.New(), Username: "bob", FirstName: "Bob", Surname: "Durand"}
	req.NoError(index.Index(alice))
	req.NoError(index.Index(bob))

	ids, err := index.Search(ctx, "Alice", 10)
	req.NoError(err)
	req.Equal([]uuid.UUID{alice.ID}, ids)

	// Surnames are part of the searchable name too.
	ids, err = index.Search(ctx, "durand", 10)
	req.NoError(err)
	req.Equal([]uuid.UUID{bob.ID}, ids)

	ids, err = index.Search(ctx, "nobody", 10)
	req.NoError(err)
	req.Empty(ids)
}

func Test_UserIndex_Reindex_And_Remove(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	index := openUserIndex(t)

	user := domain.User{ID: uuid.New(), Username: "clara", FirstName: "Clara", Surname: "Petit"}
	req.NoError(index.Index(user))

	// An updated profile replaces the previous document.
	user.Surname = "Grand"
	req.NoError(index.Index(user))

	ids, err := index.Search(ctx, "grand", 10)
	req.NoError(err)
	req.Equal([]uuid.UUID{user.ID}, ids)

	req.NoError(index.Remove(user.ID))
	ids, err = index.Search(ctx, "clara", 10)
	req.NoError(err)
	req.Empty(ids)
}

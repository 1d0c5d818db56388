package service_test

import (
	"context"
	"testing"

	"booksite/dao"
	"booksite/pkg/database/dbtest"
	"booksite/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	alice int64 = 1001
	bob   int64 = 1002
)

func newBookmarkService(t *testing.T) (*service.BookmarkService, *gorm.DB) {
	db := dbtest.New(t)
	return &service.BookmarkService{
		DB:          db,
		PageDAO:     dao.NewBookPageDAO(db),
		BookMarkDAO: dao.NewBookMarkDAO(db),
		RankDAO:     dao.NewBookRankDAO(db),
	}, db
}

func favCount(t *testing.T, svc *service.BookmarkService, bookID int64) int64 {
	t.Helper()
	n, err := svc.GetFavCount(context.Background(), bookID)
	require.NoError(t, err)
	return n
}

func TestBookmarkService_AddNew(t *testing.T) {
	svc, db := newBookmarkService(t)
	pages := dbtest.SeedBook(t, db, 1, "凡人修仙传", 3)
	ctx := context.Background()

	created, err := svc.Add(ctx, alice, pages[0].ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, int64(1), favCount(t, svc, 1))

	list, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pages[0].ID, list[0].PageID)
}

func TestBookmarkService_AddSameBookMovesPage(t *testing.T) {
	svc, db := newBookmarkService(t)
	pages := dbtest.SeedBook(t, db, 1, "凡人修仙传", 3)
	ctx := context.Background()

	_, err := svc.Add(ctx, alice, pages[0].ID)
	require.NoError(t, err)
	first, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, first, 1)

	created, err := svc.Add(ctx, alice, pages[2].ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, int64(1), favCount(t, svc, 1), "moving a bookmark must not change the counter")

	list, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, pages[2].ID, list[0].PageID)
	assert.NotEqual(t, first[0].ID, list[0].ID, "bookmark is recreated on move")
}

func TestBookmarkService_AddTwoUsersCountsTwice(t *testing.T) {
	svc, db := newBookmarkService(t)
	pages := dbtest.SeedBook(t, db, 1, "凡人修仙传", 1)
	ctx := context.Background()

	_, err := svc.Add(ctx, alice, pages[0].ID)
	require.NoError(t, err)
	_, err = svc.Add(ctx, bob, pages[0].ID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), favCount(t, svc, 1))
}

func TestBookmarkService_AddUnknownPage(t *testing.T) {
	svc, db := newBookmarkService(t)
	dbtest.SeedBook(t, db, 1, "凡人修仙传", 1)

	_, err := svc.Add(context.Background(), alice, 999999)
	assert.ErrorIs(t, err, service.ErrPageNotFound)
	assert.Equal(t, int64(0), favCount(t, svc, 1))
}

func TestBookmarkService_Delete(t *testing.T) {
	svc, db := newBookmarkService(t)
	pages := dbtest.SeedBook(t, db, 1, "凡人修仙传", 1)
	ctx := context.Background()

	_, err := svc.Add(ctx, alice, pages[0].ID)
	require.NoError(t, err)
	list, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, alice, list[0].ID))
	assert.Equal(t, int64(0), favCount(t, svc, 1))

	list, err = svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBookmarkService_DeleteMissingOrForeign(t *testing.T) {
	svc, db := newBookmarkService(t)
	pages := dbtest.SeedBook(t, db, 1, "凡人修仙传", 1)
	ctx := context.Background()

	_, err := svc.Add(ctx, alice, pages[0].ID)
	require.NoError(t, err)
	list, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)

	err = svc.Delete(ctx, bob, list[0].ID)
	assert.ErrorIs(t, err, service.ErrBookmarkNotFound)
	assert.Equal(t, int64(1), favCount(t, svc, 1))

	err = svc.Delete(ctx, alice, list[0].ID+1000)
	assert.ErrorIs(t, err, service.ErrBookmarkNotFound)
	assert.Equal(t, int64(1), favCount(t, svc, 1))

	list, err = svc.List(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBookmarkService_ListScopedToUser(t *testing.T) {
	svc, db := newBookmarkService(t)
	a := dbtest.SeedBook(t, db, 1, "A", 1)
	b := dbtest.SeedBook(t, db, 2, "B", 1)
	ctx := context.Background()

	_, err := svc.Add(ctx, alice, a[0].ID)
	require.NoError(t, err)
	_, err = svc.Add(ctx, bob, b[0].ID)
	require.NoError(t, err)

	list, err := svc.List(ctx, alice)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, alice, list[0].UserID)
	assert.Equal(t, int64(1), list[0].BookID)
	require.NotNil(t, list[0].Book)
	assert.Equal(t, "A", list[0].Book.Title)
}

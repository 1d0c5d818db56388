package dao_test

import (
	"context"
	"testing"

	"booksite/dao"
	"booksite/models"
	"booksite/pkg/database/dbtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookMarkDAO_GetByUserBook(t *testing.T) {
	db := dbtest.New(t)
	pages := dbtest.SeedBook(t, db, 1, "雪中悍刀行", 2)
	marks := dao.NewBookMarkDAO(db)
	ctx := context.Background()

	got, err := marks.GetByUserBook(ctx, 10, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, marks.Create(ctx, &models.BookMark{UserID: 10, BookID: 1, PageID: pages[1].ID}))

	got, err = marks.GetByUserBook(ctx, 10, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, pages[1].ID, got.PageID)
}

func TestBookMarkDAO_UniqueUserBook(t *testing.T) {
	db := dbtest.New(t)
	pages := dbtest.SeedBook(t, db, 1, "雪中悍刀行", 2)
	marks := dao.NewBookMarkDAO(db)
	ctx := context.Background()

	require.NoError(t, marks.Create(ctx, &models.BookMark{UserID: 10, BookID: 1, PageID: pages[0].ID}))
	err := marks.Create(ctx, &models.BookMark{UserID: 10, BookID: 1, PageID: pages[1].ID})
	require.Error(t, err, "uk_user_book should reject a second bookmark for the same book")
}

func TestBookMarkDAO_ListByUser(t *testing.T) {
	db := dbtest.New(t)
	a := dbtest.SeedBook(t, db, 1, "A", 1)
	b := dbtest.SeedBook(t, db, 2, "B", 1)
	marks := dao.NewBookMarkDAO(db)
	ctx := context.Background()

	require.NoError(t, marks.Create(ctx, &models.BookMark{UserID: 10, BookID: 1, PageID: a[0].ID}))
	require.NoError(t, marks.Create(ctx, &models.BookMark{UserID: 10, BookID: 2, PageID: b[0].ID}))
	require.NoError(t, marks.Create(ctx, &models.BookMark{UserID: 20, BookID: 1, PageID: a[0].ID}))

	items, err := marks.ListByUser(ctx, 10)
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Equal(t, int64(10), item.UserID)
		require.NotNil(t, item.Book)
		require.NotNil(t, item.Page)
		assert.Equal(t, item.BookID, item.Book.ID)
	}

	_, err = marks.GetByIDAndUser(ctx, items[0].ID, 20)
	assert.True(t, dao.IsNotFound(err))
}

func TestBookMarkDAO_DeleteByID(t *testing.T) {
	db := dbtest.New(t)
	pages := dbtest.SeedBook(t, db, 1, "A", 1)
	marks := dao.NewBookMarkDAO(db)
	ctx := context.Background()

	mark := &models.BookMark{UserID: 10, BookID: 1, PageID: pages[0].ID}
	require.NoError(t, marks.Create(ctx, mark))

	deleted, err := marks.DeleteByID(ctx, mark.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = marks.DeleteByID(ctx, mark.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

package service

import (
	"booksite/dao"
	"booksite/models"
	"booksite/pkg/log"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrPageNotFound     = errors.New("章节不存在")
	ErrBookmarkNotFound = errors.New("书签不存在")
)

var _ IBookmarkService = (*BookmarkService)(nil)

type IBookmarkService interface {
	List(ctx context.Context, userID int64) ([]*models.BookMark, error)
	// Add 把用户在该书的书签移到指定章节，返回是否为新建书签
	Add(ctx context.Context, userID int64, pageID int64) (bool, error)
	Delete(ctx context.Context, userID int64, bookmarkID int64) error
	GetFavCount(ctx context.Context, bookID int64) (int64, error)
}

type BookmarkService struct {
	DB          *gorm.DB
	PageDAO     *dao.BookPageDAO
	BookMarkDAO *dao.BookMarkDAO
	RankDAO     *dao.BookRankDAO
}

func (s *BookmarkService) List(ctx context.Context, userID int64) ([]*models.BookMark, error) {
	return s.BookMarkDAO.ListByUser(ctx, userID)
}

func (s *BookmarkService) Add(ctx context.Context, userID int64, pageID int64) (bool, error) {
	page, err := s.PageDAO.GetByID(ctx, pageID)
	if err != nil {
		if dao.IsNotFound(err) {
			return false, ErrPageNotFound
		}
		return false, err
	}

	created, err := s.moveTo(ctx, userID, page)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// 同一用户同一本书的并发请求，重试一次走替换逻辑
		log.L.Info("bookmark create conflict, retry",
			zap.Int64("user_id", userID), zap.Int64("book_id", page.BookID))
		created, err = s.moveTo(ctx, userID, page)
	}
	return created, err
}

// moveTo 已有书签时删除后重建，不改变收藏计数；没有书签时新建并计数 +1
func (s *BookmarkService) moveTo(ctx context.Context, userID int64, page *models.BookPage) (bool, error) {
	created := false
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		marks := dao.NewBookMarkDAO(tx)

		existing, err := marks.GetByUserBook(ctx, userID, page.BookID)
		if err != nil {
			return err
		}
		if existing != nil {
			if _, err := marks.DeleteByID(ctx, existing.ID); err != nil {
				return err
			}
		}

		mark := &models.BookMark{UserID: userID, BookID: page.BookID, PageID: page.ID}
		if err := marks.Create(ctx, mark); err != nil {
			return err
		}
		if existing != nil {
			return nil
		}

		created = true
		return dao.NewBookRankDAO(tx).IncrFavCount(ctx, page.BookID, 1)
	})
	if err != nil {
		return false, err
	}
	return created, nil
}

func (s *BookmarkService) Delete(ctx context.Context, userID int64, bookmarkID int64) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		marks := dao.NewBookMarkDAO(tx)

		mark, err := marks.GetByIDAndUser(ctx, bookmarkID, userID)
		if err != nil {
			if dao.IsNotFound(err) {
				return ErrBookmarkNotFound
			}
			return err
		}

		deleted, err := marks.DeleteByID(ctx, mark.ID)
		if err != nil {
			return err
		}
		if !deleted {
			return ErrBookmarkNotFound
		}
		return dao.NewBookRankDAO(tx).IncrFavCount(ctx, mark.BookID, -1)
	})
}

func (s *BookmarkService) GetFavCount(ctx context.Context, bookID int64) (int64, error) {
	rank, err := s.RankDAO.GetByBookID(ctx, bookID)
	if err != nil {
		return 0, err
	}
	return rank.FavCount, nil
}

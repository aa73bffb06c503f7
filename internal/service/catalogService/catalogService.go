package catalogService

import (
	"book_catalog_web/config"
	"book_catalog_web/data/cache"
	"book_catalog_web/internal/catalogApi"
	"book_catalog_web/internal/model"
	"book_catalog_web/internal/service"
	"book_catalog_web/utils"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=catalogService.go -destination=mocks/mocks.go -package=mocks

type CatalogApi interface {
	GetBooks(ctx context.Context, page, count int) (booksPage model.BooksPage, err error)
	GetBook(ctx context.Context, identifier string) (book model.Book, err error)
	GetReviews(ctx context.Context, identifier string) (reviews []model.Review, err error)
}

type Cache interface {
	GetBooksForPage(ctx context.Context, page, count int) (booksPage model.BooksPage, err error)
	SetBooksForPage(ctx context.Context, booksPage model.BooksPage) error
}

type CatalogService struct {
	cfg        *config.Config
	catalogApi CatalogApi
	cache      Cache
	totalPages atomic.Int64
}

func New(cfg *config.Config, catalogApi CatalogApi, cache Cache) *CatalogService {
	s := &CatalogService{
		cfg:        cfg,
		catalogApi: catalogApi,
		cache:      cache,
	}
	s.totalPages.Store(int64(cfg.Grid.TotalPages))
	return s
}

// TotalPages is the configured bound until the catalog reports its size.
func (s *CatalogService) TotalPages() int {
	return int(s.totalPages.Load())
}

func (s *CatalogService) rememberTotalPages(booksPage model.BooksPage) {
	if booksPage.TotalPages > 0 {
		s.totalPages.Store(int64(booksPage.TotalPages))
	}
}

func (s *CatalogService) GetBooksForPage(ctx context.Context, page int) (booksPage model.BooksPage, err error) {
	op := "CatalogService.GetBooksForPage"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if page < 1 || page > s.TotalPages() {
		return model.BooksPage{}, ErrIncorrectPage
	}

	count := s.cfg.Grid.PageSize

	booksPage, err = s.cache.GetBooksForPage(ctx, page, count)
	if err == nil {
		s.rememberTotalPages(booksPage)
		return booksPage, nil
	}
	if !errors.Is(err, cache.ErrNotFound) {
		slog.Warn("got error from cache.GetBooksForPage", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	booksPage, err = s.catalogApi.GetBooks(ctx, page, count)
	if err != nil {
		return model.BooksPage{}, fmt.Errorf("get books error: %w", err)
	}

	s.rememberTotalPages(booksPage)

	if err = s.cache.SetBooksForPage(context.WithoutCancel(ctx), booksPage); err != nil {
		slog.Warn("got error from cache.SetBooksForPage", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}

	return booksPage, nil
}

// GetBookDetails loads the book and its reviews concurrently. Reviews are
// optional: a failed reviews read leaves the list empty.
func (s *CatalogService) GetBookDetails(ctx context.Context, identifier string) (details model.BookDetails, err error) {
	op := "CatalogService.GetBookDetails"
	rqID := utils.GetRequestIDFromCtx(ctx)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		book, err := s.catalogApi.GetBook(gCtx, identifier)
		if err != nil {
			return err
		}
		details.Book = book
		return nil
	})

	g.Go(func() error {
		reviews, err := s.catalogApi.GetReviews(gCtx, identifier)
		if err != nil {
			slog.Warn(
				"got error from catalogApi.GetReviews",
				slog.String("rqID", rqID),
				slog.String("op", op),
				slog.String("identifier", identifier),
				slog.String("err", err.Error()),
			)
			return nil
		}
		details.Reviews = reviews
		return nil
	})

	if err = g.Wait(); err != nil {
		if errors.Is(err, catalogApi.ErrNotFound) {
			return model.BookDetails{}, service.ErrNotFound
		}
		return model.BookDetails{}, fmt.Errorf("get book details error: %w", err)
	}

	if details.Reviews == nil {
		details.Reviews = []model.Review{}
	}

	return details, nil
}

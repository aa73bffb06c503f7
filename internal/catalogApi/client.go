package catalogApi

import (
	"book_catalog_web/config"
	"book_catalog_web/internal/model"
	"book_catalog_web/utils"
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const totalCountHeader = "X-Total-Count"

type Client struct {
	cfg    *config.Config
	client *http.Client
}

func New(cfg *config.Config) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Catalog.Timeout},
	}
}

// GetBooks reads one page of book summaries. TotalPages in the result is
// derived from the X-Total-Count header and stays zero when it is absent.
func (c *Client) GetBooks(ctx context.Context, page, count int) (booksPage model.BooksPage, err error) {
	op := "catalogApi.GetBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)

	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("count", strconv.Itoa(count))
	fullURL := c.cfg.Catalog.BaseUrl + "/books?" + params.Encode()

	var books []model.BookPreview
	header, err := c.getJSON(ctx, fullURL, &books)
	if err != nil {
		slog.Error(
			"error while getting books",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("url", fullURL),
			slog.String("err", err.Error()),
		)
		return model.BooksPage{}, err
	}

	if books == nil {
		books = []model.BookPreview{}
	}

	booksPage = model.BooksPage{
		Books: books,
		Page:  page,
		Count: count,
	}

	if total := header.Get(totalCountHeader); total != "" {
		totalItems, convErr := strconv.Atoi(total)
		if convErr != nil || totalItems < 0 || totalItems > math.MaxInt-count {
			slog.Warn(
				"incorrect total count header",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.String("value", total),
			)
		} else {
			booksPage.TotalPages = (totalItems + count - 1) / count
		}
	}

	slog.Debug("got books", slog.String("op", op), slog.String("rqID", rqID), slog.Int("page", page), slog.Int("len", len(books)))

	return booksPage, nil
}

func (c *Client) GetBook(ctx context.Context, identifier string) (book model.Book, err error) {
	fullURL := c.cfg.Catalog.BaseUrl + "/book/" + url.PathEscape(identifier)

	if _, err = c.getJSON(ctx, fullURL, &book); err != nil {
		return model.Book{}, err
	}

	return book, nil
}

func (c *Client) GetReviews(ctx context.Context, identifier string) (reviews []model.Review, err error) {
	fullURL := c.cfg.Catalog.BaseUrl + "/reviews/" + url.PathEscape(identifier)

	if _, err = c.getJSON(ctx, fullURL, &reviews); err != nil {
		return nil, err
	}

	return reviews, nil
}

func (c *Client) getJSON(ctx context.Context, fullURL string, dst any) (http.Header, error) {
	op := "catalogApi.getJSON"
	rqID := utils.GetRequestIDFromCtx(ctx)
	slog.Info("Visiting", slog.String("op", op), slog.String("rqID", rqID), slog.String("url", fullURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %d", ErrBadStatus, resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return nil, fmt.Errorf("decode body err: %w", err)
	}

	return resp.Header, nil
}

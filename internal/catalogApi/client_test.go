package catalogApi

import (
	"book_catalog_web/config"
	"book_catalog_web/internal/model"
	"context"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type catalogApiSuite struct {
	suite.Suite

	cfg    *config.Config
	client *Client
}

func TestCatalogApiSuite(t *testing.T) {
	suite.Run(t, new(catalogApiSuite))
}

func (s *catalogApiSuite) SetupSuite() {
	s.cfg = &config.Config{
		Catalog: config.Catalog{
			BaseUrl: "http://catalog.test",
		},
	}
}

func (s *catalogApiSuite) SetupTest() {
	s.client = New(s.cfg)
}

func (s *catalogApiSuite) Test_GetBooks_Success() {
	defer gock.Off()

	gock.New(s.cfg.Catalog.BaseUrl).
		Get("/books").
		MatchParams(map[string]string{"page": "2", "count": "18"}).
		Reply(200).
		SetHeader("Content-Type", "application/json").
		BodyString(`[{"identifier":"B000FA5KK0","imageUrl":"http://img.test/1.jpg","title":"ignored"},{"identifier":"B000FA5M3K","imageUrl":"http://img.test/2.jpg"}]`)

	res, err := s.client.GetBooks(context.Background(), 2, 18)

	expected := model.BooksPage{
		Books: []model.BookPreview{
			{Identifier: "B000FA5KK0", ImageUrl: "http://img.test/1.jpg"},
			{Identifier: "B000FA5M3K", ImageUrl: "http://img.test/2.jpg"},
		},
		Page:  2,
		Count: 18,
	}

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), expected, res)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *catalogApiSuite) Test_GetBooks_TotalPagesFromHeader() {
	defer gock.Off()

	gock.New(s.cfg.Catalog.BaseUrl).
		Get("/books").
		MatchParams(map[string]string{"page": "1", "count": "18"}).
		Reply(200).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Total-Count", "37").
		BodyString(`[]`)

	res, err := s.client.GetBooks(context.Background(), 1, 18)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 3, res.TotalPages)
	assert.Equal(s.T(), []model.BookPreview{}, res.Books)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *catalogApiSuite) Test_GetBooks_IncorrectTotalHeaderIgnored() {
	defer gock.Off()

	gock.New(s.cfg.Catalog.BaseUrl).
		Get("/books").
		Reply(200).
		SetHeader("X-Total-Count", "many").
		BodyString(`[{"identifier":"a","imageUrl":"b"}]`)

	res, err := s.client.GetBooks(context.Background(), 1, 18)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 0, res.TotalPages)
	assert.Len(s.T(), res.Books, 1)
}

func (s *catalogApiSuite) Test_GetBooks_OversizedTotalHeaderIgnored() {
	defer gock.Off()

	for _, total := range []string{strconv.Itoa(math.MaxInt), strconv.Itoa(math.MaxInt - 17), "-5"} {
		gock.New(s.cfg.Catalog.BaseUrl).
			Get("/books").
			Reply(200).
			SetHeader("X-Total-Count", total).
			BodyString(`[{"identifier":"a","imageUrl":"b"}]`)

		res, err := s.client.GetBooks(context.Background(), 1, 18)

		assert.Nil(s.T(), err, total)
		assert.Equal(s.T(), 0, res.TotalPages, total)
	}

	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *catalogApiSuite) Test_GetBooks_LargestTotalHeader() {
	defer gock.Off()

	gock.New(s.cfg.Catalog.BaseUrl).
		Get("/books").
		Reply(200).
		SetHeader("X-Total-Count", strconv.Itoa(math.MaxInt-18)).
		BodyString(`[]`)

	res, err := s.client.GetBooks(context.Background(), 1, 18)

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), (math.MaxInt-18+17)/18, res.TotalPages)
}

func (s *catalogApiSuite) Test_GetBooks_BadStatus() {
	defer gock.Off()

	gock.New(s.cfg.Catalog.BaseUrl).
		Get("/books").
		Reply(502)

	_, err := s.client.GetBooks(context.Background(), 1, 18)

	assert.True(s.T(), errors.Is(err, ErrBadStatus))
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *catalogApiSuite) Test_GetBooks_MalformedBody() {
	defer gock.Off()

	gock.New(s.cfg.Catalog.BaseUrl).
		Get("/books").
		Reply(200).
		BodyString(`{"message":`)

	_, err := s.client.GetBooks(context.Background(), 1, 18)

	assert.NotNil(s.T(), err)
}

func (s *catalogApiSuite) Test_GetBook_Success() {
	defer gock.Off()

	gock.New(s.cfg.Catalog.BaseUrl).
		Get("/book/B000FA5KK0").
		Reply(200).
		BodyString(`{"identifier":"B000FA5KK0","title":"Dune","imageUrl":"http://img.test/1.jpg","description":"desert","price":4.99,"categories":["Books","Science Fiction"]}`)

	res, err := s.client.GetBook(context.Background(), "B000FA5KK0")

	expected := model.Book{
		Identifier:  "B000FA5KK0",
		Title:       "Dune",
		ImageUrl:    "http://img.test/1.jpg",
		Description: "desert",
		Price:       4.99,
		Categories:  []string{"Books", "Science Fiction"},
	}

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), expected, res)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *catalogApiSuite) Test_GetBook_NotFound() {
	defer gock.Off()

	gock.New(s.cfg.Catalog.BaseUrl).
		Get("/book/missing").
		Reply(404)

	_, err := s.client.GetBook(context.Background(), "missing")

	assert.Equal(s.T(), ErrNotFound, err)
}

func (s *catalogApiSuite) Test_GetReviews_Success() {
	defer gock.Off()

	gock.New(s.cfg.Catalog.BaseUrl).
		Get("/reviews/B000FA5KK0").
		Reply(200).
		BodyString(`[{"reviewerID":"A1","reviewerName":"Ann","overall":5,"summary":"great","reviewText":"loved it"}]`)

	res, err := s.client.GetReviews(context.Background(), "B000FA5KK0")

	expected := []model.Review{
		{ReviewerID: "A1", ReviewerName: "Ann", Overall: 5, Summary: "great", ReviewText: "loved it"},
	}

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), expected, res)
}

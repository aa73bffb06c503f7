package viewConverter

import (
	"book_catalog_web/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridLoading(t *testing.T) {
	request := model.PageRequest{GridID: "g1", Page: 2, Count: 18, Tag: "abc"}

	view := GridLoading(request, []int{0, 1, 2}, 99)

	assert.True(t, view.Loading)
	assert.Equal(t, 2, view.Page)
	assert.Equal(t, "g1", view.GridID)
	assert.Equal(t, "/grid/books?grid=g1&page=2&tag=abc", view.FetchUrl)
	assert.Len(t, view.Placeholders, 3)
	assert.Empty(t, view.Tiles)
	assert.NotEmpty(t, view.Pager)
}

func TestGridBooks(t *testing.T) {
	booksPage := model.BooksPage{
		Page: 1,
		Books: []model.BookPreview{
			{Identifier: "B001", ImageUrl: "http://img.test/1.jpg"},
			{Identifier: "B 002", ImageUrl: "http://img.test/2.jpg"},
		},
	}

	view := GridBooks(booksPage, "g1", 99)

	assert.False(t, view.Loading)
	assert.Equal(t, "/grid?grid=g1&page=2", view.Pager[3].FetchUrl)
	assert.Equal(t, []Tile{
		{Identifier: "B001", ImageUrl: "http://img.test/1.jpg", Href: "/review/B001"},
		{Identifier: "B 002", ImageUrl: "http://img.test/2.jpg", Href: "/review/B%20002"},
	}, view.Tiles)
	assert.Empty(t, view.Placeholders)
}

func TestPagerLinks(t *testing.T) {
	links := pagerLinks("g1", 1, 3)

	assert.Equal(t, "/", links[0].Href)
	assert.Equal(t, "/grid?grid=g1&page=1", links[0].FetchUrl)
	assert.Equal(t, "/?page=3", links[len(links)-1].Href)
	assert.Equal(t, "/grid?grid=g1&page=3", links[len(links)-1].FetchUrl)
}

func TestBook(t *testing.T) {
	details := model.BookDetails{
		Book: model.Book{
			Identifier: "B001",
			ImageUrl:   "http://img.test/1.jpg",
			Price:      4.5,
			Categories: []string{"Books", "Fantasy"},
		},
		Reviews: []model.Review{
			{ReviewerID: "A1", Overall: 4, Summary: "good"},
			{ReviewerID: "A2", ReviewerName: "Bob", Overall: 2.5},
		},
	}

	page := Book(details)

	assert.Equal(t, "B001", page.BookTitle)
	assert.Equal(t, "$4.50", page.Price)
	assert.Equal(t, "Books, Fantasy", page.Categories)
	assert.Equal(t, []ReviewView{
		{Reviewer: "A1", Rating: "4.0", Summary: "good"},
		{Reviewer: "Bob", Rating: "2.5"},
	}, page.Reviews)
}

func TestUserAction(t *testing.T) {
	page := UserAction(model.Session{PageRequest: model.PageRequest{Page: 4}})
	assert.Equal(t, 4, page.LastPage)
	assert.Equal(t, "/?page=4", page.ContinueHref)

	page = UserAction(model.Session{})
	assert.Equal(t, 1, page.LastPage)
	assert.Equal(t, "/", page.ContinueHref)
}

package viewConverter

import (
	"book_catalog_web/internal/grid"
	"book_catalog_web/internal/model"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	NavHome       = "home"
	NavUserAction = "user_action"
)

type Tile struct {
	Identifier string
	ImageUrl   string
	Href       string
}

// GridView is the book grid in one of its two states: Loading with
// placeholders and a pending read, or resolved with one tile per book.
type GridView struct {
	Loading      bool
	GridID       string
	Page         int
	FetchUrl     string
	Placeholders []int
	Tiles        []Tile
	Pager        []PagerLink
}

type PagerLink struct {
	grid.PagerItem
	Href     string
	FetchUrl string
}

type HomePage struct {
	Title string
	Nav   string
	Grid  GridView
}

type ReviewView struct {
	Reviewer string
	Rating   string
	Summary  string
	Text     string
}

type BookPage struct {
	Title       string
	Nav         string
	Identifier  string
	BookTitle   string
	ImageUrl    string
	Description string
	Price       string
	Categories  string
	Reviews     []ReviewView
}

type UserActionPage struct {
	Title        string
	Nav          string
	LastPage     int
	ContinueHref string
}

type MessagePage struct {
	Title   string
	Nav     string
	Message string
}

func ReviewHref(identifier string) string {
	return "/review/" + url.PathEscape(identifier)
}

func HomeHref(page int) string {
	if page <= 1 {
		return "/"
	}
	return "/?page=" + strconv.Itoa(page)
}

// changePageUrl keeps the grid instance so a pager click replaces only this
// grid's outstanding read.
func changePageUrl(gridID string, page int) string {
	params := url.Values{}
	params.Set("grid", gridID)
	params.Set("page", strconv.Itoa(page))
	return "/grid?" + params.Encode()
}

func pagerLinks(gridID string, active, totalPages int) []PagerLink {
	items := grid.Pager(active, totalPages)
	links := make([]PagerLink, 0, len(items))
	for _, item := range items {
		links = append(links, PagerLink{
			PagerItem: item,
			Href:      HomeHref(item.Page),
			FetchUrl:  changePageUrl(gridID, item.Page),
		})
	}
	return links
}

func GridLoading(request model.PageRequest, placeholders []int, totalPages int) GridView {
	params := url.Values{}
	params.Set("grid", request.GridID)
	params.Set("page", strconv.Itoa(request.Page))
	params.Set("tag", request.Tag)

	return GridView{
		Loading:      true,
		GridID:       request.GridID,
		Page:         request.Page,
		FetchUrl:     "/grid/books?" + params.Encode(),
		Placeholders: placeholders,
		Pager:        pagerLinks(request.GridID, request.Page, totalPages),
	}
}

func GridBooks(booksPage model.BooksPage, gridID string, totalPages int) GridView {
	tiles := make([]Tile, 0, len(booksPage.Books))
	for _, book := range booksPage.Books {
		tiles = append(tiles, Tile{
			Identifier: book.Identifier,
			ImageUrl:   book.ImageUrl,
			Href:       ReviewHref(book.Identifier),
		})
	}

	return GridView{
		GridID: gridID,
		Page:   booksPage.Page,
		Tiles:  tiles,
		Pager:  pagerLinks(gridID, booksPage.Page, totalPages),
	}
}

func Home(gridView GridView) HomePage {
	return HomePage{Title: "Books", Nav: NavHome, Grid: gridView}
}

func Book(details model.BookDetails) BookPage {
	reviews := make([]ReviewView, 0, len(details.Reviews))
	for _, review := range details.Reviews {
		reviewer := review.ReviewerName
		if reviewer == "" {
			reviewer = review.ReviewerID
		}
		reviews = append(reviews, ReviewView{
			Reviewer: reviewer,
			Rating:   fmt.Sprintf("%.1f", review.Overall),
			Summary:  review.Summary,
			Text:     review.ReviewText,
		})
	}

	title := details.Book.Title
	if title == "" {
		title = details.Book.Identifier
	}

	price := ""
	if details.Book.Price > 0 {
		price = fmt.Sprintf("$%.2f", details.Book.Price)
	}

	return BookPage{
		Title:       title,
		Identifier:  details.Book.Identifier,
		BookTitle:   title,
		ImageUrl:    details.Book.ImageUrl,
		Description: details.Book.Description,
		Price:       price,
		Categories:  strings.Join(details.Book.Categories, ", "),
		Reviews:     reviews,
	}
}

func UserAction(session model.Session) UserActionPage {
	lastPage := session.PageRequest.Page
	if lastPage < 1 {
		lastPage = 1
	}

	return UserActionPage{
		Title:        "User actions",
		Nav:          NavUserAction,
		LastPage:     lastPage,
		ContinueHref: HomeHref(lastPage),
	}
}

func Message(title, message string) MessagePage {
	return MessagePage{Title: title, Message: message}
}

package web

const (
	internalErrMsg    string = "something went wrong..."
	incorrectPageMsg  string = "incorrect page"
	incorrectGridMsg  string = "this list is out of date, reload the page"
	bookNotFoundMsg   string = "this book is not in the catalog"
	catalogUnavailMsg string = "the catalog is unavailable, try again later"
	pageNotFoundMsg   string = "page not found"
)

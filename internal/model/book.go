package model

// BookPreview is the minimal record shown as a tile in the book grid.
type BookPreview struct {
	Identifier string `json:"identifier"`
	ImageUrl   string `json:"imageUrl"`
}

type Book struct {
	Identifier  string   `json:"identifier"`
	Title       string   `json:"title"`
	ImageUrl    string   `json:"imageUrl"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Categories  []string `json:"categories"`
}

type Review struct {
	ReviewerID   string  `json:"reviewerID"`
	ReviewerName string  `json:"reviewerName"`
	Overall      float64 `json:"overall"`
	Summary      string  `json:"summary"`
	ReviewText   string  `json:"reviewText"`
}

type BookDetails struct {
	Book    Book
	Reviews []Review
}

// BooksPage is one page of the catalog listing. TotalPages is zero when the
// upstream did not report a total.
type BooksPage struct {
	Books      []BookPreview `json:"books"`
	Page       int           `json:"page"`
	Count      int           `json:"count"`
	TotalPages int           `json:"totalPages"`
}

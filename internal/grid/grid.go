// Package grid holds the page request state of the book grid: which page each
// rendered grid asked for last, which read is allowed to fill it and how the
// pager around it looks.
package grid

import (
	"book_catalog_web/internal/model"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	boundaryRange = 1
	siblingRange  = 1
)

type Grid struct {
	pageSize         int
	placeholderCount int
}

func New(pageSize, placeholderCount int) *Grid {
	return &Grid{pageSize: pageSize, placeholderCount: placeholderCount}
}

func ParsePage(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrIncorrectPage
	}
	return page, nil
}

// NewInstanceID identifies one rendered grid. Every full page render gets its
// own instance and its own page request state.
func NewInstanceID() string {
	return uuid.NewString()
}

func ParseInstanceID(raw string) (string, error) {
	if err := uuid.Validate(raw); err != nil {
		return "", ErrIncorrectInstance
	}
	return raw, nil
}

// NewRequest starts a read for page in the grid instance gridID. Any read
// started earlier for the same instance becomes stale once the returned
// request is stored.
func (g *Grid) NewRequest(gridID string, page, totalPages int, now time.Time) (model.PageRequest, error) {
	if page < 1 || page > totalPages {
		return model.PageRequest{}, ErrIncorrectPage
	}

	return model.PageRequest{
		GridID:      gridID,
		Page:        page,
		Count:       g.pageSize,
		Tag:         uuid.NewString(),
		RequestedAt: now,
	}, nil
}

// IsCurrent reports whether a read tagged with tag for page may replace the
// grid contents.
func IsCurrent(current model.PageRequest, page int, tag string) bool {
	return tag != "" && current.Tag == tag && current.Page == page
}

func (g *Grid) Placeholders() []int {
	placeholders := make([]int, g.placeholderCount)
	for i := range placeholders {
		placeholders[i] = i
	}
	return placeholders
}

type PagerItem struct {
	Label    string
	Page     int
	Active   bool
	Disabled bool
}

// Pager builds the navigation: first, previous, boundary pages, the pages
// around active, next and last. Gaps are not marked.
func Pager(active, totalPages int) []PagerItem {
	if totalPages < 1 {
		return nil
	}

	items := make([]PagerItem, 0, 4+2*boundaryRange+2*siblingRange+1)
	items = append(items,
		PagerItem{Label: "«", Page: 1, Disabled: active == 1},
		PagerItem{Label: "‹", Page: max(active-1, 1), Disabled: active == 1},
	)

	last := 0
	appendRange := func(from, to int) {
		from = max(from, last+1, 1)
		to = min(to, totalPages)
		for page := from; page <= to; page++ {
			items = append(items, PagerItem{Label: strconv.Itoa(page), Page: page, Active: page == active})
			last = page
		}
	}

	appendRange(1, boundaryRange)
	appendRange(active-siblingRange, active+siblingRange)
	appendRange(totalPages-boundaryRange+1, totalPages)

	items = append(items,
		PagerItem{Label: "›", Page: min(active+1, totalPages), Disabled: active == totalPages},
		PagerItem{Label: "»", Page: totalPages, Disabled: active == totalPages},
	)

	return items
}

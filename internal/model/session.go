package model

import "time"

// PageRequest is the outstanding read of one rendered grid. Tag identifies the
// read so a late response for an older page can be told apart from the
// current one.
type PageRequest struct {
	GridID      string    `json:"gridID"`
	Page        int       `json:"page"`
	Count       int       `json:"count"`
	Tag         string    `json:"tag"`
	RequestedAt time.Time `json:"requestedAt"`
}

// Session is the visitor-wide state. PageRequest is the last page request of
// any grid the visitor opened and only feeds the user action view.
type Session struct {
	VisitorID   string      `json:"visitorID"`
	PageRequest PageRequest `json:"pageRequest"`
}

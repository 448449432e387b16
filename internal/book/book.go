package book

import (
	"strings"
	"time"
)

// Book is the persisted book entity.
type Book struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	Author     string    `db:"author"`
	Price      float64   `db:"price"`
	LaunchDate time.Time `db:"launch_date"`
}

// BookVO is the transport-facing view of a Book. Key mirrors Book.ID and is
// serialized as "id".
type BookVO struct {
	Key        int64     `json:"id" example:"1"`
	Title      string    `json:"title" validate:"notblank,max=255" example:"Docker Deep Dive"`
	Author     string    `json:"author" validate:"notblank,max=180" example:"Nigel Poulton"`
	Price      float64   `json:"price" validate:"gte=0" example:"55.99"`
	LaunchDate time.Time `json:"launch_date" example:"2017-11-07T15:09:01Z"`
	Links      Links     `json:"links"`
}

// Link is a hypermedia reference from a VO to a resource.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// Links is an ordered set of links.
type Links []Link

// Add appends l, replacing any link already registered under the same rel.
func (ls *Links) Add(l Link) {
	out := (*ls)[:0]
	for _, existing := range *ls {
		if existing.Rel != l.Rel {
			out = append(out, existing)
		}
	}
	*ls = append(out, l)
}

// Rel returns the first link with the given relation.
func (ls Links) Rel(rel string) (Link, bool) {
	for _, l := range ls {
		if l.Rel == rel {
			return l, true
		}
	}
	return Link{}, false
}

// Count returns how many links carry rel.
func (ls Links) Count(rel string) int {
	n := 0
	for _, l := range ls {
		if l.Rel == rel {
			n++
		}
	}
	return n
}

// String renders the links in RFC 8288 form, e.g. </api/book/v1/1>;rel="self".
func (ls Links) String() string {
	parts := make([]string, 0, len(ls))
	for _, l := range ls {
		parts = append(parts, "<"+l.Href+`>;rel="`+l.Rel+`"`)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

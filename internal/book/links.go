package book

import (
	"strconv"
	"strings"
)

const (
	// ResourcePath is the canonical collection path of the book resource.
	ResourcePath = "/api/book/v1"

	RelSelf = "self"
)

// Linker builds hypermedia links for book VOs.
type Linker struct {
	baseURL string
}

// NewLinker returns a Linker that prefixes hrefs with baseURL. An empty
// baseURL yields relative hrefs.
func NewLinker(baseURL string) *Linker {
	return &Linker{baseURL: strings.TrimRight(baseURL, "/")}
}

// SelfLink returns the self link of the book identified by key.
func (l *Linker) SelfLink(key int64) Link {
	return Link{
		Rel:  RelSelf,
		Href: l.baseURL + ResourcePath + "/" + strconv.FormatInt(key, 10),
	}
}

// Decorate attaches the self link to vo, replacing any previous one.
func (l *Linker) Decorate(vo *BookVO) {
	vo.Links.Add(l.SelfLink(vo.Key))
}

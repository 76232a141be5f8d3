// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pagination implements page-number pagination of collection
// endpoints: parsing of page[number]/page[size], the offset/limit slice and
// the self/first/prev/next/last links of a collection document.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names.
const (
	NumberParam = "page[number]"
	SizeParam   = "page[size]"
)

// Params is a requested page. Number is kept as requested, even when it is
// out of range, so the self link reflects the request.
type Params struct {
	Number int
	Size   int
}

// InRange reports whether the page can hold any of total rows. The check
// never multiplies Number, so it holds for any requested number.
func (p Params) InRange(total int64) bool {
	return total > 0 && p.Number >= 1 && p.Number <= TotalPages(total, p.Size)
}

// Offset returns the number of rows preceding the page. It is only
// meaningful for a page that is in range.
func (p Params) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// Limit returns the maximum number of rows on the page.
func (p Params) Limit() int {
	return p.Size
}

// Links are the navigation links of a collection document. All five keys are
// always serialized; Prev and Next become JSON null when not applicable.
type Links struct {
	Self  string  `json:"self"`
	First string  `json:"first"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
	Last  string  `json:"last"`
}

// Meta describes the paginated collection as a whole.
type Meta struct {
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
	CurrentPage int   `json:"current_page"`
	PageSize    int   `json:"page_size"`
}

// Page is the outcome of paginating a collection of a known size.
type Page struct {
	Params Params
	Links  Links
	Meta   Meta
}

// InRange reports whether the requested page can hold any rows. Pages
// before the first or past the last one are served with empty data.
func (p Page) InRange() bool {
	return p.Params.InRange(p.Meta.TotalCount)
}

// Paginator parses page parameters and builds links. It is safe for
// concurrent use.
type Paginator struct {
	defaultSize int
	maxSize     int
	publicURL   string
}

// New returns a Paginator. publicURL, when non-empty, must be an absolute URL
// and turns every link into an absolute one.
func New(defaultSize, maxSize int, publicURL string) (*Paginator, error) {
	if defaultSize < 1 || maxSize < 1 || defaultSize > maxSize {
		return nil, fmt.Errorf("%w: default %d, max %d", ErrInvalidPageSizes, defaultSize, maxSize)
	}
	if publicURL != "" {
		u, err := url.Parse(publicURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidPublicURL, publicURL)
		}
	}

	return &Paginator{
		defaultSize: defaultSize,
		maxSize:     maxSize,
		publicURL:   strings.TrimRight(publicURL, "/"),
	}, nil
}

// Params reads page[number] and page[size] from query.
//
// A missing or non-numeric number defaults to 1. A missing, non-numeric or
// non-positive size falls back to the default size, and sizes above the
// maximum are clamped.
func (p *Paginator) Params(query url.Values) Params {
	number, err := strconv.Atoi(query.Get(NumberParam))
	if err != nil {
		number = 1
	}

	size, err := strconv.Atoi(query.Get(SizeParam))
	if err != nil || size < 1 {
		size = p.defaultSize
	}
	if size > p.maxSize {
		size = p.maxSize
	}

	return Params{Number: number, Size: size}
}

// Paginate computes the page of a collection holding total rows, as
// requested by requestURL.
func (p *Paginator) Paginate(total int64, params Params, requestURL *url.URL) Page {
	last := TotalPages(total, params.Size)

	links := Links{
		Self:  p.link(requestURL, params.Number, params.Size),
		First: p.link(requestURL, 1, params.Size),
		Last:  p.link(requestURL, last, params.Size),
	}
	if params.Number > 1 {
		prev := p.link(requestURL, min(params.Number-1, last), params.Size)
		links.Prev = &prev
	}
	if params.Number < last {
		next := p.link(requestURL, max(params.Number+1, 1), params.Size)
		links.Next = &next
	}

	return Page{
		Params: params,
		Links:  links,
		Meta: Meta{
			TotalCount:  total,
			TotalPages:  last,
			CurrentPage: params.Number,
			PageSize:    params.Size,
		},
	}
}

// TotalPages returns ceil(total/size), and 1 for an empty collection.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 1
	}
	return int((total + int64(size) - 1) / int64(size))
}

// link rewrites the page parameters of requestURL and keeps every other
// query parameter untouched.
func (p *Paginator) link(requestURL *url.URL, number, size int) string {
	query := requestURL.Query()
	query.Set(NumberParam, strconv.Itoa(number))
	query.Set(SizeParam, strconv.Itoa(size))

	return p.publicURL + requestURL.EscapedPath() + "?" + query.Encode()
}

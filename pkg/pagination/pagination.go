package pagination

import (
	"net/url"
	"strconv"
)

// Params are the page-based pagination inputs forwarded to the backend
// listing endpoints as page/limit query parameters.
type Params struct {
	Page  int `form:"page" json:"page"`
	Limit int `form:"limit" json:"limit"`
}

// Default returns the pagination the backend assumes when none is given.
func Default() Params {
	return Params{Page: 1, Limit: 50}
}

// Validate ensures the parameters are within valid ranges.
func (p *Params) Validate() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = 50
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// FromQuery builds Params from raw query strings, falling back to the
// defaults on garbage.
func FromQuery(page, limit string) Params {
	p := Default()
	if n, err := strconv.Atoi(page); err == nil {
		p.Page = n
	}
	if n, err := strconv.Atoi(limit); err == nil {
		p.Limit = n
	}
	p.Validate()
	return p
}

// Apply sets the page/limit query parameters on a backend request.
func (p Params) Apply(v url.Values) {
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("limit", strconv.Itoa(p.Limit))
}

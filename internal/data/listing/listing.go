// Package listing turns page/limit/search/sort query parameters into gorm
// scopes and a paginated result.
package listing

import (
	"net/url"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type Params struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// Spec whitelists what a list endpoint may search and sort on. SortColumns
// maps the public sortBy key to a column name.
type Spec struct {
	SearchColumns []string
	SortColumns   map[string]string
	DefaultSort   string
}

type Page[T any] struct {
	List       []T   `json:"list"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// FromValues reads page, limit, search, sortBy and sortOrder. Bad numbers
// fall back to defaults instead of failing the request.
func FromValues(v url.Values) Params {
	p := Params{
		Page:      atoiOr(v.Get("page"), DefaultPage),
		Limit:     atoiOr(v.Get("limit"), DefaultLimit),
		Search:    strings.TrimSpace(v.Get("search")),
		SortBy:    strings.TrimSpace(v.Get("sortBy")),
		SortOrder: strings.TrimSpace(v.Get("sortOrder")),
	}
	return p.Normalize()
}

func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if strings.EqualFold(p.SortOrder, "asc") {
		p.SortOrder = "asc"
	} else {
		p.SortOrder = "desc"
	}
	return p
}

func (p Params) Offset() int { return (p.Page - 1) * p.Limit }

// SortColumn resolves SortBy through the spec, falling back to DefaultSort
// and finally to "id".
func (s Spec) SortColumn(sortBy string) string {
	if col, ok := s.SortColumns[sortBy]; ok && col != "" {
		return col
	}
	if s.DefaultSort != "" {
		return s.DefaultSort
	}
	return "id"
}

// Search adds a case-insensitive contains filter OR-ed across the spec's
// search columns.
func (s Spec) Search(term string) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		term = strings.TrimSpace(term)
		if term == "" || len(s.SearchColumns) == 0 {
			return q
		}
		pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
		exprs := make([]clause.Expression, 0, len(s.SearchColumns))
		for _, col := range s.SearchColumns {
			exprs = append(exprs, clause.Expr{
				SQL:  "LOWER(CAST(? AS TEXT)) LIKE ? ESCAPE '\\'",
				Vars: []any{clause.Column{Name: col}, pattern},
			})
		}
		return q.Where(clause.Or(exprs...))
	}
}

func (s Spec) Order(p Params) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		col := s.SortColumn(p.SortBy)
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: p.SortOrder != "asc"})
		if col != "id" {
			q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: p.SortOrder != "asc"})
		}
		return q
	}
}

// Run counts and fetches one page of T from q, which should already carry
// the model and any ownership filters.
func Run[T any](q *gorm.DB, p Params, spec Spec) (Page[T], error) {
	p = p.Normalize()
	out := Page[T]{List: []T{}, Page: p.Page, Limit: p.Limit}

	filtered := spec.Search(p.Search)(q).Session(&gorm.Session{})

	var total int64
	if err := filtered.Count(&total).Error; err != nil {
		return out, err
	}
	out.Total = total
	out.TotalPages = TotalPages(total, p.Limit)
	if total == 0 {
		return out, nil
	}

	if err := spec.Order(p)(filtered).
		Offset(p.Offset()).
		Limit(p.Limit).
		Find(&out.List).Error; err != nil {
		return out, err
	}
	return out, nil
}

func TotalPages(total int64, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return n
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

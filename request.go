package newsapi

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Param is one query parameter. Requests encode to an ordered parameter list
// rather than a url.Values map so that the emitted query string is stable.
type Param struct {
	Key   string
	Value string
}

// TopHeadlinesRequest selects breaking headlines by country, category or
// source list. Immutable once built.
type TopHeadlinesRequest struct {
	country  Country
	category Category
	sources  string
	query    string
	pageSize int
	page     int
}

// EverythingRequest is a full-text search over the article archive.
// Immutable once built.
type EverythingRequest struct {
	query          string
	searchIn       []SearchIn
	sources        string
	domains        string
	excludeDomains string
	from           time.Time
	to             time.Time
	language       Language
	sortBy         SortBy
	pageSize       int
	page           int
}

// SourcesRequest lists available publishers. Immutable once built.
type SourcesRequest struct {
	category Category
	language Language
	country  Country
}

type TopHeadlinesBuilder struct {
	request TopHeadlinesRequest
}

type EverythingBuilder struct {
	request EverythingRequest
}

type SourcesBuilder struct {
	request SourcesRequest
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultPage     = 1
	defaultPageSize = 1

	minPageSize = 1
	maxPageSize = 100
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTopHeadlines returns a headlines request builder with defaults applied
func NewTopHeadlines() *TopHeadlinesBuilder {
	return &TopHeadlinesBuilder{
		request: TopHeadlinesRequest{page: defaultPage, pageSize: defaultPageSize},
	}
}

// NewEverything returns a search request builder with defaults applied
func NewEverything() *EverythingBuilder {
	return &EverythingBuilder{
		request: EverythingRequest{page: defaultPage, pageSize: defaultPageSize},
	}
}

// NewSources returns a sources request builder
func NewSources() *SourcesBuilder {
	return &SourcesBuilder{}
}

////////////////////////////////////////////////////////////////////////////////
// BUILDER - TOP HEADLINES

func (b *TopHeadlinesBuilder) Country(v Country) *TopHeadlinesBuilder {
	b.request.country = v
	return b
}

func (b *TopHeadlinesBuilder) Category(v Category) *TopHeadlinesBuilder {
	b.request.category = v
	return b
}

// Sources sets the publisher identifiers to fetch headlines from. Cannot be
// combined with Country or Category.
func (b *TopHeadlinesBuilder) Sources(v ...string) *TopHeadlinesBuilder {
	b.request.sources = strings.Join(v, ",")
	return b
}

func (b *TopHeadlinesBuilder) Query(v string) *TopHeadlinesBuilder {
	b.request.query = v
	return b
}

func (b *TopHeadlinesBuilder) PageSize(v int) *TopHeadlinesBuilder {
	b.request.pageSize = v
	return b
}

func (b *TopHeadlinesBuilder) Page(v int) *TopHeadlinesBuilder {
	b.request.page = v
	return b
}

// Build returns the validated request, or ErrConflictingFilters when sources
// is combined with country or category
func (b *TopHeadlinesBuilder) Build() (*TopHeadlinesRequest, error) {
	if b.request.sources != "" && (b.request.country != "" || b.request.category != "") {
		return nil, ErrConflictingFilters.With("cannot specify sources with country or category")
	}
	request := b.request
	return &request, nil
}

////////////////////////////////////////////////////////////////////////////////
// BUILDER - EVERYTHING

func (b *EverythingBuilder) Query(v string) *EverythingBuilder {
	b.request.query = v
	return b
}

func (b *EverythingBuilder) SearchIn(v ...SearchIn) *EverythingBuilder {
	b.request.searchIn = v
	return b
}

func (b *EverythingBuilder) Sources(v ...string) *EverythingBuilder {
	b.request.sources = strings.Join(v, ",")
	return b
}

func (b *EverythingBuilder) Domains(v ...string) *EverythingBuilder {
	b.request.domains = strings.Join(v, ",")
	return b
}

func (b *EverythingBuilder) ExcludeDomains(v ...string) *EverythingBuilder {
	b.request.excludeDomains = strings.Join(v, ",")
	return b
}

func (b *EverythingBuilder) From(v time.Time) *EverythingBuilder {
	b.request.from = v
	return b
}

func (b *EverythingBuilder) To(v time.Time) *EverythingBuilder {
	b.request.to = v
	return b
}

func (b *EverythingBuilder) Language(v Language) *EverythingBuilder {
	b.request.language = v
	return b
}

func (b *EverythingBuilder) SortBy(v SortBy) *EverythingBuilder {
	b.request.sortBy = v
	return b
}

func (b *EverythingBuilder) PageSize(v int) *EverythingBuilder {
	b.request.pageSize = v
	return b
}

func (b *EverythingBuilder) Page(v int) *EverythingBuilder {
	b.request.page = v
	return b
}

// Build always succeeds; page bounds are checked when the request is
// validated before encoding
func (b *EverythingBuilder) Build() *EverythingRequest {
	request := b.request
	return &request
}

////////////////////////////////////////////////////////////////////////////////
// BUILDER - SOURCES

func (b *SourcesBuilder) Category(v Category) *SourcesBuilder {
	b.request.category = v
	return b
}

func (b *SourcesBuilder) Language(v Language) *SourcesBuilder {
	b.request.language = v
	return b
}

func (b *SourcesBuilder) Country(v Country) *SourcesBuilder {
	b.request.country = v
	return b
}

func (b *SourcesBuilder) Build() *SourcesRequest {
	request := b.request
	return &request
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - VALIDATION

// Validate checks page and pageSize bounds
func (r *TopHeadlinesRequest) Validate() error {
	return validatePage(r.page, r.pageSize)
}

// Validate checks page and pageSize bounds
func (r *EverythingRequest) Validate() error {
	return validatePage(r.page, r.pageSize)
}

func validatePage(page, pageSize int) error {
	if pageSize < minPageSize || pageSize > maxPageSize {
		return ErrInvalidRequest.Withf("pageSize must be between %d and %d", minPageSize, maxPageSize)
	}
	if page < 1 {
		return ErrInvalidRequest.With("page must be 1 or greater")
	}
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS - ENCODING

// Params returns the query parameters in emission order. Absent and default
// fields are omitted.
func (r *TopHeadlinesRequest) Params() []Param {
	params := make([]Param, 0, 6)
	if r.country != "" {
		params = append(params, Param{"country", r.country.String()})
	}
	if r.category != "" {
		params = append(params, Param{"category", r.category.String()})
	}
	if r.sources != "" {
		params = append(params, Param{"sources", r.sources})
	}
	if r.query != "" {
		params = append(params, Param{"q", r.query})
	}
	if r.pageSize > 1 {
		params = append(params, Param{"pageSize", strconv.Itoa(r.pageSize)})
	}
	if r.page > 1 {
		params = append(params, Param{"page", strconv.Itoa(r.page)})
	}
	return params
}

// Params returns the query parameters in emission order. The search term is
// always emitted, even when empty.
func (r *EverythingRequest) Params() []Param {
	params := make([]Param, 0, 11)
	params = append(params, Param{"q", r.query})
	if r.language != "" {
		params = append(params, Param{"language", strings.ToLower(r.language.String())})
	}
	if !r.from.IsZero() {
		params = append(params, Param{"from", r.from.Format(time.RFC3339)})
	}
	if !r.to.IsZero() {
		params = append(params, Param{"to", r.to.Format(time.RFC3339)})
	}
	if len(r.searchIn) > 0 {
		fields := make([]string, len(r.searchIn))
		for i, field := range r.searchIn {
			fields[i] = field.String()
		}
		params = append(params, Param{"searchIn", strings.Join(fields, ",")})
	}
	if r.sources != "" {
		params = append(params, Param{"sources", r.sources})
	}
	if r.domains != "" {
		params = append(params, Param{"domains", r.domains})
	}
	if r.excludeDomains != "" {
		params = append(params, Param{"excludeDomains", r.excludeDomains})
	}
	if r.sortBy != "" {
		params = append(params, Param{"sortBy", r.sortBy.String()})
	}
	if r.pageSize > 0 {
		params = append(params, Param{"pageSize", strconv.Itoa(r.pageSize)})
	}
	if r.page > 1 {
		params = append(params, Param{"page", strconv.Itoa(r.page)})
	}
	return params
}

// Params returns the query parameters in emission order
func (r *SourcesRequest) Params() []Param {
	params := make([]Param, 0, 3)
	if r.category != "" {
		params = append(params, Param{"category", r.category.String()})
	}
	if r.language != "" {
		params = append(params, Param{"language", strings.ToLower(r.language.String())})
	}
	if r.country != "" {
		params = append(params, Param{"country", r.country.String()})
	}
	return params
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// encodeParams renders parameters as a query string, preserving order
func encodeParams(params []Param) string {
	var b strings.Builder
	for i, param := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(param.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(param.Value))
	}
	return b.String()
}

package main

import (
	"fmt"
	"os"
	"time"

	// Packages
	newsapi "github.com/mutablelogic/go-newsapi"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type HeadlinesCmd struct {
	Query    string   `arg:"" optional:"" help:"Search phrase"`
	Country  string   `help:"Two-letter country code"`
	Category string   `help:"News category"`
	Sources  []string `help:"Publisher identifiers (cannot be mixed with country or category)"`
	PageSize int      `name:"page-size" default:"10" help:"Results per page"`
	Page     int      `default:"1" help:"Page of results"`
}

type SearchCmd struct {
	Query    string   `arg:"" help:"Search phrase"`
	Language string   `help:"Two-letter language code"`
	From     string   `help:"Oldest article date (YYYY-MM-DD or RFC 3339)"`
	To       string   `help:"Newest article date (YYYY-MM-DD or RFC 3339)"`
	SortBy   string   `name:"sort-by" help:"Sort order: relevancy, popularity or publishedAt"`
	Domains  []string `help:"Restrict the search to these domains"`
	PageSize int      `name:"page-size" default:"10" help:"Results per page"`
	Page     int      `default:"1" help:"Page of results"`
}

type SourcesCmd struct {
	Category string `help:"News category"`
	Language string `help:"Two-letter language code"`
	Country  string `help:"Two-letter country code"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *HeadlinesCmd) Run(globals *Globals) error {
	builder := newsapi.NewTopHeadlines().
		Query(cmd.Query).
		PageSize(cmd.PageSize).
		Page(cmd.Page)
	if cmd.Country != "" {
		country, ok := newsapi.ParseCountry(cmd.Country)
		if !ok {
			return fmt.Errorf("unknown country %q", cmd.Country)
		}
		builder = builder.Country(country)
	}
	if cmd.Category != "" {
		category, ok := newsapi.ParseCategory(cmd.Category)
		if !ok {
			return fmt.Errorf("unknown category %q", cmd.Category)
		}
		builder = builder.Category(category)
	}
	if len(cmd.Sources) > 0 {
		builder = builder.Sources(cmd.Sources...)
	}

	request, err := builder.Build()
	if err != nil {
		return err
	}
	response, err := globals.client.GetTopHeadlines(globals.ctx, request)
	if err != nil {
		return err
	}
	return renderArticles(os.Stdout, response.Articles, response.TotalResults)
}

func (cmd *SearchCmd) Run(globals *Globals) error {
	builder := newsapi.NewEverything().
		Query(cmd.Query).
		PageSize(cmd.PageSize).
		Page(cmd.Page)
	if cmd.Language != "" {
		language, ok := newsapi.ParseLanguage(cmd.Language)
		if !ok {
			return fmt.Errorf("unknown language %q", cmd.Language)
		}
		builder = builder.Language(language)
	}
	if cmd.From != "" {
		from, err := parseDate(cmd.From)
		if err != nil {
			return err
		}
		builder = builder.From(from)
	}
	if cmd.To != "" {
		to, err := parseDate(cmd.To)
		if err != nil {
			return err
		}
		builder = builder.To(to)
	}
	if cmd.SortBy != "" {
		sortBy, ok := newsapi.ParseSortBy(cmd.SortBy)
		if !ok {
			return fmt.Errorf("unknown sort order %q", cmd.SortBy)
		}
		builder = builder.SortBy(sortBy)
	}
	if len(cmd.Domains) > 0 {
		builder = builder.Domains(cmd.Domains...)
	}

	response, err := globals.client.GetEverything(globals.ctx, builder.Build())
	if err != nil {
		return err
	}
	return renderArticles(os.Stdout, response.Articles, response.TotalResults)
}

func (cmd *SourcesCmd) Run(globals *Globals) error {
	builder := newsapi.NewSources()
	if cmd.Category != "" {
		category, ok := newsapi.ParseCategory(cmd.Category)
		if !ok {
			return fmt.Errorf("unknown category %q", cmd.Category)
		}
		builder = builder.Category(category)
	}
	if cmd.Language != "" {
		language, ok := newsapi.ParseLanguage(cmd.Language)
		if !ok {
			return fmt.Errorf("unknown language %q", cmd.Language)
		}
		builder = builder.Language(language)
	}
	if cmd.Country != "" {
		country, ok := newsapi.ParseCountry(cmd.Country)
		if !ok {
			return fmt.Errorf("unknown country %q", cmd.Country)
		}
		builder = builder.Country(country)
	}

	response, err := globals.client.GetSources(globals.ctx, builder.Build())
	if err != nil {
		return err
	}
	return renderSources(os.Stdout, response.Sources)
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

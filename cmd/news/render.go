package main

import (
	"fmt"
	"io"

	// Packages
	lipgloss "github.com/charmbracelet/lipgloss"
	newsapi "github.com/mutablelogic/go-newsapi"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	metaStyle   = lipgloss.NewStyle().Faint(true)
	urlStyle    = lipgloss.NewStyle().Underline(true)
	nameStyle   = lipgloss.NewStyle().Bold(true).Width(24)
	footerStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func renderArticles(w io.Writer, articles []newsapi.Article, total int) error {
	for _, article := range articles {
		meta := article.Source.Name
		if !article.PublishedAt.IsZero() {
			meta += " " + article.PublishedAt.Format("2006-01-02 15:04")
		}
		if article.Author != "" {
			meta += " by " + article.Author
		}
		fmt.Fprintln(w, titleStyle.Render(article.Title))
		fmt.Fprintln(w, metaStyle.Render(meta))
		if article.Description != "" {
			fmt.Fprintln(w, article.Description)
		}
		fmt.Fprintln(w, urlStyle.Render(article.Url))
		fmt.Fprintln(w)
	}
	_, err := fmt.Fprintln(w, footerStyle.Render(fmt.Sprintf("%d of %d results", len(articles), total)))
	return err
}

func renderSources(w io.Writer, sources []newsapi.Source) error {
	for _, source := range sources {
		line := nameStyle.Render(source.Name)
		if source.Id != "" {
			line += " " + metaStyle.Render(source.Id)
		}
		if source.Category != "" {
			line += " " + source.Category
		}
		if source.Country != "" {
			line += " " + source.Country
		}
		fmt.Fprintln(w, line)
		if source.Description != "" {
			fmt.Fprintln(w, metaStyle.Render(source.Description))
		}
	}
	_, err := fmt.Fprintln(w, footerStyle.Render(fmt.Sprintf("%d sources", len(sources))))
	return err
}

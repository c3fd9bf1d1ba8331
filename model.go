package newsapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Time is a publication timestamp. The canonical in-memory representation is
// a UTC time.Time; on the wire it is accepted either as an RFC 3339 string
// (with or without sub-second precision) or as numeric seconds since the
// Unix epoch, and is always emitted as RFC 3339.
type Time struct {
	time.Time
}

// Source identifies a publisher. Id is empty for sources which are not
// indexed; Name is always set. The remaining fields are populated by the
// sources endpoint only.
type Source struct {
	Id          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Url         string `json:"url,omitempty"`
	Category    string `json:"category,omitempty"`
	Language    string `json:"language,omitempty"`
	Country     string `json:"country,omitempty"`
}

type Article struct {
	Source      Source `json:"source"`
	Title       string `json:"title"`
	Author      string `json:"author,omitempty"`
	Description string `json:"description,omitempty"`
	Url         string `json:"url,omitempty"`
	ImageUrl    string `json:"urlToImage,omitempty"`
	PublishedAt Time   `json:"publishedAt,omitempty"`
	Content     string `json:"content,omitempty"`
}

type TopHeadlinesResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

type EverythingResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

type SourcesResponse struct {
	Status  string   `json:"status"`
	Sources []Source `json:"sources"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

func (t *Time) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	// RFC 3339 string
	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		if value == "" {
			t.Time = time.Time{}
			return nil
		}
		parsed, err := time.Parse(time.RFC3339Nano, value)
		if err != nil {
			return fmt.Errorf("invalid timestamp %q", value)
		}
		t.Time = parsed.UTC()
		return nil
	}

	// Seconds since epoch
	seconds, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q", string(data))
	}
	t.Time = time.Unix(int64(seconds), 0).UTC()
	return nil
}

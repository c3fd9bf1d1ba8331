package newsapi

import (
	"context"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Result carries the outcome of a non-blocking call
type Result[T any] struct {
	Value *T
	Err   error
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// GetTopHeadlinesAsync runs GetTopHeadlines without blocking the caller and
// delivers a single result on the returned channel. Cancelling ctx aborts
// the call, including any retry wait.
func (c *Client) GetTopHeadlinesAsync(ctx context.Context, request *TopHeadlinesRequest) <-chan Result[TopHeadlinesResponse] {
	ch := make(chan Result[TopHeadlinesResponse], 1)
	go func() {
		defer close(ch)
		value, err := c.GetTopHeadlines(ctx, request)
		ch <- Result[TopHeadlinesResponse]{Value: value, Err: err}
	}()
	return ch
}

// GetEverythingAsync runs GetEverything without blocking the caller
func (c *Client) GetEverythingAsync(ctx context.Context, request *EverythingRequest) <-chan Result[EverythingResponse] {
	ch := make(chan Result[EverythingResponse], 1)
	go func() {
		defer close(ch)
		value, err := c.GetEverything(ctx, request)
		ch <- Result[EverythingResponse]{Value: value, Err: err}
	}()
	return ch
}

// GetSourcesAsync runs GetSources without blocking the caller
func (c *Client) GetSourcesAsync(ctx context.Context, request *SourcesRequest) <-chan Result[SourcesResponse] {
	ch := make(chan Result[SourcesResponse], 1)
	go func() {
		defer close(ch)
		value, err := c.GetSources(ctx, request)
		ch <- Result[SourcesResponse]{Value: value, Err: err}
	}()
	return ch
}

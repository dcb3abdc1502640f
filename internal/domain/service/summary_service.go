package service

import "context"

// ContentFetcher retrieves the stored bytes behind an upload target.
type ContentFetcher interface {
	Fetch(ctx context.Context, target string) ([]byte, error)
}

// TextExtractor pulls plain text out of a downloaded document.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// Summarizer generates a summary for the given text via an external model.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

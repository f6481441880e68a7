package feed

import (
	"context"
	"fmt"

	"FintechReviews/internal/domain"
)

// Request carries all parameters required to fetch one application's reviews.
type Request struct {
	AppID    string
	Bank     string
	Language string
	Country  string
	Count    int
}

// Source captures a single review-feed implementation (Google Play, etc.).
type Source interface {
	Name() string
	Fetch(ctx context.Context, req Request) ([]domain.RawReview, error)
}

// Registry keeps a mapping from source names to their implementations.
type Registry struct {
	sources map[string]Source
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]Source{}}
}

// Register adds or replaces a source implementation.
func (r *Registry) Register(source Source) {
	if r.sources == nil {
		r.sources = map[string]Source{}
	}
	r.sources[source.Name()] = source
}

// Resolve returns a source by name or an error if it is absent.
func (r *Registry) Resolve(name string) (Source, error) {
	if source, ok := r.sources[name]; ok {
		return source, nil
	}
	return nil, fmt.Errorf("feed source %s is not registered", name)
}

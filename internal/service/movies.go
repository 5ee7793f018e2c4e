package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/marquee/internal/domain"
	"github.com/mmcdole/marquee/internal/search"
)

// MovieService handles search and detail lookups against the movie database
type MovieService struct {
	client  domain.MovieClient
	history *search.History
	logger  *slog.Logger
}

// NewMovieService creates a new movie service.
// history may be nil, in which case queries are not remembered.
func NewMovieService(client domain.MovieClient, history *search.History, logger *slog.Logger) *MovieService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MovieService{
		client:  client,
		history: history,
		logger:  logger,
	}
}

// Search returns titles matching query in server order.
// Successful queries are added to the session history.
func (s *MovieService) Search(ctx context.Context, query string) ([]domain.MovieSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrNoResults)
	}

	start := time.Now()
	movies, err := s.client.Search(ctx, query)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn("search failed", "query", query, "error", err)
		}
		return nil, err
	}

	s.logger.Debug("search complete", "query", query, "results", len(movies), "duration", time.Since(start))
	if s.history != nil {
		s.history.Add(query)
	}
	return movies, nil
}

// Detail returns the full record for id
func (s *MovieService) Detail(ctx context.Context, id string) (*domain.MovieDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, domain.ErrMovieNotFound
	}

	start := time.Now()
	detail, err := s.client.Detail(ctx, id)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Warn("detail failed", "id", id, "error", err)
		}
		return nil, err
	}

	s.logger.Debug("detail complete", "id", id, "duration", time.Since(start))
	return detail, nil
}

// Suggestions returns past queries matching prefix, best first
func (s *MovieService) Suggestions(prefix string) []string {
	if s.history == nil {
		return nil
	}
	return s.history.Suggest(prefix)
}

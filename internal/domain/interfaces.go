package domain

import "context"

// MovieClient provides network access to the movie database.
// Both calls are single HTTP GETs; implementations must honour ctx cancellation.
type MovieClient interface {
	// Search returns the titles matching query, in the order the server returned them.
	// A response reporting no matches yields ErrNoResults.
	Search(ctx context.Context, query string) ([]MovieSummary, error)

	// Detail returns the full record for one identifier.
	// An unknown identifier yields ErrMovieNotFound.
	Detail(ctx context.Context, id string) (*MovieDetail, error)
}

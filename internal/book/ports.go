package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	// FindAll returns every stored book.
	FindAll(ctx context.Context) ([]Book, error)
	// FindByID returns ErrNotFound when no book has the given id.
	FindByID(ctx context.Context, id int64) (Book, error)
	// Save inserts b when its ID is zero and updates it otherwise.
	Save(ctx context.Context, b Book) (Book, error)
	Delete(ctx context.Context, b Book) error
}

// Recorder observes the outcome of service operations.
type Recorder interface {
	ObserveOperation(op string, err error)
}

package book

import (
	"context"

	"github.com/rs/zerolog"
)

const (
	opFindAll  = "find_all"
	opFindByID = "find_by_id"
	opCreate   = "create"
	opUpdate   = "update"
	opDelete   = "delete"
)

// Service provides book-related business logic.
type Service struct {
	repo     Repository
	links    *Linker
	log      zerolog.Logger
	recorder Recorder
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger used for operation tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) {
		s.log = log.With().Str("component", "book_service").Logger()
	}
}

// WithRecorder sets the recorder notified after every operation.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// NewService creates a new book service.
func NewService(repo Repository, links *Linker, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		links: links,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindAll returns every book, in repository order, each with its self link.
func (s *Service) FindAll(ctx context.Context) (vos []BookVO, err error) {
	defer s.observe(opFindAll, &err)
	s.log.Debug().Msg("finding all books")

	books, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	vos = ToVOList(books)
	for i := range vos {
		s.links.Decorate(&vos[i])
	}
	return vos, nil
}

// FindByID returns the book with the given id.
func (s *Service) FindByID(ctx context.Context, id int64) (vo BookVO, err error) {
	defer s.observe(opFindByID, &err)
	s.log.Debug().Int64("id", id).Msg("finding one book")

	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BookVO{}, err
	}
	return s.present(&entity)
}

// Create persists a new book.
func (s *Service) Create(ctx context.Context, in *BookVO) (vo BookVO, err error) {
	defer s.observe(opCreate, &err)
	if in == nil {
		return BookVO{}, ErrRequiredObjectIsNull
	}
	s.log.Debug().Str("title", in.Title).Msg("creating one book")

	entity, err := ToEntity(in)
	if err != nil {
		return BookVO{}, err
	}
	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		return BookVO{}, err
	}
	return s.present(&saved)
}

// Update overwrites the stored book identified by in.Key. The key is
// authoritative: the book is never inserted when it does not exist.
func (s *Service) Update(ctx context.Context, in *BookVO) (vo BookVO, err error) {
	defer s.observe(opUpdate, &err)
	if in == nil {
		return BookVO{}, ErrRequiredObjectIsNull
	}
	s.log.Debug().Int64("id", in.Key).Msg("updating one book")

	entity, err := s.repo.FindByID(ctx, in.Key)
	if err != nil {
		return BookVO{}, err
	}
	entity.ID = in.Key
	entity.Author = in.Author
	entity.LaunchDate = in.LaunchDate
	entity.Price = in.Price
	entity.Title = in.Title

	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		return BookVO{}, err
	}
	return s.present(&saved)
}

// Delete removes the book with the given id.
func (s *Service) Delete(ctx context.Context, id int64) (err error) {
	defer s.observe(opDelete, &err)
	s.log.Debug().Int64("id", id).Msg("deleting one book")

	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, entity)
}

func (s *Service) present(entity *Book) (BookVO, error) {
	vo, err := ToVO(entity)
	if err != nil {
		return BookVO{}, err
	}
	s.links.Decorate(&vo)
	return vo, nil
}

func (s *Service) observe(op string, err *error) {
	if s.recorder != nil {
		s.recorder.ObserveOperation(op, *err)
	}
}

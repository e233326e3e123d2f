package usecase

import (
	"movie-search-bot/internal/movie"
	"movie-search-bot/internal/movie/repository"
	pkgLog "movie-search-bot/pkg/log"
)

type useCase struct {
	l       pkgLog.Logger
	catalog repository.CatalogRepository
}

// New creates the movie UseCase over the given catalog repository.
func New(l pkgLog.Logger, catalog repository.CatalogRepository) movie.UseCase {
	return &useCase{
		l:       l,
		catalog: catalog,
	}
}

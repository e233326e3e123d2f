package usecase_test

import (
	"context"

	"movie-search-bot/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockCatalog struct {
	searchResults []model.SearchResult
	searchErr     error
	movie         model.Movie
	movieErr      error
	image         []byte
	imageErr      error

	searchedQuery string
	fetchedID     string
	fetchedURL    string
}

func (m *mockCatalog) SearchMovies(ctx context.Context, query string) ([]model.SearchResult, error) {
	m.searchedQuery = query
	return m.searchResults, m.searchErr
}

func (m *mockCatalog) GetMovie(ctx context.Context, id string) (model.Movie, error) {
	m.fetchedID = id
	return m.movie, m.movieErr
}

func (m *mockCatalog) GetImage(ctx context.Context, url string) ([]byte, error) {
	m.fetchedURL = url
	return m.image, m.imageErr
}

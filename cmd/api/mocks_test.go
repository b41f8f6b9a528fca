package main

import (
	"context"

	"lightsoff/internal/domain/placereviews"
	"lightsoff/internal/domain/places"
	"lightsoff/internal/notifier"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockPlacesStore struct {
	mock.Mock
}

func (m *mockPlacesStore) Report(ctx context.Context, place *places.Place) error {
	args := m.Called(ctx, place)
	return args.Error(0)
}

func (m *mockPlacesStore) GetByID(ctx context.Context, googlePlaceID string) (*places.Place, error) {
	args := m.Called(ctx, googlePlaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*places.Place), args.Error(1)
}

type mockReviewsStore struct {
	mock.Mock
}

func (m *mockReviewsStore) Create(ctx context.Context, review *placereviews.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewsStore) DeleteByIDs(ctx context.Context, ids []int64) ([]int64, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) ReviewCreated(ctx context.Context, event notifier.ReviewEvent) {
	m.Called(ctx, event)
}

func newTestApplication() (*application, *mockPlacesStore, *mockReviewsStore, *mockNotifier) {
	placesStore := new(mockPlacesStore)
	reviewsStore := new(mockReviewsStore)
	hook := new(mockNotifier)

	app := &application{
		config: config{
			env:         "test",
			corsOrigins: []string{"*"},
		},
		logger:   zap.NewNop().Sugar(),
		places:   placesStore,
		reviews:  reviewsStore,
		notifier: hook,
	}
	return app, placesStore, reviewsStore, hook
}

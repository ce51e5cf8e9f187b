// Package service adapts repositories to the interfaces of the scheduler, distributor and server
package service

import (
	"context"
	"time"

	"github.com/umputun/newsbot/pkg/domain"
	"github.com/umputun/newsbot/pkg/repository"
)

// DataService provides unified access to repositories for the scheduler and distributor
type DataService struct {
	sourceRepo       *repository.SourceRepository
	subscriptionRepo *repository.SubscriptionRepository
}

// NewDataService creates a new data service
func NewDataService(repos *repository.Repositories) *DataService {
	return &DataService{sourceRepo: repos.Source, subscriptionRepo: repos.Subscription}
}

// source methods

func (s *DataService) GetSource(ctx context.Context, id int64) (*domain.Source, error) {
	return s.sourceRepo.GetSource(ctx, id)
}

func (s *DataService) GetSources(ctx context.Context, activeOnly bool) ([]domain.Source, error) {
	return s.sourceRepo.GetSources(ctx, activeOnly)
}

func (s *DataService) GetActiveSources(ctx context.Context) ([]domain.Source, error) {
	return s.sourceRepo.GetActiveSources(ctx)
}

func (s *DataService) UpdateSourceCheck(ctx context.Context, src *domain.Source) error {
	return s.sourceRepo.UpdateSourceCheck(ctx, src)
}

func (s *DataService) SourceCounts(ctx context.Context) (domain.SourceCounts, error) {
	return s.sourceRepo.CountSources(ctx)
}

// subscription methods

func (s *DataService) GetNotifiableSubscriptions(ctx context.Context, sourceID int64) ([]domain.Subscription, error) {
	return s.subscriptionRepo.GetNotifiableSubscriptions(ctx, sourceID)
}

func (s *DataService) UpdateLastNotified(ctx context.Context, id int64, ts time.Time) error {
	return s.subscriptionRepo.UpdateLastNotified(ctx, id, ts)
}

func (s *DataService) SetSubscriptionActive(ctx context.Context, id int64, active bool) error {
	return s.subscriptionRepo.SetSubscriptionActive(ctx, id, active)
}

func (s *DataService) SubscriptionCounts(ctx context.Context) (domain.SubscriptionCounts, error) {
	return s.subscriptionRepo.CountSubscriptions(ctx)
}

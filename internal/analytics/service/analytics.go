package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"beautybar/internal/analytics/repository"
	apperrors "beautybar/pkg/errors"
	"beautybar/pkg/model"
	"beautybar/pkg/validate"
)

const (
	topSectionLimit = 5
	dailyBucketDays = 7
)

type AnalyticsService interface {
	Track(ctx context.Context, event *model.AnalyticsEvent) error
	// Summarize aggregates page views into total/today/week/month counts,
	// unique visitors, top sections and a 7-day daily breakdown, oldest
	// bucket first.
	Summarize(ctx context.Context) (*model.AnalyticsSummary, error)
}

type analyticsService struct {
	repo     repository.EventRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewAnalyticsService(repo repository.EventRepository) AnalyticsService {
	return &analyticsService{
		repo:     repo,
		validate: validate.New(),
		now:      time.Now,
	}
}

func (s *analyticsService) Track(ctx context.Context, event *model.AnalyticsEvent) error {
	if err := validate.Struct(s.validate, event); err != nil {
		return err
	}

	event.ID = uuid.NewString()
	event.Timestamp = s.now().UTC().Format(time.RFC3339)

	if err := s.repo.Insert(ctx, event); err != nil {
		return apperrors.Internal("Failed to track page view", err)
	}
	return nil
}

func (s *analyticsService) Summarize(ctx context.Context) (*model.AnalyticsSummary, error) {
	now := s.now().UTC()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to aggregate analytics", err)
	}

	today, err := s.repo.CountSince(ctx, todayStart.Format(time.RFC3339))
	if err != nil {
		return nil, apperrors.Internal("Failed to aggregate analytics", err)
	}

	week, err := s.repo.CountSince(ctx, todayStart.AddDate(0, 0, -7).Format(time.RFC3339))
	if err != nil {
		return nil, apperrors.Internal("Failed to aggregate analytics", err)
	}

	month, err := s.repo.CountSince(ctx, todayStart.AddDate(0, 0, -30).Format(time.RFC3339))
	if err != nil {
		return nil, apperrors.Internal("Failed to aggregate analytics", err)
	}

	visitors, err := s.repo.CountDistinctVisitors(ctx)
	if err != nil {
		return nil, apperrors.Internal("Failed to aggregate analytics", err)
	}

	sections, err := s.repo.TopSections(ctx, topSectionLimit)
	if err != nil {
		return nil, apperrors.Internal("Failed to aggregate analytics", err)
	}

	daily := make([]model.DailyViews, 0, dailyBucketDays)
	for i := dailyBucketDays - 1; i >= 0; i-- {
		dayStart := todayStart.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		views, err := s.repo.CountBetween(ctx,
			dayStart.Format(time.RFC3339),
			dayEnd.Format(time.RFC3339),
		)
		if err != nil {
			return nil, apperrors.Internal("Failed to aggregate analytics", err)
		}

		daily = append(daily, model.DailyViews{
			Date:  dayStart.Format("2006-01-02"),
			Views: views,
		})
	}

	return &model.AnalyticsSummary{
		TotalViews:      total,
		TodayViews:      today,
		WeekViews:       week,
		MonthViews:      month,
		UniqueVisitors:  visitors,
		PopularSections: sections,
		DailyViews:      daily,
	}, nil
}

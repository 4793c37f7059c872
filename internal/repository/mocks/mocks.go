// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/kdaisho/evetrack/internal/domain/earnedvalue"
	"github.com/stretchr/testify/mock"
)

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) ListActive(ctx context.Context) ([]earnedvalue.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]earnedvalue.Project); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Get(ctx context.Context, id string) (*earnedvalue.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*earnedvalue.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

// TimeEntryRepository is a mock for repository.TimeEntryRepository.
type TimeEntryRepository struct {
	mock.Mock
}

func (m *TimeEntryRepository) ListStartedBetween(ctx context.Context, from, to time.Time) ([]earnedvalue.TimeEntry, error) {
	args := m.Called(ctx, from, to)
	if list, ok := args.Get(0).([]earnedvalue.TimeEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// FixedTaskRepository is a mock for repository.FixedTaskRepository.
type FixedTaskRepository struct {
	mock.Mock
}

func (m *FixedTaskRepository) ListBetween(ctx context.Context, from, to string) ([]earnedvalue.FixedTask, error) {
	args := m.Called(ctx, from, to)
	if list, ok := args.Get(0).([]earnedvalue.FixedTask); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// BudgetRepository is a mock for repository.BudgetRepository.
type BudgetRepository struct {
	mock.Mock
}

func (m *BudgetRepository) ListForMonth(ctx context.Context, fiscalYear string, month int) ([]earnedvalue.MonthlyBudget, error) {
	args := m.Called(ctx, fiscalYear, month)
	if list, ok := args.Get(0).([]earnedvalue.MonthlyBudget); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// HolidayRepository is a mock for repository.HolidayRepository.
type HolidayRepository struct {
	mock.Mock
}

func (m *HolidayRepository) ListBetween(ctx context.Context, from, to string) ([]earnedvalue.Holiday, error) {
	args := m.Called(ctx, from, to)
	if list, ok := args.Get(0).([]earnedvalue.Holiday); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

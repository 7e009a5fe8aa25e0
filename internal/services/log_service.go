package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/nutrivision-app/nutrivision/internal/models"
)

type LogRepository interface {
	ListByUser(userID uint) ([]models.DailyLog, error)
	ListByUserDates(userID uint, dates []string) ([]models.DailyLog, error)
	FindByUserAndDate(userID uint, date string) (models.DailyLog, bool, error)
	Create(entry *models.DailyLog) error
	Save(entry *models.DailyLog) error
}

// LogService owns all per-day mutations. Every write loads the day's row,
// mutates it and saves it back whole; the row is created lazily on the
// first write for a date.
type LogService struct {
	logs     LogRepository
	location *time.Location
}

func NewLogService(logs LogRepository, location *time.Location) *LogService {
	if location == nil {
		location = time.UTC
	}
	return &LogService{logs: logs, location: location}
}

func (service *LogService) Logs(userID uint) (map[string]models.DailyLog, error) {
	entries, err := service.logs.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]models.DailyLog, len(entries))
	for _, entry := range entries {
		byDate[entry.Date] = entry
	}
	return byDate, nil
}

// TodayLog returns today's entry, synthesizing an empty one when absent.
// The synthesized entry is not persisted.
func (service *LogService) TodayLog(userID uint, now time.Time) (models.DailyLog, error) {
	today := Today(now, service.location)
	entry, found, err := service.logs.FindByUserAndDate(userID, today)
	if err != nil {
		return models.DailyLog{}, err
	}
	if !found {
		return models.EmptyDailyLog(userID, today), nil
	}
	if entry.Items == nil {
		entry.Items = []models.FoodItem{}
	}
	return entry, nil
}

// SaveFoodItem appends an item to today's log, assigning an id and
// timestamp when the caller left them empty.
func (service *LogService) SaveFoodItem(userID uint, item models.FoodItem, now time.Time) (models.DailyLog, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Timestamp == 0 {
		item.Timestamp = now.UnixMilli()
	}

	return service.mutateToday(userID, now, func(entry *models.DailyLog) {
		entry.Items = append(entry.Items, item)
	})
}

// DeleteFoodItem removes the item with the given id from today's log.
// Unknown ids leave the log unchanged.
func (service *LogService) DeleteFoodItem(userID uint, itemID string, now time.Time) (models.DailyLog, error) {
	today := Today(now, service.location)
	entry, found, err := service.logs.FindByUserAndDate(userID, today)
	if err != nil {
		return models.DailyLog{}, err
	}
	if !found {
		return models.EmptyDailyLog(userID, today), nil
	}

	filtered := make([]models.FoodItem, 0, len(entry.Items))
	for _, existing := range entry.Items {
		if existing.ID != itemID {
			filtered = append(filtered, existing)
		}
	}
	entry.Items = filtered
	if err := service.logs.Save(&entry); err != nil {
		return models.DailyLog{}, err
	}
	return entry, nil
}

// AddWater adjusts today's water volume by a signed delta in ml, flooring
// at zero.
func (service *LogService) AddWater(userID uint, deltaML int, now time.Time) (models.DailyLog, error) {
	return service.mutateToday(userID, now, func(entry *models.DailyLog) {
		entry.WaterML += deltaML
		if entry.WaterML < 0 {
			entry.WaterML = 0
		}
	})
}

// SetSteps overwrites today's step count with an absolute value, floored
// at zero. Calling it twice with the same value is idempotent.
func (service *LogService) SetSteps(userID uint, steps int, now time.Time) (models.DailyLog, error) {
	if steps < 0 {
		steps = 0
	}
	return service.mutateToday(userID, now, func(entry *models.DailyLog) {
		entry.Steps = steps
	})
}

// AddSteps is the quick-add convenience: it reads today's count and writes
// count+delta, floored at zero. Kept deliberately separate from SetSteps;
// interleaving the two follows read-then-write semantics, not a merge.
func (service *LogService) AddSteps(userID uint, deltaSteps int, now time.Time) (models.DailyLog, error) {
	return service.mutateToday(userID, now, func(entry *models.DailyLog) {
		entry.Steps += deltaSteps
		if entry.Steps < 0 {
			entry.Steps = 0
		}
	})
}

// SaveDailyAnalysis attaches a serialized analysis to today's log. Unlike
// the other writes it never creates the day: without an existing log there
// is nothing to analyze, so it silently no-ops.
func (service *LogService) SaveDailyAnalysis(userID uint, analysis string, now time.Time) error {
	today := Today(now, service.location)
	entry, found, err := service.logs.FindByUserAndDate(userID, today)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	entry.DailyAnalysis = analysis
	return service.logs.Save(&entry)
}

// History builds the trailing 7-day macro history ending today.
func (service *LogService) History(userID uint, now time.Time) ([]models.HistoryDay, error) {
	today := Today(now, service.location)
	dates := TrailingDates(today, 7)
	entries, err := service.logs.ListByUserDates(userID, dates)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]models.DailyLog, len(entries))
	for _, entry := range entries {
		byDate[entry.Date] = entry
	}
	return WeeklyHistory(byDate, today), nil
}

func (service *LogService) mutateToday(userID uint, now time.Time, mutate func(entry *models.DailyLog)) (models.DailyLog, error) {
	today := Today(now, service.location)
	entry, found, err := service.logs.FindByUserAndDate(userID, today)
	if err != nil {
		return models.DailyLog{}, err
	}
	if !found {
		entry = models.EmptyDailyLog(userID, today)
		mutate(&entry)
		if err := service.logs.Create(&entry); err != nil {
			return models.DailyLog{}, err
		}
		return entry, nil
	}

	if entry.Items == nil {
		entry.Items = []models.FoodItem{}
	}
	mutate(&entry)
	if err := service.logs.Save(&entry); err != nil {
		return models.DailyLog{}, err
	}
	return entry, nil
}

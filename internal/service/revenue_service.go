package service

import (
	"time"

	"gymshop-inventory/internal/model"
	"gymshop-inventory/internal/repository"
)

// RevenueBucket is one chart bar: the bucket's start boundary and the summed
// sale amounts that fell inside it.
type RevenueBucket struct {
	Start time.Time `json:"start"`
	Total int64     `json:"total"`
}

// RevenueSummary is everything the history screen charts: today's figure,
// the last 7 calendar days, and the last 6 calendar months, oldest first.
type RevenueSummary struct {
	Today   int64           `json:"today"`
	Daily   []RevenueBucket `json:"daily"`
	Monthly []RevenueBucket `json:"monthly"`
}

// sumSales adds the Amount of every sale entry whose timestamp lies in
// [start, end). Restocks carry no amount and never count.
func sumSales(entries []model.StockEntry, start, end time.Time) int64 {
	var total int64
	for _, e := range entries {
		if e.Type != model.MovementSale || e.Amount == nil {
			continue
		}
		if e.Timestamp.Before(start) || !e.Timestamp.Before(end) {
			continue
		}
		total += *e.Amount
	}
	return total
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// TodayRevenue sums sale amounts since local midnight.
func TodayRevenue(entries []model.StockEntry, now time.Time) int64 {
	start := startOfDay(now)
	return sumSales(entries, start, start.AddDate(0, 0, 1))
}

// DailyRevenue returns the last 7 local calendar days including today,
// oldest first.
func DailyRevenue(entries []model.StockEntry, now time.Time) []RevenueBucket {
	buckets := make([]RevenueBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		start := startOfDay(now).AddDate(0, 0, -i)
		buckets = append(buckets, RevenueBucket{
			Start: start,
			Total: sumSales(entries, start, start.AddDate(0, 0, 1)),
		})
	}
	return buckets
}

// MonthlyRevenue returns the last 6 local calendar months including the
// current one, oldest first.
func MonthlyRevenue(entries []model.StockEntry, now time.Time) []RevenueBucket {
	base := startOfMonth(now)
	buckets := make([]RevenueBucket, 0, 6)
	for i := 5; i >= 0; i-- {
		start := base.AddDate(0, -i, 0)
		buckets = append(buckets, RevenueBucket{
			Start: start,
			Total: sumSales(entries, start, start.AddDate(0, 1, 0)),
		})
	}
	return buckets
}

type RevenueService interface {
	Summary() (*RevenueSummary, error)
}

type revenueService struct {
	entryRepo repository.StockEntryRepository
	now       func() time.Time
}

func NewRevenueService(entryRepo repository.StockEntryRepository) RevenueService {
	return &revenueService{entryRepo: entryRepo, now: time.Now}
}

// Summary recomputes the whole view from the current ledger on every call.
// Nothing is persisted.
func (s *revenueService) Summary() (*RevenueSummary, error) {
	entries, err := s.entryRepo.FindAll()
	if err != nil {
		return nil, err
	}
	now := s.now()
	return &RevenueSummary{
		Today:   TodayRevenue(entries, now),
		Daily:   DailyRevenue(entries, now),
		Monthly: MonthlyRevenue(entries, now),
	}, nil
}

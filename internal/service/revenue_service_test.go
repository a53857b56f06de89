package service

import (
	"testing"
	"time"

	"gymshop-inventory/internal/model"
)

func saleAt(ts time.Time, amount int64) model.StockEntry {
	return model.StockEntry{
		Type:      model.MovementSale,
		Quantity:  1,
		Amount:    &amount,
		Timestamp: ts,
	}
}

func restockAt(ts time.Time) model.StockEntry {
	return model.StockEntry{
		Type:      model.MovementRestock,
		Quantity:  10,
		Timestamp: ts,
	}
}

func TestTodayRevenueExcludesOldSales(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.Local)
	entries := []model.StockEntry{
		saleAt(now.Add(-time.Hour), 100),
		saleAt(now.Add(-2*time.Hour), 200),
		saleAt(now.AddDate(0, 0, -8), 50),
	}

	if got := TodayRevenue(entries, now); got != 300 {
		t.Errorf("expected today's revenue 300, got %d", got)
	}
}

func TestDailyRevenueCoversExactlySevenDays(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.Local)
	entries := []model.StockEntry{
		saleAt(now.Add(-time.Hour), 100),
		saleAt(now.Add(-2*time.Hour), 200),
		saleAt(now.AddDate(0, 0, -8), 50), // beyond day -7, must not appear
	}

	buckets := DailyRevenue(entries, now)
	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}

	var total int64
	for _, b := range buckets {
		total += b.Total
	}
	if total != 300 {
		t.Errorf("expected 7-day total 300 (the 8-day-old sale excluded), got %d", total)
	}
	if last := buckets[6]; last.Total != 300 {
		t.Errorf("expected today's bucket (last) to hold 300, got %d", last.Total)
	}
	if !buckets[0].Start.Before(buckets[6].Start) {
		t.Error("buckets must be ordered oldest first")
	}
}

func TestDailyRevenueUsesLocalDayBoundaries(t *testing.T) {
	now := time.Date(2026, time.March, 15, 0, 10, 0, 0, time.Local)
	yesterdayLate := time.Date(2026, time.March, 14, 23, 55, 0, 0, time.Local)
	entries := []model.StockEntry{
		saleAt(yesterdayLate, 70),
	}

	if got := TodayRevenue(entries, now); got != 0 {
		t.Errorf("a 23:55 sale yesterday must not count today, got %d", got)
	}
	buckets := DailyRevenue(entries, now)
	if buckets[5].Total != 70 {
		t.Errorf("expected yesterday's bucket to hold 70, got %d", buckets[5].Total)
	}
}

func TestMonthlyRevenueRollsSixMonths(t *testing.T) {
	now := time.Date(2026, time.March, 31, 12, 0, 0, 0, time.Local)
	entries := []model.StockEntry{
		saleAt(time.Date(2026, time.March, 2, 9, 0, 0, 0, time.Local), 500),
		saleAt(time.Date(2025, time.October, 20, 9, 0, 0, 0, time.Local), 120),
		saleAt(time.Date(2025, time.September, 29, 9, 0, 0, 0, time.Local), 999), // 7 months back
	}

	buckets := MonthlyRevenue(entries, now)
	if len(buckets) != 6 {
		t.Fatalf("expected 6 buckets, got %d", len(buckets))
	}
	if buckets[0].Total != 120 {
		t.Errorf("expected oldest bucket (Oct 2025) to hold 120, got %d", buckets[0].Total)
	}
	if buckets[5].Total != 500 {
		t.Errorf("expected current month bucket to hold 500, got %d", buckets[5].Total)
	}
	var total int64
	for _, b := range buckets {
		total += b.Total
	}
	if total != 620 {
		t.Errorf("the 7-month-old sale must be excluded, total %d", total)
	}
}

func TestRestocksNeverCountAsRevenue(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 0, 0, time.Local)
	entries := []model.StockEntry{
		saleAt(now.Add(-time.Hour), 100),
		restockAt(now.Add(-time.Hour)),
	}

	if got := TodayRevenue(entries, now); got != 100 {
		t.Errorf("restocks must not add revenue, got %d", got)
	}
}

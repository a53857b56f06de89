package handler

import (
	"gymshop-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	inventory service.InventoryService
	revenue   service.RevenueService
}

func NewDashboardHandler(inv service.InventoryService, rev service.RevenueService) *DashboardHandler {
	return &DashboardHandler{inventory: inv, revenue: rev}
}

// GetStats returns the overview counters for the dashboard header.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.inventory.GetDashboardStats()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard stats"})
	}
	return c.JSON(stats)
}

// GetRevenueSummary returns today's revenue plus the 7-day and 6-month
// chart buckets, recomputed from the ledger on every call.
func (h *DashboardHandler) GetRevenueSummary(c *fiber.Ctx) error {
	summary, err := h.revenue.Summary()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute revenue summary"})
	}
	return c.JSON(summary)
}

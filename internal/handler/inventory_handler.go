package handler

import (
	"errors"

	"gymshop-inventory/internal/ledger"
	"gymshop-inventory/internal/model"
	"gymshop-inventory/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(s service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: s}
}

func (h *InventoryHandler) GetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetAllProducts()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(products)
}

func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateProduct(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product added", "data": product})
}

func (h *InventoryHandler) UpdateProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.UpdateProduct(productID, &product)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

func (h *InventoryHandler) DeleteProduct(c *fiber.Ctx) error {
	productID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.DeleteProduct(productID); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Product removed"})
}

// RecordMovement is the write path for sales and restocks. Engine errors map
// to stable statuses so the app can tell "not enough stock" apart from
// "deleted meanwhile" and "busy, retry".
func (h *InventoryHandler) RecordMovement(c *fiber.Ctx) error {
	var req service.MovementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	res, err := h.service.RecordMovement(c.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInsufficientStock):
			return c.Status(422).JSON(fiber.Map{"error": "Not enough stock available"})
		case errors.Is(err, ledger.ErrProductNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Product not found, refresh your list"})
		case errors.Is(err, ledger.ErrConflict):
			return c.Status(409).JSON(fiber.Map{"error": "Movement conflicted, please try again"})
		default:
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
	}

	return c.Status(201).JSON(fiber.Map{
		"message":   "Movement recorded",
		"new_stock": res.NewStock,
		"entry_id":  res.EntryID,
	})
}

func (h *InventoryHandler) GetEntries(c *fiber.Ctx) error {
	entries, err := h.service.GetAllEntries()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(entries)
}

func (h *InventoryHandler) GetEntry(c *fiber.Ctx) error {
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid entry ID"})
	}

	entry, err := h.service.GetEntryByID(entryID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Entry not found"})
	}
	return c.JSON(entry)
}

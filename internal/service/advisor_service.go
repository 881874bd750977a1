package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"zerowastechef/internal/advisor"
	"zerowastechef/internal/errors"
	"zerowastechef/internal/model"
	"zerowastechef/internal/repository"
)

// RecipeGenerator produces suggestion text for a prompt. Satisfied by
// *advisor.Client.
type RecipeGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// AdvisorService turns the current inventory plus preferences into a recipe
// suggestion via the external generative-text service.
type AdvisorService interface {
	Suggest(ctx context.Context, accountID uint, restrictions, cuisines, selectedItems []string) (string, error)
}

type advisorService struct {
	inventoryRepo repository.InventoryRepository
	generator     RecipeGenerator
}

// NewAdvisorService creates a new advisor service.
func NewAdvisorService(inventoryRepo repository.InventoryRepository, generator RecipeGenerator) AdvisorService {
	return &advisorService{
		inventoryRepo: inventoryRepo,
		generator:     generator,
	}
}

var _ RecipeGenerator = (*advisor.Client)(nil)

// Suggest builds a prompt from the account's inventory snapshot and the
// user's preferences and returns the raw suggestion text. A non-empty item
// selection restricts the prompt to those names. Any upstream failure maps
// to ErrAdvisoryUnavailable; it never crashes the caller.
func (s *advisorService) Suggest(ctx context.Context, accountID uint, restrictions, cuisines, selectedItems []string) (string, error) {
	items, err := s.inventoryRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return "", fmt.Errorf("list items: %w", err)
	}

	if len(selectedItems) > 0 {
		selected := make(map[string]bool, len(selectedItems))
		for _, name := range selectedItems {
			selected[name] = true
		}
		filtered := items[:0]
		for _, item := range items {
			if selected[item.Name] {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if len(items) == 0 {
		return "", errors.ErrEmptyInventory
	}

	text, err := s.generator.GenerateContent(ctx, buildRecipePrompt(items, restrictions, cuisines))
	if err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrAdvisoryUnavailable, err)
	}
	return text, nil
}

// buildRecipePrompt renders the inventory and preferences into the chef
// prompt sent to the advisory service.
func buildRecipePrompt(items []model.InventoryItem, restrictions, cuisines []string) string {
	rendered := make([]string, 0, len(items))
	for _, item := range items {
		rendered = append(rendered, renderItem(item))
	}

	var b strings.Builder
	b.WriteString("You are a professional Zero-Waste Chef. Your task is to suggest recipes using the following ingredients. ")
	b.WriteString("The goal is to utilize all ingredients efficiently before their expiry date and cater to the user's ")
	b.WriteString("dietary restrictions and preferred cuisines. The inventory items are:\n")
	b.WriteString(strings.Join(rendered, ", "))
	b.WriteString("\nThe dietary restrictions are: " + strings.Join(restrictions, ", ") + ".\n")
	b.WriteString("The user's preferred cuisines are: " + strings.Join(cuisines, ", ") + ".\n")
	b.WriteString("Please suggest recipes that are practical, minimize food waste, and fit within these constraints.")
	return b.String()
}

// renderItem formats one item for the prompt, e.g. "Milk (1 liters), expires on 2024-06-09".
func renderItem(item model.InventoryItem) string {
	qty := strconv.FormatFloat(item.Quantity, 'f', -1, 64)
	return fmt.Sprintf("%s (%s %s), expires on %s", item.Name, qty, item.Unit, item.ExpiryDate.Format("2006-01-02"))
}

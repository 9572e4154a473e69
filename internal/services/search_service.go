package services

import (
	"Shelf/internal/models"
	"Shelf/internal/repository"
	"Shelf/internal/validation"
	"strings"
)

// SearchResult is a box that matched, directly or through its items, with
// only the items that matched.
type SearchResult struct {
	Box   models.Box
	Items []models.Item
}

type SearchService interface {
	Search(query string) ([]SearchResult, error)
}

type searchServiceImpl struct {
	boxRepo  repository.BoxRepository
	itemRepo repository.ItemRepository
}

func NewSearchService(boxRepo repository.BoxRepository, itemRepo repository.ItemRepository) SearchService {
	return &searchServiceImpl{boxRepo: boxRepo, itemRepo: itemRepo}
}

// Search matches query case-insensitively against box name, description and
// location and item name and description. Results are in creation order.
func (s *searchServiceImpl) Search(query string) ([]SearchResult, error) {
	term := strings.TrimSpace(query)
	if term == "" {
		return nil, validation.Required("q")
	}

	boxes, err := s.boxRepo.Search(term)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.Search(term)
	if err != nil {
		return nil, err
	}

	matchedItems := make(map[uint][]models.Item, len(boxes))
	for _, item := range items {
		matchedItems[item.BoxID] = append(matchedItems[item.BoxID], item)
	}

	results := make([]SearchResult, 0, len(boxes))
	for _, box := range boxes {
		boxItems := matchedItems[box.ID]
		if boxItems == nil {
			boxItems = []models.Item{}
		}
		results = append(results, SearchResult{Box: box, Items: boxItems})
	}
	return results, nil
}

package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"go-catalog-api/internal/catalog"
	"go-catalog-api/internal/model"
	"go-catalog-api/internal/repository"
	"go-catalog-api/internal/ws"
	"go-catalog-api/pkg/validator"

	"github.com/google/uuid"
)

var ErrProductNotFound = errors.New("product not found")

type CatalogService interface {
	GetCatalog(filter string, includeUnavailable bool) (*CatalogView, error)
	GetAllProducts() ([]model.Product, error)
	CreateProduct(req *model.Product, userID, userName string) error
	UpdateProduct(id uuid.UUID, req *model.Product, userID, userName string) (*model.Product, error)
	DeleteProduct(id uuid.UUID, userID, userName string) error
	ToggleAvailability(id uuid.UUID, userID, userName string) (*model.Product, error)
	GetCategoryOrder() ([]string, error)
	MoveCategory(category string, direction int) ([]string, error)
}

// CatalogView is the projected read model every front-end consumes. Total
// lets clients tell an empty catalog apart from a filter that matched
// nothing.
type CatalogView struct {
	Groups        []catalog.Group `json:"grupos"`
	CategoryOrder []string        `json:"orden_categorias"`
	TotalProducts int             `json:"total_productos"`
}

type catalogService struct {
	productRepo repository.ProductRepository
	configRepo  repository.ConfigRepository
	wsHub       *ws.Hub
}

func NewCatalogService(pRepo repository.ProductRepository, cRepo repository.ConfigRepository, hub *ws.Hub) CatalogService {
	return &catalogService{
		productRepo: pRepo,
		configRepo:  cRepo,
		wsHub:       hub,
	}
}

// GetCatalog loads products and the persisted category order, reconciles the
// order against what actually exists, persists it if it changed, and projects
// the grouped view. A config load failure falls back to an empty order and
// never blocks the catalog.
func (s *catalogService) GetCatalog(filter string, includeUnavailable bool) (*CatalogView, error) {
	products, err := s.productRepo.FindAll()
	if err != nil {
		return nil, err
	}

	order, err := s.configRepo.GetCategoryOrder()
	if err != nil {
		log.Printf("Warning: failed to load category order, using empty: %v", err)
		order = []string{}
	}

	reconciled, changed := catalog.Reconcile(order, catalog.Categories(products))
	if changed {
		// In-memory order stays authoritative for this response even if the
		// write fails; the next fetch will try again.
		if err := s.configRepo.SaveCategoryOrder(reconciled); err != nil {
			log.Printf("Warning: failed to persist reconciled category order: %v", err)
		}
	}

	return &CatalogView{
		Groups:        catalog.Project(products, reconciled, filter, includeUnavailable),
		CategoryOrder: reconciled,
		TotalProducts: len(products),
	}, nil
}

func (s *catalogService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) CreateProduct(req *model.Product, userID, userName string) error {
	// 1. Validasi struct dasar
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Defaults + audit fields
	req.Normalize(time.Now())
	req.CreatedBy = userID
	req.UpdatedBy = userID
	req.CreatedByUserID = &userID
	req.UpdatedByUserID = &userID

	// 3. Simpan ke database
	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	// 4. A brand-new category gets appended to the order right away so the
	// next render is already consistent.
	s.appendCategory(req.Category)

	// 5. Broadcast ke WebSocket
	s.broadcast("product_created", req, userID, userName,
		fmt.Sprintf("%s created product '%s'", userName, req.Name))

	return nil
}

func (s *catalogService) UpdateProduct(id uuid.UUID, req *model.Product, userID, userName string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	categoryChanged := existing.Category != req.Category

	existing.Category = req.Category
	existing.Name = req.Name
	existing.BillingCode = req.BillingCode
	existing.PriceBeforeTax = req.PriceBeforeTax
	existing.ImageURL = req.ImageURL
	existing.DatasheetURL = req.DatasheetURL
	existing.DrawingURL = req.DrawingURL
	existing.Material = req.Material
	existing.IPRating = req.IPRating
	existing.Color = req.Color
	existing.ColorTemp = req.ColorTemp
	existing.Warranty = req.Warranty
	existing.Normalize(time.Now())
	existing.UpdatedBy = userID
	existing.UpdatedByUserID = &userID

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	// Moving a product between categories can both introduce a new category
	// and empty out the old one.
	if categoryChanged {
		s.syncCategoryOrder()
	}

	s.broadcast("product_updated", existing, userID, userName,
		fmt.Sprintf("%s updated product '%s'", userName, existing.Name))

	return existing, nil
}

func (s *catalogService) DeleteProduct(id uuid.UUID, userID, userName string) error {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return ErrProductNotFound
	}

	if err := s.productRepo.Delete(id); err != nil {
		return err
	}

	// Deleting the last product of a category removes the category from the
	// persisted order.
	s.syncCategoryOrder()

	s.broadcast("product_deleted", existing, userID, userName,
		fmt.Sprintf("%s deleted product '%s'", userName, existing.Name))

	return nil
}

// ToggleAvailability flips a product between Disponible and No disponible.
func (s *catalogService) ToggleAvailability(id uuid.UUID, userID, userName string) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	newStatus := model.StatusAvailable
	if existing.IsAvailable() {
		newStatus = model.StatusUnavailable
	}

	if err := s.productRepo.UpdateStatus(id, newStatus, userID); err != nil {
		return nil, err
	}
	existing.Status = newStatus

	s.broadcast("product_status_changed", existing, userID, userName,
		fmt.Sprintf("%s marked '%s' as %s", userName, existing.Name, newStatus))

	return existing, nil
}

func (s *catalogService) GetCategoryOrder() ([]string, error) {
	return s.configRepo.GetCategoryOrder()
}

// MoveCategory swaps a category with its neighbor and persists the new order.
// On a persist failure the swapped order is still returned alongside the
// error: the in-memory state is not rolled back, the caller decides how to
// surface it.
func (s *catalogService) MoveCategory(category string, direction int) ([]string, error) {
	order, err := s.configRepo.GetCategoryOrder()
	if err != nil {
		return nil, err
	}

	moved, changed := catalog.MoveAdjacent(order, category, direction)
	if !changed {
		return order, nil
	}

	if err := s.configRepo.SaveCategoryOrder(moved); err != nil {
		log.Printf("Warning: failed to persist category order after move: %v", err)
		return moved, err
	}
	return moved, nil
}

// appendCategory registers a possibly-new category in the persisted order.
func (s *catalogService) appendCategory(category string) {
	order, err := s.configRepo.GetCategoryOrder()
	if err != nil {
		log.Printf("Warning: failed to load category order: %v", err)
		return
	}
	if updated, changed := catalog.AppendIfAbsent(order, category); changed {
		if err := s.configRepo.SaveCategoryOrder(updated); err != nil {
			log.Printf("Warning: failed to persist category order: %v", err)
		}
	}
}

// syncCategoryOrder re-runs full reconciliation against the current products.
func (s *catalogService) syncCategoryOrder() {
	products, err := s.productRepo.FindAll()
	if err != nil {
		log.Printf("Warning: failed to list products for category sync: %v", err)
		return
	}
	order, err := s.configRepo.GetCategoryOrder()
	if err != nil {
		log.Printf("Warning: failed to load category order: %v", err)
		return
	}
	if reconciled, changed := catalog.Reconcile(order, catalog.Categories(products)); changed {
		if err := s.configRepo.SaveCategoryOrder(reconciled); err != nil {
			log.Printf("Warning: failed to persist category order: %v", err)
		}
	}
}

func (s *catalogService) broadcast(action string, p *model.Product, userID, userName, message string) {
	if s.wsHub == nil {
		return
	}
	go func() {
		payload := map[string]interface{}{
			"type":   "catalog_update",
			"action": action,
			"product": map[string]interface{}{
				"id":        p.ID,
				"categoria": p.Category,
				"nombre":    p.Name,
				"codigo":    p.BillingCode,
				"precio":    p.PriceBeforeTax,
				"estado":    p.Status,
			},
			"user": map[string]interface{}{
				"id":   userID,
				"name": userName,
			},
			"message": message,
		}
		msg, _ := json.Marshal(payload)
		s.wsHub.Broadcast <- msg
	}()
}

package service

import (
	"errors"
	"fmt"
	"time"

	"go-catalog-api/internal/model"
	"go-catalog-api/internal/quote"
	"go-catalog-api/internal/repository"
	"go-catalog-api/pkg/validator"

	"github.com/google/uuid"
)

var ErrEmptyQuote = errors.New("quotation has no items")

const quoteSearchLimit = 10

type QuoteService interface {
	SearchProducts(term string) ([]model.Product, error)
	ComputeTotals(req *QuoteRequest) (*QuoteSummary, error)
	GeneratePDF(req *QuotePDFRequest) ([]byte, string, error)
}

// QuoteLine is one requested cart line; quantity defaults to 1.
type QuoteLine struct {
	ProductID uuid.UUID `json:"product_id" validate:"uuid_required"`
	Quantity  int       `json:"cantidad"`
}

type QuoteRequest struct {
	Lines         []QuoteLine `json:"items" validate:"required,min=1,dive"`
	MarkupPercent float64     `json:"margen" validate:"gte=0"`
}

type QuotePDFRequest struct {
	QuoteRequest
	From string `json:"de"`
	To   string `json:"para"`
}

// QuoteSummary mirrors the quote table: resolved lines plus totals.
type QuoteSummary struct {
	Items  []QuoteSummaryLine `json:"items"`
	Totals quote.Totals       `json:"totales"`
}

type QuoteSummaryLine struct {
	ProductID   uuid.UUID `json:"product_id"`
	BillingCode string    `json:"codigo"`
	Name        string    `json:"nombre"`
	Quantity    int       `json:"cantidad"`
	UnitPrice   float64   `json:"precio_unitario"`
	LineTotal   float64   `json:"total_linea"`
}

type quoteService struct {
	productRepo repository.ProductRepository
}

func NewQuoteService(pRepo repository.ProductRepository) QuoteService {
	return &quoteService{productRepo: pRepo}
}

// SearchProducts backs the quote-builder autocomplete: available products
// matching name or billing code, capped for snappy rendering.
func (s *quoteService) SearchProducts(term string) ([]model.Product, error) {
	if term == "" {
		return []model.Product{}, nil
	}
	return s.productRepo.SearchAvailable(term, quoteSearchLimit)
}

// buildCart re-resolves every requested line against the store so prices can
// never be spoofed by the client.
func (s *quoteService) buildCart(lines []QuoteLine) (*quote.Cart, error) {
	cart := &quote.Cart{}
	for _, line := range lines {
		product, err := s.productRepo.FindByID(line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found", line.ProductID)
		}
		if !product.IsAvailable() {
			return nil, fmt.Errorf("product '%s' is not available", product.Name)
		}
		cart.AddItem(*product)
		if line.Quantity > 1 {
			cart.SetQuantity(product.ID, line.Quantity)
		}
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyQuote
	}
	return cart, nil
}

func (s *quoteService) ComputeTotals(req *QuoteRequest) (*QuoteSummary, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	cart, err := s.buildCart(req.Lines)
	if err != nil {
		return nil, err
	}

	summary := &QuoteSummary{
		Items:  make([]QuoteSummaryLine, 0, len(cart.Items)),
		Totals: cart.ComputeTotals(req.MarkupPercent),
	}
	for _, it := range cart.Items {
		summary.Items = append(summary.Items, QuoteSummaryLine{
			ProductID:   it.ProductID,
			BillingCode: it.BillingCode,
			Name:        it.Name,
			Quantity:    it.Quantity,
			UnitPrice:   quote.UnitPrice(it.BasePrice, req.MarkupPercent),
			LineTotal:   it.LineTotal(req.MarkupPercent),
		})
	}
	return summary, nil
}

// GeneratePDF renders the quotation document and returns the bytes plus the
// download filename.
func (s *quoteService) GeneratePDF(req *QuotePDFRequest) ([]byte, string, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, "", fmt.Errorf("Validation failed: Field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	cart, err := s.buildCart(req.Lines)
	if err != nil {
		return nil, "", err
	}

	doc := quote.Document{
		From:          req.From,
		To:            req.To,
		Date:          time.Now(),
		MarkupPercent: req.MarkupPercent,
		Cart:          *cart,
	}

	data, err := doc.Render()
	if err != nil {
		return nil, "", err
	}
	return data, doc.Filename(), nil
}

package model

import "time"

// Availability states as persisted in the estado column.
const (
	StatusAvailable   = "Disponible"
	StatusUnavailable = "No disponible"
)

// DefaultCategory is assigned when a product is saved without one.
const DefaultCategory = "Sin Categoría"

// Product is a catalog item: pricing, category and media metadata plus the
// technical fields shown in the flipbook view.
type Product struct {
	BaseModel
	Category       string  `gorm:"column:categoria;type:varchar(255);index;not null" json:"categoria"`
	Name           string  `gorm:"column:nombre;type:varchar(255);not null" json:"nombre" validate:"required"`
	BillingCode    string  `gorm:"column:codigo_facturacion;type:varchar(100)" json:"codigo_facturacion" validate:"required"`
	PriceBeforeTax float64 `gorm:"column:precio_antes_iva;default:0" json:"precio_antes_iva" validate:"gte=0"`
	ImageURL       string  `gorm:"column:imagen;type:text" json:"imagen"`
	DatasheetURL   string  `gorm:"column:ficha_tecnica;type:text" json:"ficha_tecnica"`
	DrawingURL     string  `gorm:"column:dibujo;type:text" json:"dibujo"`
	Material       string  `gorm:"column:material;type:varchar(100)" json:"material"`
	IPRating       string  `gorm:"column:ip;type:varchar(20)" json:"ip"`
	Color          string  `gorm:"column:color;type:varchar(50)" json:"color"`
	ColorTemp      string  `gorm:"column:temp;type:varchar(50)" json:"temp"`
	Warranty       string  `gorm:"column:garantia;type:varchar(50)" json:"garantia"`
	Status         string  `gorm:"column:estado;type:varchar(20);default:'Disponible'" json:"estado"`

	LastUpdated time.Time `gorm:"column:fecha_update" json:"fecha_update"`

	// User tracking
	CreatedByUserID *string `gorm:"type:varchar(255)" json:"created_by_user_id,omitempty"`
	UpdatedByUserID *string `gorm:"type:varchar(255)" json:"updated_by_user_id,omitempty"`
	CreatedByUser   *User   `gorm:"foreignKey:CreatedByUserID;references:ID" json:"created_by_user,omitempty"`
	UpdatedByUser   *User   `gorm:"foreignKey:UpdatedByUserID;references:ID" json:"updated_by_user,omitempty"`
}

// TableName keeps the collection name the front-ends already query.
func (Product) TableName() string { return "productos_sielu" }

// IsAvailable treats every status except an explicit "No disponible" as
// available, which is how all the views filter.
func (p *Product) IsAvailable() bool {
	return p.Status != StatusUnavailable
}

// Normalize fills the defaults applied on every write: missing category,
// missing status, negative price, and the LastUpdated stamp.
func (p *Product) Normalize(now time.Time) {
	if p.Category == "" {
		p.Category = DefaultCategory
	}
	if p.Status == "" {
		p.Status = StatusAvailable
	}
	if p.PriceBeforeTax < 0 {
		p.PriceBeforeTax = 0
	}
	p.LastUpdated = now
}

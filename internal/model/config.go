package model

// CategoryOrderKey is the fixed name of the singleton config record holding
// the canonical category display order.
const CategoryOrderKey = "categories"

// CategoryOrderConfig is the single configuration row backing the category
// order. The order itself is stored as a JSON array so the whole sequence is
// replaced in one upsert.
type CategoryOrderConfig struct {
	Name  string   `gorm:"primaryKey;type:varchar(100)" json:"name"`
	Order []string `gorm:"serializer:json;type:jsonb;column:category_order" json:"order"`
}

// TableName mirrors the original config collection.
func (CategoryOrderConfig) TableName() string { return "sielu_config" }

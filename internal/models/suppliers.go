package models

import "go.mongodb.org/mongo-driver/bson"

// Supplier categories recognised by the catalog.
var SupplierCategories = []string{
	"photography", "dress", "catering", "flowers", "kina", "music", "invitation", "makeup",
}

type PriceRange struct {
	Min int `bson:"min" json:"min"`
	Max int `bson:"max" json:"max"`
}

type Contact struct {
	Phone string `bson:"phone" json:"phone"`
	Email string `bson:"email" json:"email"`
}

type Supplier struct {
	ID             string     `bson:"id" json:"id"`
	BusinessName   string     `bson:"businessName" json:"businessName"`
	OwnerName      string     `bson:"ownerName" json:"ownerName"`
	Category       string     `bson:"category" json:"category"`
	Description    string     `bson:"description" json:"description"`
	Services       []string   `bson:"services" json:"services"`
	Location       Location   `bson:"location" json:"location"`
	PriceRange     PriceRange `bson:"priceRange" json:"priceRange"`
	Contact        Contact    `bson:"contact" json:"contact"`
	Images         []string   `bson:"images" json:"images"`
	IsWomenOwned   bool       `bson:"isWomenOwned" json:"isWomenOwned"`
	IsSocialImpact bool       `bson:"isSocialImpact" json:"isSocialImpact"`
	Rating         float64    `bson:"rating" json:"rating"`
	ReviewCount    int        `bson:"reviewCount" json:"reviewCount"`
}

// SupplierFilter narrows the supplier listing. WomenOwned only constrains when
// true, matching the query surface: womenOwned=true filters, anything else is
// treated as absent.
type SupplierFilter struct {
	City       string
	Category   string
	WomenOwned bool
	MinPrice   *int
	MaxPrice   *int
}

func (f SupplierFilter) Query() bson.M {
	query := bson.M{}
	if f.City != "" {
		query["location.city"] = f.City
	}
	if f.Category != "" {
		query["category"] = f.Category
	}
	if f.WomenOwned {
		query["isWomenOwned"] = true
	}
	if f.MinPrice != nil {
		query["priceRange.min"] = bson.M{"$gte": *f.MinPrice}
	}
	if f.MaxPrice != nil {
		query["priceRange.max"] = bson.M{"$lte": *f.MaxPrice}
	}
	return query
}

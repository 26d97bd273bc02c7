package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// ProductCollection is the Mongo collection holding the catalogue.
const ProductCollection = "product"

// Product is a catalogue item. Immutable once created; nothing in this
// system updates or deletes products.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title       string             `bson:"title"        json:"title"`
	Description string             `bson:"description"  json:"description"`
	Price       float64            `bson:"price"        json:"price"`
	Category    string             `bson:"category"     json:"category"`
	InStock     bool               `bson:"in_stock"     json:"in_stock"`
	Image       string             `bson:"image"        json:"image"`
}

// ProductView is the client-facing product shape: the internal Mongo _id
// rendered as a string under the key "id".
type ProductView struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"in_stock"`
	Image       string  `json:"image"`
}

// View maps a stored product to its API representation.
func (p Product) View() ProductView {
	return ProductView{
		ID:          p.ID.Hex(),
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		InStock:     p.InStock,
		Image:       p.Image,
	}
}

// DemoProduct is the single catalogue entry served when no store is
// configured. Its id is the literal "0" so storefront clients can tell
// demo data apart from real ObjectIDs.
func DemoProduct() ProductView {
	return ProductView{
		ID:          "0",
		Title:       "Free-Range Eggs (12 pcs)",
		Description: "Fresh farm free-range chicken eggs. Rich yolks and great taste.",
		Price:       4.99,
		Category:    "chicken",
		InStock:     true,
		Image:       "https://images.unsplash.com/photo-1517959105821-eaf2591984dd?q=80&w=1200&auto=format&fit=crop",
	}
}

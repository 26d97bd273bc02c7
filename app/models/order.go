package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderCollection is the Mongo collection holding orders.
const OrderCollection = "order"

// Payment methods and the simulated payment outcomes they map to.
// There is no gateway behind this: card orders are labelled paid,
// cash-on-delivery orders stay pending.
const (
	PaymentCard = "card"
	PaymentCOD  = "cod"

	StatusPaid    = "paid"
	StatusPending = "pending"
)

// PlaceholderOrderID is returned when the order could not be persisted.
// Checkout stays available through storage outages; the placeholder id
// marks orders that were accepted but not stored.
const PlaceholderOrderID = "demo-order-id"

// OrderItem is one line of an order. Title, price and subtotal are
// snapshotted from the product at order time, so historical orders are
// immune to later catalogue changes.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Title     string  `bson:"title"      json:"title"`
	Price     float64 `bson:"price"      json:"price"`
	Quantity  int     `bson:"quantity"   json:"quantity"`
	Subtotal  float64 `bson:"subtotal"   json:"subtotal"`
}

// Order is a customer's purchase request. Created exactly once per
// successful submission; never mutated or deleted afterwards.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"  json:"-"`
	Items         []OrderItem        `bson:"items"          json:"items"`
	CustomerName  string             `bson:"customer_name"  json:"customer_name"`
	Email         string             `bson:"email"          json:"email"`
	Address       string             `bson:"address"        json:"address"`
	PaymentMethod string             `bson:"payment_method" json:"payment_method"`
	TotalAmount   float64            `bson:"total_amount"   json:"total_amount"`
	Status        string             `bson:"status"         json:"status"`
	CreatedAt     time.Time          `bson:"created_at"     json:"created_at"`
}

// NormalizePaymentMethod maps anything outside {card, cod} to card.
func NormalizePaymentMethod(method string) string {
	if method == PaymentCard || method == PaymentCOD {
		return method
	}
	return PaymentCard
}

// PaymentStatus returns the simulated payment outcome for a method:
// paid iff the method is card.
func PaymentStatus(method string) string {
	if method == PaymentCard {
		return StatusPaid
	}
	return StatusPending
}

// RoundCents rounds an amount to two decimal places.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

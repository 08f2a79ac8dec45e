package entity

import (
	"time"
)

const (
	PropertyTypeBuy  = "buy"
	PropertyTypeSell = "sell"
	PropertyTypeRent = "rent"
)

const (
	PropertyStatusAvailable = "available"
	PropertyStatusReserved  = "reserved"
	PropertyStatusSold      = "sold"
	PropertyStatusRented    = "rented"
)

type Property struct {
	ID          string  `json:"id" firestore:"id"`
	Title       string  `json:"title" firestore:"title"`
	Type        string  `json:"type" firestore:"type"` // buy, sell, rent
	Price       float64 `json:"price" firestore:"price"`
	Currency    string  `json:"currency" firestore:"currency"`
	Description string  `json:"description" firestore:"description"`

	City         string   `json:"city" firestore:"city"`
	Neighborhood string   `json:"neighborhood,omitempty" firestore:"neighborhood,omitempty"`
	Address      string   `json:"address,omitempty" firestore:"address,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty" firestore:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty" firestore:"longitude,omitempty"`

	SellerName  string `json:"seller_name" firestore:"sellerName"`
	SellerPhone string `json:"seller_phone" firestore:"sellerPhone"`
	SellerEmail string `json:"seller_email,omitempty" firestore:"sellerEmail,omitempty"`

	Images   []string `json:"images" firestore:"images"`
	VideoURL string   `json:"video_url,omitempty" firestore:"videoURL,omitempty"`

	// available -> reserved -> {sold | rented}, reserved -> available on
	// cancellation. Admin override may set any value directly.
	Status string `json:"status" firestore:"status"`

	AgentID string `json:"agent_id" firestore:"agentId"`
	// Cached at write time; not invalidated when the agent renames.
	AgentUsername string `json:"agent_username" firestore:"agentUsername"`

	Views int `json:"views" firestore:"views"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func ValidPropertyType(t string) bool {
	switch t {
	case PropertyTypeBuy, PropertyTypeSell, PropertyTypeRent:
		return true
	}
	return false
}

func ValidPropertyStatus(status string) bool {
	switch status {
	case PropertyStatusAvailable, PropertyStatusReserved, PropertyStatusSold, PropertyStatusRented:
		return true
	}
	return false
}

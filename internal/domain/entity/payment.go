package entity

import (
	"time"
)

const (
	PaymentMethodOrangeMoney = "orange_money"
	PaymentMethodMobileMoney = "mobile_money"
	PaymentMethodPaycard     = "paycard"
	PaymentMethodBankCard    = "bank_card"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusConfirmed = "confirmed"
	PaymentStatusCancelled = "cancelled"
)

type Payment struct {
	ID        string `json:"id" firestore:"id"`
	Reference string `json:"reference" firestore:"reference"`

	PropertyID string `json:"property_id" firestore:"propertyId"`
	// Cached at write time; survives later property edits.
	PropertyTitle string `json:"property_title" firestore:"propertyTitle"`

	BuyerID    string `json:"buyer_id" firestore:"buyerId"`
	BuyerEmail string `json:"buyer_email" firestore:"buyerEmail"`

	Amount   float64 `json:"amount" firestore:"amount"`
	Currency string  `json:"currency" firestore:"currency"`
	Method   string  `json:"method" firestore:"method"`
	Phone    string  `json:"phone,omitempty" firestore:"phone,omitempty"`

	Status string `json:"status" firestore:"status"` // pending, confirmed, cancelled

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func ValidPaymentMethod(method string) bool {
	switch method {
	case PaymentMethodOrangeMoney, PaymentMethodMobileMoney, PaymentMethodPaycard, PaymentMethodBankCard:
		return true
	}
	return false
}

// MethodRequiresPhone reports whether a payment method needs a contact
// phone number to process.
func MethodRequiresPhone(method string) bool {
	return method == PaymentMethodOrangeMoney || method == PaymentMethodMobileMoney
}

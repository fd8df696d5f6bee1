package domain

import (
	"time"

	userdomain "github.com/mercadito/retail-api/internal/user/domain"
	"github.com/mercadito/retail-api/pkg/optional"
)

// PaymentMethod is the closed set of purchase payment methods.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodDebitCard  PaymentMethod = "debit_card"
	PaymentMethodTransfer   PaymentMethod = "transfer"
)

// Valid reports whether m is a member of the closed set.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodTransfer:
		return true
	}
	return false
}

// PaymentStatus is the closed set of purchase payment states.
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Valid reports whether s is a member of the closed set.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusCompleted, PaymentStatusPending, PaymentStatusFailed:
		return true
	}
	return false
}

// DeliveryStatus is the closed set of purchase delivery states.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusShipped   DeliveryStatus = "shipped"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusCancelled DeliveryStatus = "cancelled"
)

// Valid reports whether s is a member of the closed set.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusShipped, DeliveryStatusDelivered, DeliveryStatusCancelled:
		return true
	}
	return false
}

// Purchase represents a completed sale to a user. The purchase date is set
// by the server at creation and the owning user is create-only; the foreign
// key restricts deleting a user that still has purchases.
type Purchase struct {
	ID              uint            `json:"purchase_id" gorm:"primaryKey;column:purchase_id"`
	PurchaseDate    time.Time       `json:"purchase_date" gorm:"not null"`
	ItemDescription *string         `json:"item_description" gorm:"type:text"`
	Quantity        int             `json:"quantity" gorm:"not null"`
	TotalAmount     float64         `json:"total_amount" gorm:"not null"`
	PaymentMethod   PaymentMethod   `json:"payment_method" gorm:"size:50;not null"`
	PaymentStatus   PaymentStatus   `json:"payment_status" gorm:"size:50;not null"`
	DeliveryStatus  DeliveryStatus  `json:"delivery_status" gorm:"size:50;not null"`
	UserID          uint            `json:"user_id" gorm:"not null;index"`
	User            userdomain.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name
func (Purchase) TableName() string {
	return "purchases"
}

// CreatePurchase carries the caller-supplied fields for a new purchase.
// The purchase date is not accepted from the caller.
type CreatePurchase struct {
	ItemDescription *string        `json:"item_description"`
	Quantity        int            `json:"quantity"`
	TotalAmount     float64        `json:"total_amount"`
	PaymentMethod   PaymentMethod  `json:"payment_method"`
	PaymentStatus   PaymentStatus  `json:"payment_status"`
	DeliveryStatus  DeliveryStatus `json:"delivery_status"`
	UserID          uint           `json:"user_id"`
}

// PurchaseChanges is the purchase change-set. Neither the purchase date nor
// the owning user has a slot: both are fixed at creation.
type PurchaseChanges struct {
	ItemDescription optional.Value[*string]        `json:"item_description"`
	Quantity        optional.Value[int]            `json:"quantity"`
	TotalAmount     optional.Value[float64]        `json:"total_amount"`
	PaymentMethod   optional.Value[PaymentMethod]  `json:"payment_method"`
	PaymentStatus   optional.Value[PaymentStatus]  `json:"payment_status"`
	DeliveryStatus  optional.Value[DeliveryStatus] `json:"delivery_status"`
}

// ApplyTo merges the set slots into p, leaving unset fields untouched.
func (c PurchaseChanges) ApplyTo(p *Purchase) {
	optional.Apply(&p.ItemDescription, c.ItemDescription)
	optional.Apply(&p.Quantity, c.Quantity)
	optional.Apply(&p.TotalAmount, c.TotalAmount)
	optional.Apply(&p.PaymentMethod, c.PaymentMethod)
	optional.Apply(&p.PaymentStatus, c.PaymentStatus)
	optional.Apply(&p.DeliveryStatus, c.DeliveryStatus)
}

// Changes converts a full replacement payload into a change-set with every
// slot set.
func (r CreatePurchase) Changes() PurchaseChanges {
	return PurchaseChanges{
		ItemDescription: optional.Of(r.ItemDescription),
		Quantity:        optional.Of(r.Quantity),
		TotalAmount:     optional.Of(r.TotalAmount),
		PaymentMethod:   optional.Of(r.PaymentMethod),
		PaymentStatus:   optional.Of(r.PaymentStatus),
		DeliveryStatus:  optional.Of(r.DeliveryStatus),
	}
}

// PurchaseRepository defines the contract for purchase data access
type PurchaseRepository interface {
	Create(purchase *Purchase) error
	FindByID(id uint) (*Purchase, error)
	FindByUserID(userID uint) ([]Purchase, error)
	FindAll(limit, offset int) ([]Purchase, error)
	Save(purchase *Purchase) error
	Delete(id uint) error
}

package domain

import (
	"time"

	userdomain "github.com/mercadito/retail-api/internal/user/domain"
	"github.com/mercadito/retail-api/pkg/optional"
)

// PaymentStatus is the closed set of invoice payment states.
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

// Valid reports whether s is a member of the closed set.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPartial, PaymentStatusUnpaid, PaymentStatusOverdue:
		return true
	}
	return false
}

// PaymentMethod is the closed set of invoice payment methods.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCredit   PaymentMethod = "credit"
	PaymentMethodDebit    PaymentMethod = "debit"
	PaymentMethodCheck    PaymentMethod = "check"
	PaymentMethodTransfer PaymentMethod = "transfer"
)

// Valid reports whether m is a member of the closed set.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCredit, PaymentMethodDebit, PaymentMethodCheck, PaymentMethodTransfer:
		return true
	}
	return false
}

// Invoice represents a bill issued to a user. The owning user is fixed at
// creation; the foreign key restricts deleting a user that still has
// invoices.
type Invoice struct {
	ID             uint            `json:"invoice_id" gorm:"primaryKey;column:invoice_id"`
	InvoiceNumber  string          `json:"invoice_number" gorm:"size:50;uniqueIndex;not null"`
	InvoiceDate    time.Time       `json:"invoice_date" gorm:"type:date;not null"`
	DueDate        *time.Time      `json:"due_date" gorm:"type:date"`
	TotalAmount    float64         `json:"total_amount" gorm:"not null"`
	PaymentStatus  PaymentStatus   `json:"payment_status" gorm:"size:50;not null"`
	PaymentMethod  PaymentMethod   `json:"payment_method" gorm:"size:50;not null"`
	BillingAddress *string         `json:"billing_address" gorm:"type:text"`
	UserID         uint            `json:"user_id" gorm:"not null;index"`
	User           userdomain.User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name
func (Invoice) TableName() string {
	return "invoices"
}

// CreateInvoice carries the caller-supplied fields for a new invoice.
type CreateInvoice struct {
	InvoiceNumber  string        `json:"invoice_number"`
	InvoiceDate    time.Time     `json:"invoice_date"`
	DueDate        *time.Time    `json:"due_date"`
	TotalAmount    float64       `json:"total_amount"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	BillingAddress *string       `json:"billing_address"`
	UserID         uint          `json:"user_id"`
}

// InvoiceChanges is the invoice change-set. The owning user has no slot:
// user_id is create-only.
type InvoiceChanges struct {
	InvoiceNumber  optional.Value[string]        `json:"invoice_number"`
	InvoiceDate    optional.Value[time.Time]     `json:"invoice_date"`
	DueDate        optional.Value[*time.Time]    `json:"due_date"`
	TotalAmount    optional.Value[float64]       `json:"total_amount"`
	PaymentStatus  optional.Value[PaymentStatus] `json:"payment_status"`
	PaymentMethod  optional.Value[PaymentMethod] `json:"payment_method"`
	BillingAddress optional.Value[*string]       `json:"billing_address"`
}

// ApplyTo merges the set slots into inv, leaving unset fields untouched.
func (c InvoiceChanges) ApplyTo(inv *Invoice) {
	optional.Apply(&inv.InvoiceNumber, c.InvoiceNumber)
	optional.Apply(&inv.InvoiceDate, c.InvoiceDate)
	optional.Apply(&inv.DueDate, c.DueDate)
	optional.Apply(&inv.TotalAmount, c.TotalAmount)
	optional.Apply(&inv.PaymentStatus, c.PaymentStatus)
	optional.Apply(&inv.PaymentMethod, c.PaymentMethod)
	optional.Apply(&inv.BillingAddress, c.BillingAddress)
}

// Changes converts a full replacement payload into a change-set with every
// slot set.
func (r CreateInvoice) Changes() InvoiceChanges {
	return InvoiceChanges{
		InvoiceNumber:  optional.Of(r.InvoiceNumber),
		InvoiceDate:    optional.Of(r.InvoiceDate),
		DueDate:        optional.Of(r.DueDate),
		TotalAmount:    optional.Of(r.TotalAmount),
		PaymentStatus:  optional.Of(r.PaymentStatus),
		PaymentMethod:  optional.Of(r.PaymentMethod),
		BillingAddress: optional.Of(r.BillingAddress),
	}
}

// InvoiceRepository defines the contract for invoice data access
type InvoiceRepository interface {
	Create(invoice *Invoice) error
	FindByID(id uint) (*Invoice, error)
	FindByNumber(number string) (*Invoice, error)
	FindByUserID(userID uint) ([]Invoice, error)
	FindAll(limit, offset int) ([]Invoice, error)
	Save(invoice *Invoice) error
	Delete(id uint) error
}

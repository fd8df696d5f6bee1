package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadito/retail-api/internal/invoice/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
	"github.com/mercadito/retail-api/pkg/optional"
)

type fakeInvoiceRepo struct {
	invoices map[uint]*domain.Invoice
	nextID   uint
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[uint]*domain.Invoice{}, nextID: 1}
}

func (r *fakeInvoiceRepo) Create(invoice *domain.Invoice) error {
	for _, inv := range r.invoices {
		if inv.InvoiceNumber == invoice.InvoiceNumber {
			return apperror.Conflict("Invoice number already registered")
		}
	}
	invoice.ID = r.nextID
	r.nextID++
	cp := *invoice
	r.invoices[invoice.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) FindByID(id uint) (*domain.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, apperror.NotFound("Invoice not found")
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) FindByNumber(number string) (*domain.Invoice, error) {
	for _, inv := range r.invoices {
		if inv.InvoiceNumber == number {
			cp := *inv
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("Invoice not found")
}

func (r *fakeInvoiceRepo) FindByUserID(userID uint) ([]domain.Invoice, error) {
	out := []domain.Invoice{}
	for id := uint(1); id < r.nextID; id++ {
		if inv, ok := r.invoices[id]; ok && inv.UserID == userID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) FindAll(limit, offset int) ([]domain.Invoice, error) {
	out := []domain.Invoice{}
	for id := uint(1); id < r.nextID; id++ {
		if inv, ok := r.invoices[id]; ok {
			out = append(out, *inv)
		}
	}
	if offset > len(out) {
		offset = len(out)
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeInvoiceRepo) Save(invoice *domain.Invoice) error {
	if _, ok := r.invoices[invoice.ID]; !ok {
		return apperror.NotFound("Invoice not found")
	}
	cp := *invoice
	r.invoices[invoice.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Delete(id uint) error {
	if _, ok := r.invoices[id]; !ok {
		return apperror.NotFound("Invoice not found")
	}
	delete(r.invoices, id)
	return nil
}

func validCreate() domain.CreateInvoice {
	return domain.CreateInvoice{
		InvoiceNumber: "INV-0001",
		InvoiceDate:   time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
		TotalAmount:   150.00,
		PaymentStatus: domain.PaymentStatusUnpaid,
		PaymentMethod: domain.PaymentMethodTransfer,
		UserID:        1,
	}
}

func TestCreateInvoice(t *testing.T) {
	h := NewCreateInvoiceHandler(newFakeInvoiceRepo())

	invoice, err := h.Handle(CreateInvoiceCommand{CreateInvoice: validCreate()})
	require.NoError(t, err)

	assert.Equal(t, uint(1), invoice.ID)
	assert.Equal(t, uint(1), invoice.UserID)
}

func TestCreateInvoiceValidation(t *testing.T) {
	h := NewCreateInvoiceHandler(newFakeInvoiceRepo())

	tests := []struct {
		mutate func(*domain.CreateInvoice)
		field  string
	}{
		{func(r *domain.CreateInvoice) { r.InvoiceNumber = "" }, "invoice_number"},
		{func(r *domain.CreateInvoice) { r.InvoiceDate = time.Time{} }, "invoice_date"},
		{func(r *domain.CreateInvoice) { r.TotalAmount = -1 }, "total_amount"},
		{func(r *domain.CreateInvoice) { r.PaymentStatus = "refunded" }, "payment_status"},
		{func(r *domain.CreateInvoice) { r.PaymentMethod = "bitcoin" }, "payment_method"},
		{func(r *domain.CreateInvoice) { r.UserID = 0 }, "user_id"},
	}

	for _, tt := range tests {
		req := validCreate()
		tt.mutate(&req)
		_, err := h.Handle(CreateInvoiceCommand{CreateInvoice: req})
		require.Error(t, err, tt.field)
		assert.Equal(t, tt.field, apperror.From(err).Field())
	}
}

func TestCreateInvoiceRejectsDuplicateNumber(t *testing.T) {
	repo := newFakeInvoiceRepo()
	h := NewCreateInvoiceHandler(repo)

	_, err := h.Handle(CreateInvoiceCommand{CreateInvoice: validCreate()})
	require.NoError(t, err)

	dup := validCreate()
	dup.UserID = 2
	_, err = h.Handle(CreateInvoiceCommand{CreateInvoice: dup})
	assert.True(t, apperror.IsConflict(err))
}

func TestUpdateInvoiceKeepsOwner(t *testing.T) {
	repo := newFakeInvoiceRepo()
	require.NoError(t, repo.Create(&domain.Invoice{
		InvoiceNumber: "INV-0001",
		InvoiceDate:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount:   150.00,
		PaymentStatus: domain.PaymentStatusUnpaid,
		PaymentMethod: domain.PaymentMethodTransfer,
		UserID:        7,
	}))

	h := NewUpdateInvoiceHandler(repo)
	updated, err := h.Handle(UpdateInvoiceCommand{ID: 1, Changes: domain.InvoiceChanges{
		PaymentStatus: optional.Of(domain.PaymentStatusPaid),
	}})
	require.NoError(t, err)

	assert.Equal(t, domain.PaymentStatusPaid, updated.PaymentStatus)
	assert.Equal(t, uint(7), updated.UserID)
}

func TestUpdateInvoiceRejectsBadEnum(t *testing.T) {
	h := NewUpdateInvoiceHandler(newFakeInvoiceRepo())

	_, err := h.Handle(UpdateInvoiceCommand{ID: 1, Changes: domain.InvoiceChanges{
		PaymentStatus: optional.Of(domain.PaymentStatus("refunded")),
	}})
	require.Error(t, err)
	assert.Equal(t, "payment_status", apperror.From(err).Field())
}

func TestDeleteInvoiceReturnsPriorState(t *testing.T) {
	repo := newFakeInvoiceRepo()
	require.NoError(t, repo.Create(&domain.Invoice{InvoiceNumber: "INV-0001", UserID: 1}))

	h := NewDeleteInvoiceHandler(repo)
	deleted, err := h.Handle(DeleteInvoiceCommand{ID: 1})
	require.NoError(t, err)
	assert.Equal(t, "INV-0001", deleted.InvoiceNumber)

	_, err = repo.FindByID(1)
	assert.True(t, apperror.IsNotFound(err))
}

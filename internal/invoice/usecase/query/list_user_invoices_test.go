package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercadito/retail-api/internal/invoice/domain"
	userdomain "github.com/mercadito/retail-api/internal/user/domain"
	"github.com/mercadito/retail-api/pkg/apperror"
)

type stubInvoiceRepo struct {
	domain.InvoiceRepository
	invoices []domain.Invoice
}

func (r *stubInvoiceRepo) FindByUserID(userID uint) ([]domain.Invoice, error) {
	out := []domain.Invoice{}
	for _, inv := range r.invoices {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	return out, nil
}

type stubUserRepo struct {
	userdomain.UserRepository
	ids map[uint]bool
}

func (r *stubUserRepo) FindByID(id uint) (*userdomain.User, error) {
	if !r.ids[id] {
		return nil, apperror.NotFound("User not found")
	}
	return &userdomain.User{ID: id}, nil
}

func TestListUserInvoicesFiltersByOwner(t *testing.T) {
	invoices := &stubInvoiceRepo{invoices: []domain.Invoice{
		{ID: 1, InvoiceNumber: "INV-0001", UserID: 1},
		{ID: 2, InvoiceNumber: "INV-0002", UserID: 2},
		{ID: 3, InvoiceNumber: "INV-0003", UserID: 1},
	}}
	users := &stubUserRepo{ids: map[uint]bool{1: true, 2: true}}

	h := NewListUserInvoicesHandler(invoices, users)
	got, err := h.Handle(ListUserInvoicesQuery{UserID: 1})
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "INV-0001", got[0].InvoiceNumber)
	assert.Equal(t, "INV-0003", got[1].InvoiceNumber)
}

func TestListUserInvoicesMissingOwnerIsNotFound(t *testing.T) {
	h := NewListUserInvoicesHandler(&stubInvoiceRepo{}, &stubUserRepo{ids: map[uint]bool{}})

	_, err := h.Handle(ListUserInvoicesQuery{UserID: 9})
	assert.True(t, apperror.IsNotFound(err))
}

func TestListUserInvoicesOwnerWithNoInvoicesIsEmpty(t *testing.T) {
	h := NewListUserInvoicesHandler(&stubInvoiceRepo{}, &stubUserRepo{ids: map[uint]bool{1: true}})

	got, err := h.Handle(ListUserInvoicesQuery{UserID: 1})
	require.NoError(t, err)
	assert.Empty(t, got)
}

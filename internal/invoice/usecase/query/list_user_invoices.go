package query

import (
	"github.com/mercadito/retail-api/internal/invoice/domain"
	userdomain "github.com/mercadito/retail-api/internal/user/domain"
)

// ListUserInvoicesQuery returns every invoice owned by a user.
type ListUserInvoicesQuery struct {
	UserID uint
}

// ListUserInvoicesHandler handles the ownership listing. It checks the user
// exists first so a missing owner surfaces as a user not-found, not an
// empty list.
type ListUserInvoicesHandler struct {
	repo  domain.InvoiceRepository
	users userdomain.UserRepository
}

// NewListUserInvoicesHandler creates a new list user invoices handler
func NewListUserInvoicesHandler(repo domain.InvoiceRepository, users userdomain.UserRepository) *ListUserInvoicesHandler {
	return &ListUserInvoicesHandler{repo: repo, users: users}
}

// Handle executes the ownership listing query
func (h *ListUserInvoicesHandler) Handle(q ListUserInvoicesQuery) ([]domain.Invoice, error) {
	if _, err := h.users.FindByID(q.UserID); err != nil {
		return nil, err
	}
	return h.repo.FindByUserID(q.UserID)
}

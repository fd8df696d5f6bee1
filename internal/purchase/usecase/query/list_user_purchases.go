package query

import (
	"github.com/mercadito/retail-api/internal/purchase/domain"
	userdomain "github.com/mercadito/retail-api/internal/user/domain"
)

// ListUserPurchasesQuery returns every purchase owned by a user.
type ListUserPurchasesQuery struct {
	UserID uint
}

// ListUserPurchasesHandler handles the ownership listing. It checks the user
// exists first so a missing owner surfaces as a user not-found, not an
// empty list.
type ListUserPurchasesHandler struct {
	repo  domain.PurchaseRepository
	users userdomain.UserRepository
}

// NewListUserPurchasesHandler creates a new list user purchases handler
func NewListUserPurchasesHandler(repo domain.PurchaseRepository, users userdomain.UserRepository) *ListUserPurchasesHandler {
	return &ListUserPurchasesHandler{repo: repo, users: users}
}

// Handle executes the ownership listing query
func (h *ListUserPurchasesHandler) Handle(q ListUserPurchasesQuery) ([]domain.Purchase, error) {
	if _, err := h.users.FindByID(q.UserID); err != nil {
		return nil, err
	}
	return h.repo.FindByUserID(q.UserID)
}

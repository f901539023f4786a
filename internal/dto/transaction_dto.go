package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Saad200724/ZnPOS/internal/model"
)

type TransactionItemRequest struct {
	ProductID int64           `json:"productId" validate:"required,min=1"`
	Quantity  int             `json:"quantity"  validate:"required,min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"min=0"`
	Total     decimal.Decimal `json:"total"     validate:"min=0"`
}

type CreateTransactionRequest struct {
	CustomerID *int64 `json:"customerId"`
	// TransactionNumber: empty = server-generated
	TransactionNumber string                   `json:"transactionNumber" validate:"omitempty,max=64"`
	Subtotal          decimal.Decimal          `json:"subtotal"      validate:"min=0"`
	TaxAmount         decimal.Decimal          `json:"taxAmount"     validate:"min=0"`
	Total             decimal.Decimal          `json:"total"         validate:"min=0"`
	PaymentMethod     string                   `json:"paymentMethod" validate:"required,oneof=cash card mobile other"`
	Status            string                   `json:"status"        validate:"omitempty,oneof=completed pending"`
	Items             []TransactionItemRequest `json:"items"         validate:"required,min=1,dive"`
}

type TransactionResponse struct {
	ID                int64                   `json:"id"`
	BusinessID        int64                   `json:"businessId"`
	CustomerID        *int64                  `json:"customerId,omitempty"`
	UserID            int64                   `json:"userId"`
	TransactionNumber string                  `json:"transactionNumber"`
	Subtotal          decimal.Decimal         `json:"subtotal"`
	TaxAmount         decimal.Decimal         `json:"taxAmount"`
	Total             decimal.Decimal         `json:"total"`
	PaymentMethod     string                  `json:"paymentMethod"`
	Status            string                  `json:"status"`
	Items             []model.TransactionItem `json:"items"`
	CreatedAt         string                  `json:"createdAt"`
}

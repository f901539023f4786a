package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/Saad200724/ZnPOS/internal/apierror"
	"github.com/Saad200724/ZnPOS/internal/authz"
	"github.com/Saad200724/ZnPOS/internal/dto"
	"github.com/Saad200724/ZnPOS/internal/model"
	"github.com/Saad200724/ZnPOS/internal/repository"
)

type TransactionService interface {
	Create(ctx context.Context, p *authz.Principal, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	List(ctx context.Context, p *authz.Principal, limit int) ([]dto.TransactionResponse, error)
	Get(ctx context.Context, p *authz.Principal, id int64) (*dto.TransactionResponse, error)
}

type transactionService struct {
	transactions repository.TransactionRepository
	customers    repository.CustomerRepository
}

func NewTransactionService(transactions repository.TransactionRepository, customers repository.CustomerRepository) TransactionService {
	return &transactionService{transactions: transactions, customers: customers}
}

// centTolerance absorbs rounding drift between caller-side and server-side
// line arithmetic.
var centTolerance = decimal.NewFromFloat(0.01)

// Create persists a transaction with its item set as a staged commit:
//  1. validate the payload and recompute totals from the line items
//  2. insert the header with status "pending"
//  3. insert each item stamped with the header id
//  4. flip the header to its final status
//
// A failure between 2 and 4 leaves a pending header behind; the reconciler
// completes or voids it later.
func (s *transactionService) Create(ctx context.Context, p *authz.Principal, req dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if err := authz.RequirePermission(p, authz.CapabilityPOS); err != nil {
		return nil, err
	}
	if err := validateStruct(&req); err != nil {
		return nil, err
	}
	if err := checkTotals(req); err != nil {
		return nil, err
	}

	number := req.TransactionNumber
	if number == "" {
		number = generateTransactionNumber()
	}
	finalStatus := req.Status
	if finalStatus == "" {
		finalStatus = model.TxStatusCompleted
	}

	header := &model.Transaction{
		CustomerID:        req.CustomerID,
		UserID:            p.UserID,
		TransactionNumber: number,
		Subtotal:          req.Subtotal.InexactFloat64(),
		TaxAmount:         req.TaxAmount.InexactFloat64(),
		Total:             req.Total.InexactFloat64(),
		PaymentMethod:     req.PaymentMethod,
		Status:            model.TxStatusPending,
	}
	if err := s.transactions.CreateHeader(ctx, p.BusinessID, header); err != nil {
		return nil, err
	}

	items := make([]model.TransactionItem, 0, len(req.Items))
	for _, it := range req.Items {
		item := model.TransactionItem{
			TransactionID: header.ID,
			ProductID:     it.ProductID,
			Quantity:      it.Quantity,
			UnitPrice:     it.UnitPrice.InexactFloat64(),
			Total:         it.Total.InexactFloat64(),
		}
		if err := s.transactions.InsertItem(ctx, &item); err != nil {
			log.Warn().
				Int64("business_id", p.BusinessID).
				Int64("transaction_id", header.ID).
				Err(err).
				Msg("ledger: item insert failed, header left pending for reconciler")
			return nil, err
		}
		items = append(items, item)
	}

	if err := s.transactions.SetStatus(ctx, p.BusinessID, header.ID, finalStatus); err != nil {
		return nil, err
	}
	header.Status = finalStatus

	// Loyalty bookkeeping: best-effort, the sale itself already committed.
	if header.CustomerID != nil && finalStatus == model.TxStatusCompleted {
		points := int(req.Total.IntPart())
		if err := s.customers.RecordSpend(ctx, p.BusinessID, *header.CustomerID, header.Total, points); err != nil {
			log.Warn().
				Int64("business_id", p.BusinessID).
				Int64("customer_id", *header.CustomerID).
				Err(err).
				Msg("ledger: loyalty update failed")
		}
	}

	return txToResponse(header, items), nil
}

func (s *transactionService) List(ctx context.Context, p *authz.Principal, limit int) ([]dto.TransactionResponse, error) {
	if err := authz.RequirePermission(p, authz.CapabilityPOS); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 50
	}
	headers, err := s.transactions.List(ctx, p.BusinessID, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.TransactionResponse, 0, len(headers))
	for i := range headers {
		items, err := s.transactions.ListItems(ctx, headers[i].ID)
		if err != nil {
			return nil, err
		}
		resp = append(resp, *txToResponse(&headers[i], items))
	}
	return resp, nil
}

func (s *transactionService) Get(ctx context.Context, p *authz.Principal, id int64) (*dto.TransactionResponse, error) {
	if err := authz.RequirePermission(p, authz.CapabilityPOS); err != nil {
		return nil, err
	}
	header, err := s.transactions.FindByID(ctx, p.BusinessID, id)
	if err != nil {
		return nil, err
	}
	items, err := s.transactions.ListItems(ctx, header.ID)
	if err != nil {
		return nil, err
	}
	return txToResponse(header, items), nil
}

// checkTotals recomputes the financial fields from the line items instead of
// trusting the caller: each line total must equal unitPrice*quantity, the
// subtotal must equal the sum of line totals, and total must equal
// subtotal+taxAmount, all within one cent.
func checkTotals(req dto.CreateTransactionRequest) error {
	fields := make(map[string]string)

	lineSum := decimal.Zero
	for i, it := range req.Items {
		expected := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		if expected.Sub(it.Total).Abs().GreaterThan(centTolerance) {
			fields[fmt.Sprintf("items[%d].total", i)] = "does not match unitPrice*quantity"
		}
		lineSum = lineSum.Add(it.Total)
	}

	if lineSum.Sub(req.Subtotal).Abs().GreaterThan(centTolerance) {
		fields["subtotal"] = "does not match sum of item totals"
	}
	if req.Subtotal.Add(req.TaxAmount).Sub(req.Total).Abs().GreaterThan(centTolerance) {
		fields["total"] = "does not match subtotal+taxAmount"
	}

	if len(fields) > 0 {
		return apierror.Validation(fields)
	}
	return nil
}

func generateTransactionNumber() string {
	return "TXN-" + strings.ToUpper(uuid.NewString()[:8])
}

func txToResponse(t *model.Transaction, items []model.TransactionItem) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:                t.ID,
		BusinessID:        t.BusinessID,
		CustomerID:        t.CustomerID,
		UserID:            t.UserID,
		TransactionNumber: t.TransactionNumber,
		Subtotal:          decimal.NewFromFloat(t.Subtotal),
		TaxAmount:         decimal.NewFromFloat(t.TaxAmount),
		Total:             decimal.NewFromFloat(t.Total),
		PaymentMethod:     t.PaymentMethod,
		Status:            t.Status,
		Items:             items,
		CreatedAt:         t.CreatedAt.Format(time.RFC3339),
	}
}

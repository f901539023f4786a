package service

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saad200724/ZnPOS/internal/apierror"
	"github.com/Saad200724/ZnPOS/internal/dto"
	"github.com/Saad200724/ZnPOS/internal/model"
)

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// saleRequest is a consistent two-item sale: 2*3.50 + 1*10.00 = 17.00,
// 8.25% tax = 1.40, total 18.40.
func saleRequest() dto.CreateTransactionRequest {
	return dto.CreateTransactionRequest{
		Subtotal:      dec(17.00),
		TaxAmount:     dec(1.40),
		Total:         dec(18.40),
		PaymentMethod: "cash",
		Items: []dto.TransactionItemRequest{
			{ProductID: 1, Quantity: 2, UnitPrice: dec(3.50), Total: dec(7.00)},
			{ProductID: 2, Quantity: 1, UnitPrice: dec(10.00), Total: dec(10.00)},
		},
	}
}

func TestCreateTransactionCompleted(t *testing.T) {
	txRepo := newStubTransactionRepo()
	custRepo := newStubCustomerRepo()
	svc := NewTransactionService(txRepo, custRepo)

	resp, err := svc.Create(context.Background(), adminPrincipal(1), saleRequest())
	require.NoError(t, err)

	assert.Equal(t, model.TxStatusCompleted, resp.Status)
	assert.True(t, strings.HasPrefix(resp.TransactionNumber, "TXN-"))
	assert.Len(t, resp.TransactionNumber, 12)
	assert.Len(t, resp.Items, 2)
	assert.True(t, resp.Total.Equal(dec(18.40)))

	stored := txRepo.headers[resp.ID]
	require.NotNil(t, stored)
	assert.Equal(t, model.TxStatusCompleted, stored.Status)
	assert.Equal(t, int64(1), stored.BusinessID)

	items, err := txRepo.ListItems(context.Background(), resp.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ProductID)
	assert.Equal(t, int64(2), items[1].ProductID)
}

func TestCreateTransactionExplicitNumberAndPendingStatus(t *testing.T) {
	txRepo := newStubTransactionRepo()
	svc := NewTransactionService(txRepo, newStubCustomerRepo())

	req := saleRequest()
	req.TransactionNumber = "TXN-REGISTER7"
	req.Status = model.TxStatusPending

	resp, err := svc.Create(context.Background(), adminPrincipal(1), req)
	require.NoError(t, err)
	assert.Equal(t, "TXN-REGISTER7", resp.TransactionNumber)
	assert.Equal(t, model.TxStatusPending, resp.Status)
}

func TestCreateTransactionTotalsMismatch(t *testing.T) {
	svc := NewTransactionService(newStubTransactionRepo(), newStubCustomerRepo())

	cases := map[string]func(*dto.CreateTransactionRequest){
		"line total drifts": func(r *dto.CreateTransactionRequest) {
			r.Items[0].Total = dec(7.50)
			r.Subtotal = dec(17.50)
			r.Total = dec(18.90)
		},
		"subtotal drifts": func(r *dto.CreateTransactionRequest) {
			r.Subtotal = dec(16.00)
		},
		"grand total drifts": func(r *dto.CreateTransactionRequest) {
			r.Total = dec(20.00)
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := saleRequest()
			mutate(&req)
			_, err := svc.Create(context.Background(), adminPrincipal(1), req)
			require.Error(t, err)
			assert.True(t, apierror.IsKind(err, apierror.KindValidation))
		})
	}
}

func TestCreateTransactionWithinCentTolerance(t *testing.T) {
	svc := NewTransactionService(newStubTransactionRepo(), newStubCustomerRepo())

	req := saleRequest()
	// One cent of rounding drift on the grand total is accepted.
	req.Total = dec(18.41)

	_, err := svc.Create(context.Background(), adminPrincipal(1), req)
	assert.NoError(t, err)
}

func TestCreateTransactionItemFailureLeavesPendingHeader(t *testing.T) {
	txRepo := newStubTransactionRepo()
	txRepo.failItemAt = 2
	svc := NewTransactionService(txRepo, newStubCustomerRepo())

	_, err := svc.Create(context.Background(), adminPrincipal(1), saleRequest())
	require.Error(t, err)

	// The header stays pending for the reconciler; it is never surfaced as
	// a completed sale.
	require.Len(t, txRepo.headers, 1)
	for _, h := range txRepo.headers {
		assert.Equal(t, model.TxStatusPending, h.Status)
	}
}

func TestCreateTransactionRecordsCustomerSpend(t *testing.T) {
	txRepo := newStubTransactionRepo()
	custRepo := newStubCustomerRepo()
	c := &model.Customer{FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, custRepo.Create(context.Background(), 1, c))

	svc := NewTransactionService(txRepo, custRepo)
	req := saleRequest()
	req.CustomerID = &c.ID

	_, err := svc.Create(context.Background(), adminPrincipal(1), req)
	require.NoError(t, err)

	stored := custRepo.customers[c.ID]
	assert.InDelta(t, 18.40, stored.TotalSpent, 0.001)
	assert.Equal(t, 18, stored.LoyaltyPoints)
}

func TestCreateTransactionPendingSkipsCustomerSpend(t *testing.T) {
	txRepo := newStubTransactionRepo()
	custRepo := newStubCustomerRepo()
	c := &model.Customer{FirstName: "Ada", LastName: "Lovelace"}
	require.NoError(t, custRepo.Create(context.Background(), 1, c))

	svc := NewTransactionService(txRepo, custRepo)
	req := saleRequest()
	req.CustomerID = &c.ID
	req.Status = model.TxStatusPending

	_, err := svc.Create(context.Background(), adminPrincipal(1), req)
	require.NoError(t, err)
	assert.Zero(t, custRepo.customers[c.ID].TotalSpent)
	assert.Zero(t, custRepo.customers[c.ID].LoyaltyPoints)
}

func TestCreateTransactionRequiresPOSCapability(t *testing.T) {
	svc := NewTransactionService(newStubTransactionRepo(), newStubCustomerRepo())

	_, err := svc.Create(context.Background(),
		staffPrincipal(1, model.Permissions{Reports: true}), saleRequest())
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindForbidden))
}

func TestListTransactionsNewestFirstWithItems(t *testing.T) {
	txRepo := newStubTransactionRepo()
	svc := NewTransactionService(txRepo, newStubCustomerRepo())
	p := adminPrincipal(1)

	first, err := svc.Create(context.Background(), p, saleRequest())
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), p, saleRequest())
	require.NoError(t, err)

	list, err := svc.List(context.Background(), p, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Len(t, list[0].Items, 2)
}

func TestGetTransactionOtherTenant(t *testing.T) {
	txRepo := newStubTransactionRepo()
	svc := NewTransactionService(txRepo, newStubCustomerRepo())

	resp, err := svc.Create(context.Background(), adminPrincipal(1), saleRequest())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), adminPrincipal(2), resp.ID)
	require.Error(t, err)
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestTransactionIDsDistinct(t *testing.T) {
	txRepo := newStubTransactionRepo()
	svc := NewTransactionService(txRepo, newStubCustomerRepo())
	p := adminPrincipal(1)

	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		resp, err := svc.Create(context.Background(), p, saleRequest())
		require.NoError(t, err)
		assert.False(t, seen[resp.ID])
		seen[resp.ID] = true
	}
}

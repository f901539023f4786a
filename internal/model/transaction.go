package model

// Transaction status lifecycle. Headers are inserted as "pending" and flipped
// to their final status only after every line item is persisted; "void" marks
// stuck headers discarded by the reconciler. Completed transactions are never
// mutated or deleted.
const (
	TxStatusPending   = "pending"
	TxStatusCompleted = "completed"
	TxStatusVoid      = "void"
)

// Transaction is a ledger header. TransactionNumber is unique per business.
type Transaction struct {
	TenantDoc         `bson:",inline"`
	CustomerID        *int64  `bson:"customerId,omitempty" json:"customerId,omitempty"`
	UserID            int64   `bson:"userId" json:"userId"`
	TransactionNumber string  `bson:"transactionNumber" json:"transactionNumber"`
	Subtotal          float64 `bson:"subtotal" json:"subtotal"`
	TaxAmount         float64 `bson:"taxAmount" json:"taxAmount"`
	Total             float64 `bson:"total" json:"total"`
	PaymentMethod     string  `bson:"paymentMethod" json:"paymentMethod"`
	Status            string  `bson:"status" json:"status"`
}

// TransactionItem is owned by exactly one Transaction and created atomically
// with it as a set. Items are scoped through their header, not by businessId.
type TransactionItem struct {
	Doc           `bson:",inline"`
	TransactionID int64   `bson:"transactionId" json:"transactionId"`
	ProductID     int64   `bson:"productId" json:"productId"`
	Quantity      int     `bson:"quantity" json:"quantity"`
	UnitPrice     float64 `bson:"unitPrice" json:"unitPrice"`
	Total         float64 `bson:"total" json:"total"`
}

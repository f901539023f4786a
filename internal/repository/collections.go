package repository

// Collection names. One collection per entity type plus the counters
// collection backing the id allocator.
const (
	ColBusinesses       = "businesses"
	ColUsers            = "users"
	ColCategories       = "categories"
	ColProducts         = "products"
	ColCustomers        = "customers"
	ColTransactions     = "transactions"
	ColTransactionItems = "transaction_items"
	ColCounters         = "counters"
)

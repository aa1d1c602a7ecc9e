package domain

// AccountGroup defines the fundamental accounting group of a ledger account.
type AccountGroup string

const (
	Asset     AccountGroup = "ASSET"
	Liability AccountGroup = "LIABILITY"
	Equity    AccountGroup = "EQUITY"
	Income    AccountGroup = "INCOME"
	Expense   AccountGroup = "EXPENSE"
)

// Account represents a ledger account in the chart of accounts.
// Accounts are unique by name, created during setup and never deleted
// while a posted line references them.
type Account struct {
	AccountID   string       `json:"accountID"` // Primary Key (UUID)
	Name        string       `json:"name"`      // Unique account name
	Group       AccountGroup `json:"group"`     // ASSET, LIABILITY, etc.
	Description string       `json:"description"`
	IsActive    bool         `json:"isActive"`
	AuditFields
}

// Well-known account names the source event translators post against.
// They are seeded by migration; absence of one for a nonzero line is a
// fatal configuration error.
const (
	AccountCashBank             = "Cash/Bank"
	AccountRoomRevenue          = "Room Revenue"
	AccountFoodRevenue          = "Food Revenue"
	AccountServiceChargeIncome  = "Service Charge Income"
	AccountGSTOutput            = "GST Output"
	AccountAdvanceFromCustomers = "Advance from Customers"
	AccountAccountsPayable      = "Accounts Payable"
	AccountInputTaxCredit       = "Input Tax Credit"
	AccountRCMPayable           = "RCM Payable"
	AccountInventory            = "Inventory"
	AccountGeneralExpenses      = "General Expenses"
)

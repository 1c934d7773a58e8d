package ledger

// AccountType classifies an account for statement placement and for its
// normal balance side.
type AccountType string

const (
	Asset           AccountType = "Asset"
	Liability       AccountType = "Liability"
	Equity          AccountType = "Equity"
	Revenue         AccountType = "Revenue"
	Expense         AccountType = "Expense"
	CostOfGoodsSold AccountType = "Cost of Goods Sold"
)

// debitNormal reports whether accounts of this type carry their normal
// balance on the debit side.
func (t AccountType) debitNormal() bool {
	switch t {
	case Asset, Expense, CostOfGoodsSold:
		return true
	default:
		return false
	}
}

// AccountSubtype refines an AccountType into the section of a statement
// the account belongs to.
type AccountSubtype string

const (
	CurrentAsset          AccountSubtype = "Current Asset"
	FixedAsset            AccountSubtype = "Fixed Asset"
	IntangibleAsset       AccountSubtype = "Intangible Asset"
	CurrentLiability      AccountSubtype = "Current Liability"
	LongTermLiability     AccountSubtype = "Long-term Liability"
	ContributedCapital    AccountSubtype = "Contributed Capital"
	RetainedEarnings      AccountSubtype = "Retained Earnings"
	OperatingRevenue      AccountSubtype = "Operating Revenue"
	OtherRevenue          AccountSubtype = "Other Revenue"
	OperatingExpense      AccountSubtype = "Operating Expense"
	AdministrativeExpense AccountSubtype = "Administrative Expense"
	SellingExpense        AccountSubtype = "Selling Expense"
	FinanceExpense        AccountSubtype = "Finance Expense"
)

// Account is a single chart-of-accounts entry.
type Account struct {
	Number      string
	Name        string
	Type        AccountType
	Subtype     AccountSubtype
	Description string
}

// StandardChart returns the default small-business chart of accounts,
// numbered 1000-6700. New ledgers start with this chart unless replaced
// via WithChart.
func StandardChart() []Account {
	return []Account{
		{Number: "1000", Name: "Cash", Type: Asset, Subtype: CurrentAsset},
		{Number: "1100", Name: "Accounts Receivable", Type: Asset, Subtype: CurrentAsset},
		{Number: "1200", Name: "Inventory", Type: Asset, Subtype: CurrentAsset},
		{Number: "1300", Name: "Prepaid Expenses", Type: Asset, Subtype: CurrentAsset},
		{Number: "1500", Name: "Property, Plant & Equipment", Type: Asset, Subtype: FixedAsset},
		{Number: "1600", Name: "Accumulated Depreciation", Type: Asset, Subtype: FixedAsset},
		{Number: "2000", Name: "Accounts Payable", Type: Liability, Subtype: CurrentLiability},
		{Number: "2100", Name: "Accrued Expenses", Type: Liability, Subtype: CurrentLiability},
		{Number: "2200", Name: "Short-term Debt", Type: Liability, Subtype: CurrentLiability},
		{Number: "2500", Name: "Long-term Debt", Type: Liability, Subtype: LongTermLiability},
		{Number: "3000", Name: "Owner's Equity", Type: Equity, Subtype: ContributedCapital},
		{Number: "3500", Name: "Retained Earnings", Type: Equity, Subtype: RetainedEarnings},
		{Number: "4000", Name: "Sales Revenue", Type: Revenue, Subtype: OperatingRevenue},
		{Number: "4100", Name: "Rental Revenue", Type: Revenue, Subtype: OperatingRevenue},
		{Number: "4900", Name: "Other Income", Type: Revenue, Subtype: OtherRevenue},
		{Number: "5000", Name: "Cost of Goods Sold", Type: CostOfGoodsSold, Subtype: OperatingExpense},
		{Number: "6000", Name: "Salaries & Wages", Type: Expense, Subtype: OperatingExpense},
		{Number: "6100", Name: "Rent Expense", Type: Expense, Subtype: OperatingExpense},
		{Number: "6200", Name: "Utilities", Type: Expense, Subtype: OperatingExpense},
		{Number: "6300", Name: "Insurance", Type: Expense, Subtype: OperatingExpense},
		{Number: "6400", Name: "Professional Fees", Type: Expense, Subtype: AdministrativeExpense},
		{Number: "6500", Name: "Marketing & Advertising", Type: Expense, Subtype: SellingExpense},
		{Number: "6600", Name: "Depreciation Expense", Type: Expense, Subtype: OperatingExpense},
		{Number: "6700", Name: "Interest Expense", Type: Expense, Subtype: FinanceExpense},
	}
}

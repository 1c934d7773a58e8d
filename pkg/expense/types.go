package expense

import "time"

// Category is the canonical expense classification set. The values
// match the categories accepted by expense-record validation.
type Category string

const (
	// Operating expenses.
	Rent             Category = "Rent/Lease"
	Utilities        Category = "Utilities"
	Salaries         Category = "Salaries & Wages"
	Benefits         Category = "Employee Benefits"
	Insurance        Category = "Insurance"
	Marketing        Category = "Marketing & Advertising"
	OfficeSupplies   Category = "Office Supplies"
	Maintenance      Category = "Maintenance & Repairs"
	ProfessionalFees Category = "Professional Fees"
	Travel           Category = "Travel & Entertainment"

	// Cost of goods sold.
	Materials Category = "Raw Materials"
	Inventory Category = "Inventory Purchases"
	Freight   Category = "Freight & Shipping"

	// Capital expenses.
	Equipment Category = "Equipment"
	Property  Category = "Property"
	Vehicles  Category = "Vehicles"
	Software  Category = "Software"

	// Financial.
	Interest Category = "Interest Expense"
	BankFees Category = "Bank Fees"
	Taxes    Category = "Taxes"

	// Other.
	Depreciation Category = "Depreciation"
	Amortization Category = "Amortization"
	Other        Category = "Other"
)

// PaymentMethod identifies how an expense is or will be settled.
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "Cash"
	PaymentCheck      PaymentMethod = "Check"
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentACH        PaymentMethod = "ACH Transfer"
	PaymentWire       PaymentMethod = "Wire Transfer"
	PaymentPayPal     PaymentMethod = "PayPal"
	PaymentOther      PaymentMethod = "Other"
)

// ApprovalStatus is an expense's position in the approval workflow.
// Legal transitions: Pending to Approved, Rejected, or UnderReview;
// UnderReview to Approved or Rejected; Approved to Paid.
type ApprovalStatus string

const (
	StatusPending     ApprovalStatus = "Pending"
	StatusApproved    ApprovalStatus = "Approved"
	StatusRejected    ApprovalStatus = "Rejected"
	StatusUnderReview ApprovalStatus = "Under Review"
	StatusPaid        ApprovalStatus = "Paid"
)

// Vendor is a payee registered with the tracker. PaymentTerms drives
// expected payment dates ("Net 15", "Net 30", "Net 45", "Due on
// Receipt"); the W-9 flag and tax ID drive 1099 readiness.
type Vendor struct {
	ID               string
	Name             string
	Contact          map[string]string
	TaxID            string
	PaymentTerms     string
	PreferredPayment PaymentMethod
	W9OnFile         bool
}

// Expense is a single payable recorded against a vendor. A zero
// PaidDate means unpaid.
type Expense struct {
	ID            string
	Date          time.Time
	VendorID      string
	Amount        float64
	Category      Category
	Subcategory   string
	Description   string
	InvoiceNumber string
	PaymentMethod PaymentMethod
	Status        ApprovalStatus
	ApprovedBy    string
	PaidDate      time.Time
	ReceiptURL    string
	CostCenter    string
	ProjectID     string
	Tags          []string
	TaxDeductible bool
	Recurring     bool
	Frequency     string
}

// Budget allocates spending per category for a fiscal period. A zero
// Total is filled with the category sum on registration.
type Budget struct {
	ID          string
	Name        string
	FiscalYear  int
	Period      string
	Categories  map[Category]float64
	CostCenters map[string]float64
	Total       float64
}

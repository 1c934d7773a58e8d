package finmath

import "math"

// CurrentRatio measures liquidity as current assets over current
// liabilities. With no current liabilities the ratio is +Inf.
func CurrentRatio(currentAssets, currentLiabilities float64) float64 {
	if currentLiabilities == 0 {
		return math.Inf(1)
	}
	return currentAssets / currentLiabilities
}

// QuickRatio is the acid test: current assets excluding inventory over
// current liabilities.
func QuickRatio(currentAssets, inventory, currentLiabilities float64) float64 {
	if currentLiabilities == 0 {
		return math.Inf(1)
	}
	return (currentAssets - inventory) / currentLiabilities
}

// DebtToEquity measures leverage. With no equity the ratio is +Inf.
func DebtToEquity(totalDebt, totalEquity float64) float64 {
	if totalEquity == 0 {
		return math.Inf(1)
	}
	return totalDebt / totalEquity
}

// ReturnOnAssets is net income over total assets, 0 when there are no
// assets.
func ReturnOnAssets(netIncome, totalAssets float64) float64 {
	if totalAssets == 0 {
		return 0
	}
	return netIncome / totalAssets
}

// ReturnOnEquity is net income over shareholders' equity, 0 when there is
// no equity.
func ReturnOnEquity(netIncome, shareholdersEquity float64) float64 {
	if shareholdersEquity == 0 {
		return 0
	}
	return netIncome / shareholdersEquity
}

// GrossMargin returns the gross profit percentage of revenue.
func GrossMargin(revenue, cogs float64) float64 {
	if revenue == 0 {
		return 0
	}
	return (revenue - cogs) / revenue * 100
}

// OperatingMargin returns operating income as a percentage of revenue.
func OperatingMargin(operatingIncome, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return operatingIncome / revenue * 100
}

// NetMargin returns net income as a percentage of revenue.
func NetMargin(netIncome, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return netIncome / revenue * 100
}

// InventoryTurnover is cost of goods sold over average inventory, 0 when
// inventory is empty.
func InventoryTurnover(cogs, averageInventory float64) float64 {
	if averageInventory == 0 {
		return 0
	}
	return cogs / averageInventory
}

// DaysSalesOutstanding estimates collection time in days from receivables
// and annual sales.
func DaysSalesOutstanding(accountsReceivable, annualSales float64) float64 {
	if annualSales == 0 {
		return 0
	}
	return accountsReceivable / annualSales * 365
}

// AssetTurnover is revenue over average total assets, 0 without assets.
func AssetTurnover(revenue, averageTotalAssets float64) float64 {
	if averageTotalAssets == 0 {
		return 0
	}
	return revenue / averageTotalAssets
}

// InterestCoverage is EBIT over interest expense. With no interest expense
// the ratio is +Inf.
func InterestCoverage(ebit, interestExpense float64) float64 {
	if interestExpense == 0 {
		return math.Inf(1)
	}
	return ebit / interestExpense
}

package yahoo

// fieldDef maps a quoteSummary field key to the line item label used in
// exported statements.
type fieldDef struct {
	key   string
	label string
}

// Field order below is the row order of the exported CSVs. Yahoo returns
// named fields per period rather than ordered rows, so the order has to
// be fixed here.

var incomeFields = []fieldDef{
	{"totalRevenue", "Total Revenue"},
	{"costOfRevenue", "Cost Of Revenue"},
	{"grossProfit", "Gross Profit"},
	{"researchDevelopment", "Research Development"},
	{"sellingGeneralAdministrative", "Selling General Administrative"},
	{"totalOperatingExpenses", "Total Operating Expenses"},
	{"operatingIncome", "Operating Income"},
	{"totalOtherIncomeExpenseNet", "Total Other Income Expense Net"},
	{"ebit", "EBIT"},
	{"interestExpense", "Interest Expense"},
	{"incomeBeforeTax", "Income Before Tax"},
	{"incomeTaxExpense", "Income Tax Expense"},
	{"netIncomeFromContinuingOps", "Net Income From Continuing Ops"},
	{"netIncome", "Net Income"},
	{"netIncomeApplicableToCommonShares", "Net Income Applicable To Common Shares"},
}

var balanceSheetFields = []fieldDef{
	{"cash", "Cash"},
	{"shortTermInvestments", "Short Term Investments"},
	{"netReceivables", "Net Receivables"},
	{"inventory", "Inventory"},
	{"otherCurrentAssets", "Other Current Assets"},
	{"totalCurrentAssets", "Total Current Assets"},
	{"longTermInvestments", "Long Term Investments"},
	{"propertyPlantEquipment", "Property Plant Equipment"},
	{"goodWill", "Good Will"},
	{"intangibleAssets", "Intangible Assets"},
	{"otherAssets", "Other Assets"},
	{"totalAssets", "Total Assets"},
	{"accountsPayable", "Accounts Payable"},
	{"shortLongTermDebt", "Short Long Term Debt"},
	{"otherCurrentLiab", "Other Current Liab"},
	{"totalCurrentLiabilities", "Total Current Liabilities"},
	{"longTermDebt", "Long Term Debt"},
	{"otherLiab", "Other Liab"},
	{"totalLiab", "Total Liab"},
	{"commonStock", "Common Stock"},
	{"retainedEarnings", "Retained Earnings"},
	{"treasuryStock", "Treasury Stock"},
	{"otherStockholderEquity", "Other Stockholder Equity"},
	{"totalStockholderEquity", "Total Stockholder Equity"},
	{"netTangibleAssets", "Net Tangible Assets"},
}

var cashFlowFields = []fieldDef{
	{"netIncome", "Net Income"},
	{"depreciation", "Depreciation"},
	{"changeToNetincome", "Change To Netincome"},
	{"changeToAccountReceivables", "Change To Account Receivables"},
	{"changeToLiabilities", "Change To Liabilities"},
	{"changeToInventory", "Change To Inventory"},
	{"changeToOperatingActivities", "Change To Operating Activities"},
	{"totalCashFromOperatingActivities", "Total Cash From Operating Activities"},
	{"capitalExpenditures", "Capital Expenditures"},
	{"investments", "Investments"},
	{"otherCashflowsFromInvestingActivities", "Other Cashflows From Investing Activities"},
	{"totalCashflowsFromInvestingActivities", "Total Cashflows From Investing Activities"},
	{"dividendsPaid", "Dividends Paid"},
	{"netBorrowings", "Net Borrowings"},
	{"otherCashflowsFromFinancingActivities", "Other Cashflows From Financing Activities"},
	{"totalCashFromFinancingActivities", "Total Cash From Financing Activities"},
	{"effectOfExchangeRate", "Effect Of Exchange Rate"},
	{"changeInCash", "Change In Cash"},
}

package dashboard

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	EmployeeSummary EmployeeSummaryResponse `json:"employee_summary"`
	LatestPayRun    LatestPayRunResponse    `json:"latest_pay_run"`
	PayrollYear     PayrollYearResponse     `json:"payroll_year"`
	InvoiceSummary  InvoiceSummaryResponse  `json:"invoice_summary"`
	VATPosition     VATPositionResponse     `json:"vat_position"`
}

// EmployeeSummaryResponse contains headcount by status
type EmployeeSummaryResponse struct {
	TotalEmployees      int64 `json:"total_employees"`
	ActiveEmployees     int64 `json:"active_employees"`
	TerminatedEmployees int64 `json:"terminated_employees"`
}

// LatestPayRunResponse is the cost of the most recently created pay run.
// Zero values mean no payroll has been run in the tax year.
type LatestPayRunResponse struct {
	TaxYear              string `json:"tax_year,omitempty"`
	PeriodNumber         int64  `json:"period_number,omitempty"`
	PayFrequency         string `json:"pay_frequency,omitempty"`
	EmployeeCount        int64  `json:"employee_count"`
	TotalGrossPence      int64  `json:"total_gross_pence"`
	TotalNetPence        int64  `json:"total_net_pence"`
	TotalIncomeTaxPence  int64  `json:"total_income_tax_pence"`
	TotalEmployeeNIPence int64  `json:"total_employee_ni_pence"`
	TotalEmployerNIPence int64  `json:"total_employer_ni_pence"`
}

// PayrollYearResponse is the year-to-date payroll cost for a tax year
type PayrollYearResponse struct {
	TaxYear                   string `json:"tax_year"`
	EntryCount                int64  `json:"entry_count"`
	TotalGrossPence           int64  `json:"total_gross_pence"`
	TotalNetPence             int64  `json:"total_net_pence"`
	TotalIncomeTaxPence       int64  `json:"total_income_tax_pence"`
	TotalEmployeeNIPence      int64  `json:"total_employee_ni_pence"`
	TotalEmployerNIPence      int64  `json:"total_employer_ni_pence"`
	TotalEmployerPensionPence int64  `json:"total_employer_pension_pence"`
}

// InvoiceSummaryResponse tracks money still moving through invoices
type InvoiceSummaryResponse struct {
	OutstandingSalesPence    int64 `json:"outstanding_sales_pence"`
	OutstandingPurchasePence int64 `json:"outstanding_purchase_pence"`
	OverdueCount             int64 `json:"overdue_count"`
	DraftCount               int64 `json:"draft_count"`
}

// VATPositionResponse is the running VAT position over paid invoices since
// the last submitted return (or all time when none has been submitted).
type VATPositionResponse struct {
	OutputVATPence      int64   `json:"output_vat_pence"`
	InputVATPence       int64   `json:"input_vat_pence"`
	NetPositionPence    int64   `json:"net_position_pence"`
	LastSubmittedPeriod *string `json:"last_submitted_period,omitempty"`
}

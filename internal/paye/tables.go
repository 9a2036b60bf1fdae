package paye

import (
	"embed"
	"fmt"
	"sync"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed tables/*.yaml
var tablesFS embed.FS

// TaxBand is one progressive income-tax band over taxable pay. Bands are
// ordered ascending, contiguous from zero, and the last band is open-ended
// (nil upper bound).
type TaxBand struct {
	Label        string `yaml:"label"`
	LowerPence   int64  `yaml:"lower_pence"`
	UpperPence   *int64 `yaml:"upper_pence"`
	RatePermille int64  `yaml:"rate_permille"`
}

// NIThresholds are the published per-period National Insurance boundaries
// for one pay frequency. They are published figures, not derived by dividing
// the annual amounts, which is why each frequency carries its own row.
type NIThresholds struct {
	PrimaryPence   int64 `yaml:"primary_pence"`
	UpperPence     int64 `yaml:"upper_pence"`
	SecondaryPence int64 `yaml:"secondary_pence"`
}

// NICategoryRates are the contribution rates for one category letter, in
// basis points. A zero employer rate covers the relieved categories (H, M,
// Z) under the single employer-rate model.
type NICategoryRates struct {
	EmployeeMainBasisPoints  int64 `yaml:"employee_main_bp"`
	EmployeeUpperBasisPoints int64 `yaml:"employee_upper_bp"`
	EmployerBasisPoints      int64 `yaml:"employer_bp"`
}

// NITable is the National Insurance section of a tax year's tables.
type NITable struct {
	Thresholds map[PayFrequency]NIThresholds  `yaml:"thresholds"`
	Categories map[NICategory]NICategoryRates `yaml:"categories"`
}

// StudentLoanTable is one repayment plan's annual threshold and rate.
type StudentLoanTable struct {
	AnnualThresholdPence int64 `yaml:"annual_threshold_pence"`
	RatePermille         int64 `yaml:"rate_permille"`
}

// TaxYearTables is the versioned rate data for one tax year. Tables are
// data, not code: a new tax year is a new embedded YAML file. Loaded tables
// are cached and must be treated as immutable.
type TaxYearTables struct {
	TaxYear      string                               `yaml:"tax_year"`
	IncomeTax    map[Regime][]TaxBand                 `yaml:"income_tax"`
	NI           NITable                              `yaml:"national_insurance"`
	StudentLoans map[StudentLoanPlan]StudentLoanTable `yaml:"student_loans"`
}

var (
	tablesMu    sync.RWMutex
	tablesCache = make(map[string]*TaxYearTables)
)

// TaxYearForDate returns the YYYY-YY tax year containing a date. UK tax years
// run 6 April to 5 April.
func TaxYearForDate(t time.Time) string {
	start := t.Year()
	if t.Month() < time.April || (t.Month() == time.April && t.Day() < 6) {
		start--
	}
	return fmt.Sprintf("%d-%02d", start, (start+1)%100)
}

// LoadTaxYearTables returns the tables for a tax year in YYYY-YY form, e.g.
// "2024-25". A well-formed year with no embedded table returns
// ErrUnsupportedTaxYear; the engine never falls back to another year.
func LoadTaxYearTables(taxYear string) (*TaxYearTables, error) {
	tablesMu.RLock()
	cached, ok := tablesCache[taxYear]
	tablesMu.RUnlock()
	if ok {
		return cached, nil
	}

	raw, err := tablesFS.ReadFile("tables/" + taxYear + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("tax year %q: %w", taxYear, ErrUnsupportedTaxYear)
	}

	var tables TaxYearTables
	if err := yaml.Unmarshal(raw, &tables); err != nil {
		return nil, fmt.Errorf("failed to parse tables for tax year %q: %w", taxYear, err)
	}
	if err := tables.validate(); err != nil {
		return nil, fmt.Errorf("malformed tables for tax year %q: %w", taxYear, err)
	}

	tablesMu.Lock()
	tablesCache[taxYear] = &tables
	tablesMu.Unlock()

	return &tables, nil
}

// validate enforces the structural invariants the calculators rely on so a
// bad data file fails at load time, not mid-calculation.
func (t *TaxYearTables) validate() error {
	for _, regime := range []Regime{RegimeRestOfUK, RegimeScotland, RegimeWales} {
		bands, ok := t.IncomeTax[regime]
		if !ok || len(bands) == 0 {
			return fmt.Errorf("no income-tax bands for regime %q", regime)
		}
		if bands[0].LowerPence != 0 {
			return fmt.Errorf("regime %q: first band must start at 0", regime)
		}
		for i, band := range bands {
			last := i == len(bands)-1
			if last {
				if band.UpperPence != nil {
					return fmt.Errorf("regime %q: final band must be open-ended", regime)
				}
				continue
			}
			if band.UpperPence == nil {
				return fmt.Errorf("regime %q: band %d has no upper bound", regime, i)
			}
			if *band.UpperPence <= band.LowerPence {
				return fmt.Errorf("regime %q: band %d bounds out of order", regime, i)
			}
			if bands[i+1].LowerPence != *band.UpperPence {
				return fmt.Errorf("regime %q: bands %d and %d are not contiguous", regime, i, i+1)
			}
		}
	}

	for _, freq := range []PayFrequency{FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly} {
		th, ok := t.NI.Thresholds[freq]
		if !ok {
			return fmt.Errorf("no NI thresholds for frequency %q", freq)
		}
		if th.PrimaryPence <= 0 || th.UpperPence <= th.PrimaryPence || th.SecondaryPence <= 0 {
			return fmt.Errorf("NI thresholds for frequency %q out of order", freq)
		}
	}
	if len(t.NI.Categories) == 0 {
		return fmt.Errorf("no NI categories")
	}

	for _, plan := range []StudentLoanPlan{Plan1, Plan2, Plan4, PlanPostgrad} {
		loan, ok := t.StudentLoans[plan]
		if !ok {
			return fmt.Errorf("no student-loan table for plan %q", plan)
		}
		if loan.AnnualThresholdPence <= 0 || loan.RatePermille <= 0 {
			return fmt.Errorf("student-loan table for plan %q out of range", plan)
		}
	}

	return nil
}

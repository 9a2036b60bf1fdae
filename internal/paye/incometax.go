package paye

// allowanceToDate returns the code's tax-free allowance accumulated over the
// first n periods of the year. Rounding the running total rather than a
// per-period slice keeps the slices summing exactly to the annual allowance.
func allowanceToDate(annualAllowancePence, n, periodsPerYear int64) int64 {
	return mulDiv(annualAllowancePence, n, periodsPerYear)
}

// periodAllowance returns the allowance slice for one period. Cumulative
// codes take the difference of successive to-date totals; non-cumulative
// codes get the same flat slice every period. Fixed-rate and NT codes carry
// no allowance at all.
func periodAllowance(code TaxCode, periodNumber, periodsPerYear int64) int64 {
	if code.Kind != TaxCodeBanded {
		return 0
	}
	if !code.Cumulative {
		return mulDiv(code.AllowancePence, 1, periodsPerYear)
	}
	return allowanceToDate(code.AllowancePence, periodNumber, periodsPerYear) -
		allowanceToDate(code.AllowancePence, periodNumber-1, periodsPerYear)
}

// taxablePay is earnings less the allowance slice, floored at zero. A K
// code's slice is negative, so the subtraction adds to taxable pay.
func taxablePay(earningsPence, allowanceSlicePence int64) int64 {
	return clampNonNegative(earningsPence - allowanceSlicePence)
}

// taxOnAmount runs taxable pay through the band table with every bound
// scaled by scaleNum/scaleDen (periodNumber/periodsPerYear for cumulative
// codes, 1/periodsPerYear otherwise). Each band's tax rounds to the nearest
// penny and the total is the sum of the rounded bands, so the total always
// matches the emitted breakdown.
func taxOnAmount(bands []TaxBand, taxablePence, scaleNum, scaleDen int64) (int64, []BandBreakdown) {
	var total int64
	var breakdown []BandBreakdown

	for _, band := range bands {
		lower := mulDiv(band.LowerPence, scaleNum, scaleDen)
		if taxablePence <= lower {
			break
		}
		upper := taxablePence
		if band.UpperPence != nil {
			if u := mulDiv(*band.UpperPence, scaleNum, scaleDen); u < upper {
				upper = u
			}
		}
		amount := upper - lower
		tax := mulDiv(amount, band.RatePermille, 1000)
		total += tax
		breakdown = append(breakdown, BandBreakdown{
			BandLabel:   band.Label,
			AmountPence: amount,
			TaxPence:    tax,
		})
	}

	return total, breakdown
}

type incomeTaxResult struct {
	TaxPence           int64
	TaxableIncomePence int64
	Breakdown          []BandBreakdown
}

// calculateIncomeTax computes one period's income tax for the parsed code.
//
// Cumulative codes rebuild the year-to-date liability (band bounds prorated
// to periodNumber/periodsPerYear) and charge the difference against tax
// already paid, clamped at zero: when liability drops mid-year the period
// collects nothing rather than paying a refund. Non-cumulative codes band
// this period's taxable pay alone. Fixed-rate codes tax every penny of
// earnings at their flat rate, and NT taxes nothing. The breakdown describes
// whichever banding actually ran, so for cumulative codes it covers the
// year-to-date position.
func calculateIncomeTax(code TaxCode, tables *TaxYearTables, in CalculationInput) incomeTaxResult {
	earnings := in.earningsPence()

	switch code.Kind {
	case TaxCodeNoTax:
		return incomeTaxResult{}
	case TaxCodeFixedRate:
		tax := mulDiv(earnings, code.FixedRatePermille, 1000)
		return incomeTaxResult{
			TaxPence:           tax,
			TaxableIncomePence: earnings,
			Breakdown: []BandBreakdown{{
				BandLabel:   code.Raw + " flat rate",
				AmountPence: earnings,
				TaxPence:    tax,
			}},
		}
	}

	periods := in.PayFrequency.PeriodsPerYear()
	bands := tables.IncomeTax[code.Regime]
	taxable := taxablePay(earnings, periodAllowance(code, in.PeriodNumber, periods))

	if !code.Cumulative {
		tax, breakdown := taxOnAmount(bands, taxable, 1, periods)
		return incomeTaxResult{TaxPence: tax, TaxableIncomePence: taxable, Breakdown: breakdown}
	}

	taxableToDate := in.CumulativeTaxableIncomePence + taxable
	liabilityToDate, breakdown := taxOnAmount(bands, taxableToDate, in.PeriodNumber, periods)
	tax := clampNonNegative(liabilityToDate - in.CumulativeTaxPaidPence)

	return incomeTaxResult{TaxPence: tax, TaxableIncomePence: taxable, Breakdown: breakdown}
}

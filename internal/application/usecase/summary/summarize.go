package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/finbot/backend/internal/application/usecase/dataset"
	"github.com/finbot/backend/internal/application/usecase/statement"
	"github.com/finbot/backend/internal/domain/entity"
)

// Summarize builds the comprehensive financial summary for a dataset. Every
// step re-derives from the classified table; nothing is cached between
// steps. Calculator failures degrade the corresponding block to nil and the
// rest of the summary is still built.
func Summarize(ds *entity.Dataset) *entity.CompositeSummary {
	classified := dataset.Classify(ds)
	strategy := ChooseGrouping(classified)

	result := &entity.CompositeSummary{
		DataOverview:      overview(classified),
		IncomeCategories:  breakdown(classified.Rows, entity.CategoryIncome, strategy, generalIncomeLabel, false),
		ExpenseCategories: breakdown(classified.Rows, entity.CategoryExpense, strategy, generalExpenseLabel, true),
		Assets:            make(map[string]decimal.Decimal),
		Liabilities:       make(map[string]decimal.Decimal),
	}

	if incomeStatement, err := statement.ComputeIncomeStatement(classified, nil, nil); err == nil {
		result.IncomeStatement = incomeStatement
		result.IncomeTotal = incomeStatement.TotalIncome
		result.ExpenseTotal = incomeStatement.TotalExpenses
		result.NetIncome = incomeStatement.NetIncome
	}
	if balanceSheet, err := statement.ComputeBalanceSheet(classified, nil); err == nil {
		result.BalanceSheet = balanceSheet
		result.Assets = balanceSheet.Assets
		result.Liabilities = balanceSheet.Liabilities
		result.Equity = balanceSheet.TotalEquity
	}
	if cashFlow, err := statement.ComputeCashFlow(classified, nil, nil); err == nil {
		result.CashFlow = cashFlow
	}
	if ratios, err := statement.ComputeRatios(classified); err == nil {
		result.FinancialRatios = ratios
	}

	result.TimePeriods = buildPeriodBuckets(classified, strategy)
	result.Trends = buildTrendSummary(result.TimePeriods)

	return result
}

// overview computes the basic dataset statistics.
func overview(ds *entity.Dataset) entity.DataOverview {
	o := entity.DataOverview{
		TransactionCount:   len(ds.Rows),
		AverageTransaction: decimal.Zero,
	}
	if min, max, ok := ds.DateRange(); ok {
		start := min.Format("2006-01-02")
		end := max.Format("2006-01-02")
		o.DateRangeStart = &start
		o.DateRangeEnd = &end
	}
	if len(ds.Rows) > 0 {
		total := decimal.Zero
		for _, row := range ds.Rows {
			total = total.Add(row.Amount)
		}
		o.AverageTransaction = total.Div(decimal.NewFromInt(int64(len(ds.Rows))))
	}
	return o
}

// buildPeriodBuckets groups the classified rows into calendar-month buckets,
// sorted chronologically, each bucket carrying its own category breakdowns
// and (except the first) deltas against its immediate predecessor.
func buildPeriodBuckets(ds *entity.Dataset, strategy GroupingStrategy) []entity.PeriodBucket {
	byMonth := make(map[string][]entity.Transaction)
	for _, row := range ds.Rows {
		byMonth[row.MonthYear] = append(byMonth[row.MonthYear], row)
	}

	buckets := make([]entity.PeriodBucket, 0, len(byMonth))
	for month, rows := range byMonth {
		income := decimal.Zero
		expense := decimal.Zero
		for _, row := range rows {
			switch row.Category {
			case entity.CategoryIncome:
				income = income.Add(row.Amount)
			case entity.CategoryExpense:
				expense = expense.Add(row.Amount)
			}
		}
		expense = expense.Abs()

		buckets = append(buckets, entity.PeriodBucket{
			Period:            month,
			Income:            income,
			Expense:           expense,
			Net:               income.Sub(expense),
			IncomeCategories:  breakdown(rows, entity.CategoryIncome, strategy, generalIncomeLabel, false),
			ExpenseCategories: breakdown(rows, entity.CategoryExpense, strategy, generalExpenseLabel, true),
		})
	}

	// Lexicographic sort is chronological: the period label is fixed-width
	// "YYYY-MM".
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Period < buckets[j].Period
	})

	for i := 1; i < len(buckets); i++ {
		buckets[i].Delta = deltaBetween(buckets[i-1], buckets[i])
	}

	return buckets
}

// deltaBetween computes the change of current against previous.
func deltaBetween(previous, current entity.PeriodBucket) *entity.PeriodDelta {
	incomeChange := current.Income.Sub(previous.Income)
	expenseChange := current.Expense.Sub(previous.Expense)
	netChange := current.Net.Sub(previous.Net)

	return &entity.PeriodDelta{
		IncomeChange:     incomeChange,
		IncomeChangePct:  pctVsBase(incomeChange, previous.Income),
		ExpenseChange:    expenseChange,
		ExpenseChangePct: pctVsBase(expenseChange, previous.Expense),
		NetChange:        netChange,
		// The net percentage base is the magnitude of the previous net, which
		// may be negative.
		NetChangePct: pctVsBase(netChange, previous.Net.Abs()),
	}
}

// pctVsBase computes a percentage change against a base value. A zero base
// with a zero change is 0%; a zero base with a non-zero change is flagged
// with the unbounded sentinel rather than raising.
func pctVsBase(change, base decimal.Decimal) entity.Percent {
	if base.Sign() > 0 {
		return entity.Percent(change.InexactFloat64() / base.InexactFloat64() * 100)
	}
	if change.Sign() == 0 {
		return 0
	}
	return entity.UnboundedChangePct
}

// buildTrendSummary compares the first and last bucket. Nil when fewer than
// two buckets exist.
func buildTrendSummary(buckets []entity.PeriodBucket) *entity.TrendSummary {
	if len(buckets) < 2 {
		return nil
	}
	first := buckets[0]
	last := buckets[len(buckets)-1]

	incomeChange := last.Income.Sub(first.Income)
	expenseChange := last.Expense.Sub(first.Expense)
	netChange := last.Net.Sub(first.Net)

	return &entity.TrendSummary{
		PeriodCount:      len(buckets),
		StartPeriod:      first.Period,
		EndPeriod:        last.Period,
		IncomeChange:     incomeChange,
		IncomeChangePct:  pctVsBase(incomeChange, first.Income),
		ExpenseChange:    expenseChange,
		ExpenseChangePct: pctVsBase(expenseChange, first.Expense),
		NetChange:        netChange,
		NetChangePct:     pctVsBase(netChange, first.Net.Abs()),
		IncomeTrend:      direction(incomeChange, entity.TrendIncreasing, entity.TrendDecreasing),
		ExpenseTrend:     direction(expenseChange, entity.TrendIncreasing, entity.TrendDecreasing),
		NetTrend:         direction(netChange, entity.TrendImproving, entity.TrendWorsening),
	}
}

// direction labels a change by strict sign comparison; an exactly zero
// delta is stable.
func direction(change decimal.Decimal, up, down entity.TrendDirection) entity.TrendDirection {
	switch change.Sign() {
	case 1:
		return up
	case -1:
		return down
	default:
		return entity.TrendStable
	}
}

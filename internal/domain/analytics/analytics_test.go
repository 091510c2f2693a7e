package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsonage/property-ops/internal/domain/entity"
	"github.com/parsonage/property-ops/internal/domain/valueobject"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func tx(date time.Time, amount string, category, method, description string) entity.Transaction {
	return entity.Transaction{
		Date:          date,
		Amount:        dec(amount),
		Category:      category,
		PaymentMethod: method,
		Description:   description,
	}
}

func marchLedger() []entity.Transaction {
	return []entity.Transaction{
		tx(day(2024, time.March, 2), "1000", "Rent", "Zelle", "Room 1 rent"),
		tx(day(2024, time.March, 5), "-200", "Maintenance", "Card", "Plumber"),
		tx(day(2024, time.March, 6), "-50", "Other", "", "Misc"),
	}
}

func sumValues(m map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range m {
		total = total.Add(v)
	}
	return total
}

func TestRoundHalfUp(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"2.5", 3},
		{"2.4", 2},
		{"-2.5", -2},
		{"-2.6", -3},
		{"0", 0},
		{"74.99", 75},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, roundHalfUp(dec(tt.in)))
		})
	}
}

func TestSelectWindow(t *testing.T) {
	ledger := []entity.Transaction{
		tx(day(2024, time.February, 29), "10", "Rent", "", "before"),
		tx(day(2024, time.March, 1), "20", "Rent", "", "first day"),
		tx(time.Time{}, "30", "Rent", "", "undated"),
		tx(day(2024, time.March, 31), "40", "Rent", "", "last day"),
		tx(day(2024, time.April, 1), "50", "Rent", "", "after"),
	}

	selected := SelectWindow(ledger, valueobject.CalendarMonth(day(2024, time.March, 15)))

	require.Len(t, selected, 2)
	assert.Equal(t, "first day", selected[0].Description)
	assert.Equal(t, "last day", selected[1].Description)
	assert.Equal(t, 1, CountUndated(ledger))
}

func TestAnalyzePeriod_MarchLedger(t *testing.T) {
	pa := AnalyzePeriod(marchLedger(), valueobject.CalendarMonth(day(2024, time.March, 1)))

	assert.True(t, pa.TotalIncome.Equal(dec("1000")))
	assert.True(t, pa.TotalExpenses.Equal(dec("250")))
	assert.True(t, pa.NetProfit.Equal(dec("750")))
	assert.Equal(t, int64(75), pa.ProfitMargin)
	assert.Equal(t, TrendStrongGrowth, pa.Trend)
	assert.Equal(t, 1, pa.IncomeTxCount)
	assert.Equal(t, 2, pa.ExpenseTxCount)
	assert.True(t, pa.AvgTransactionSize.Equal(dec("1250").Div(dec("3"))))

	assert.True(t, sumValues(pa.IncomeByCategory).Equal(pa.TotalIncome))
	assert.True(t, sumValues(pa.ExpensesByCategory).Equal(pa.TotalExpenses))
	assert.True(t, pa.PaymentMethodTotals[entity.UnspecifiedPaymentMethod].Equal(dec("50")))

	assert.Equal(t, "Room 1 rent", pa.LargestIncome.Source)
	assert.Equal(t, "Plumber", pa.LargestExpense.Source)
}

func TestAnalyzePeriod_EmptyWindow(t *testing.T) {
	pa := AnalyzePeriod(marchLedger(), valueobject.CalendarMonth(day(2024, time.June, 1)))

	assert.True(t, pa.TotalIncome.IsZero())
	assert.True(t, pa.TotalExpenses.IsZero())
	assert.True(t, pa.NetProfit.IsZero())
	assert.True(t, pa.AvgTransactionSize.IsZero())
	assert.Equal(t, int64(0), pa.ProfitMargin)
	assert.Equal(t, TrendLoss, pa.Trend)
	assert.Empty(t, pa.PaymentMethodTotals)
}

func TestAggregate_ZeroAmountCountsOnlyTowardsPaymentMethod(t *testing.T) {
	agg := Aggregate([]entity.Transaction{
		tx(day(2024, time.March, 1), "0", "Rent", "Cash", "placeholder"),
	})

	assert.True(t, agg.PaymentMethodTotals["Cash"].IsZero())
	_, ok := agg.PaymentMethodTotals["Cash"]
	assert.True(t, ok)
	assert.Zero(t, agg.IncomeTxCount)
	assert.Zero(t, agg.ExpenseTxCount)
	assert.Empty(t, agg.IncomeByCategory)
	assert.Empty(t, agg.ExpensesByCategory)
}

func TestAggregate_LargestKeepsEarliestOnTie(t *testing.T) {
	agg := Aggregate([]entity.Transaction{
		tx(day(2024, time.March, 1), "500", "Rent", "", "first"),
		tx(day(2024, time.March, 2), "500", "Rent", "", "second"),
		tx(day(2024, time.March, 3), "-75", "Supplies", "", "mop"),
		tx(day(2024, time.March, 4), "-75", "Supplies", "", "broom"),
	})

	assert.Equal(t, "first", agg.LargestIncome.Source)
	assert.Equal(t, "mop", agg.LargestExpense.Source)
}

func TestAggregate_MissingCategoryFallsBackToOther(t *testing.T) {
	agg := Aggregate([]entity.Transaction{
		tx(day(2024, time.March, 1), "-10", "", "", "no category"),
	})

	assert.True(t, agg.ExpensesByCategory[entity.DefaultCategory].Equal(dec("10")))
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name   string
		net    string
		income string
		want   TrendLabel
	}{
		{"strong growth", "300", "1000", TrendStrongGrowth},
		{"positive at threshold", "200", "1000", TrendPositive},
		{"break-even small loss", "-50", "1000", TrendBreakEven},
		{"loss at threshold", "-100", "1000", TrendLoss},
		{"zero income positive net", "10", "0", TrendStrongGrowth},
		{"zero income zero net", "0", "0", TrendLoss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyTrend(dec(tt.net), dec(tt.income)))
		})
	}
}

func TestSortedBreakdown(t *testing.T) {
	items := SortedBreakdown(map[string]decimal.Decimal{
		"Utilities":   dec("100"),
		"Maintenance": dec("200"),
		"Insurance":   dec("100"),
	}, dec("400"))

	require.Len(t, items, 3)
	assert.Equal(t, "Maintenance", items[0].Category)
	assert.Equal(t, 50.0, items[0].Percent)
	assert.Equal(t, "Insurance", items[1].Category)
	assert.Equal(t, "Utilities", items[2].Category)
	assert.Equal(t, 25.0, items[2].Percent)
}

func TestComputeProfitability(t *testing.T) {
	w := valueobject.CalendarMonth(day(2024, time.March, 1))
	pm := ComputeProfitability(marchLedger(), w)

	assert.True(t, pm.TotalRevenue.Equal(dec("1000")))
	assert.True(t, pm.TotalExpenses.Equal(dec("250")))
	assert.True(t, pm.NetProfit.Equal(dec("750")))
	assert.Equal(t, int64(75), pm.ProfitMargin)
	assert.True(t, pm.CashFlowRatio.Equal(dec("4")))
	assert.True(t, pm.EstimatedValue.Equal(dec("120000")))
	// 750 * 12 / 120000 * 100 = 7.5
	assert.Equal(t, int64(8), pm.ROIEstimate)
	assert.Equal(t, 1, pm.MonthsInPeriod)
	assert.True(t, pm.BreakEvenMonthly.Equal(dec("250")))
}

func TestComputeProfitability_NoExpensesOrRevenue(t *testing.T) {
	w := valueobject.CalendarYear(2024, time.UTC)
	pm := ComputeProfitability(nil, w)

	assert.True(t, pm.CashFlowRatio.IsZero())
	assert.Equal(t, int64(0), pm.ROIEstimate)
	assert.Equal(t, int64(0), pm.ProfitMargin)
	assert.Equal(t, 13, pm.MonthsInPeriod)
	assert.True(t, pm.BreakEvenMonthly.IsZero())
}

func TestMonthsInPeriod(t *testing.T) {
	sameDay := valueobject.NewDateWindow(day(2024, time.March, 1), day(2024, time.March, 1))
	assert.Equal(t, 1, MonthsInPeriod(sameDay))

	quarter := valueobject.NewDateWindow(day(2024, time.January, 1), day(2024, time.March, 31))
	assert.Equal(t, 3, MonthsInPeriod(quarter))
}

func TestComputeTaxSummary(t *testing.T) {
	summary := ComputeTaxSummary(
		marchLedger(),
		valueobject.CalendarYear(2024, time.UTC),
		valueobject.DefaultPropertySettings(),
	)

	assert.True(t, summary.TotalIncome.Equal(dec("1000")))
	assert.True(t, summary.TotalDeductions.Equal(dec("200")))
	assert.True(t, summary.NetIncome.Equal(dec("800")))
	assert.Contains(t, summary.DeductibleByCategory, "Maintenance")
	assert.NotContains(t, summary.DeductibleByCategory, "Other")
}

func TestComputeTaxSummary_NonDeductibleOnly(t *testing.T) {
	summary := ComputeTaxSummary(
		[]entity.Transaction{tx(day(2024, time.May, 1), "-500", "Other", "", "misc")},
		valueobject.CalendarYear(2024, time.UTC),
		valueobject.DefaultPropertySettings(),
	)

	assert.True(t, summary.TotalDeductions.IsZero())
	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.NetIncome.IsZero())
	assert.Empty(t, summary.DeductibleByCategory)
}

func TestComputeTaxSummary_IncomeIgnoresAllowList(t *testing.T) {
	summary := ComputeTaxSummary(
		[]entity.Transaction{tx(day(2024, time.May, 1), "300", "Deposit", "", "deposit")},
		valueobject.CalendarYear(2024, time.UTC),
		valueobject.DefaultPropertySettings(),
	)

	assert.True(t, summary.IncomeByCategory["Deposit"].Equal(dec("300")))
}

func occupiedRoom(number, rent string) entity.Room {
	room := entity.NewRoom(number, dec(rent))
	room.Status = entity.RoomStatusOccupied
	return *room
}

func TestComputeOccupancy_TenantRooms(t *testing.T) {
	rooms := []entity.Room{
		occupiedRoom("1", "500"),
		occupiedRoom("2", "500"),
		occupiedRoom("3", "500"),
		*entity.NewRoom("4", dec("500")),
	}

	stats := ComputeOccupancy(rooms, nil, nil, day(2024, time.March, 1))

	assert.Equal(t, 4, stats.TotalTenantRooms)
	assert.Equal(t, 3, stats.TenantsOccupied)
	assert.Equal(t, int64(75), stats.TenantOccupancy)
	assert.Equal(t, int64(75), stats.OverallOccupancy)
	assert.Equal(t, int64(0), stats.GuestOccupancy)
	assert.True(t, stats.TenantRevenue.Equal(dec("1500")))
	assert.True(t, stats.TenantRevPAR.Equal(dec("375")))
	assert.True(t, stats.GuestRevPAR.IsZero())
	assert.True(t, stats.GuestADR.IsZero())
}

func TestComputeOccupancy_NegotiatedRentAndBlankRooms(t *testing.T) {
	negotiated := dec("450")
	room := occupiedRoom("1", "500")
	room.NegotiatedRent = &negotiated

	stats := ComputeOccupancy(
		[]entity.Room{room, occupiedRoom(" ", "900")},
		nil, nil, day(2024, time.March, 1),
	)

	assert.Equal(t, 1, stats.TotalTenantRooms)
	assert.True(t, stats.TenantRevenue.Equal(dec("450")))
	assert.True(t, stats.TenantADR.Equal(dec("15")))
}

func TestComputeOccupancy_GuestSegment(t *testing.T) {
	monthStart := day(2024, time.March, 1)
	guestRooms := []entity.GuestRoom{
		{RoomNumber: "G1", Status: entity.GuestRoomStatusOccupied},
		{RoomNumber: "G2", Status: entity.GuestRoomStatusAvailable},
	}
	bookings := []entity.Booking{
		{RoomNumber: "G1", CheckInDate: day(2024, time.March, 3), Nights: 2, TotalAmount: dec("160")},
		{RoomNumber: "G2", CheckInDate: day(2024, time.March, 10), Nights: 3, TotalAmount: dec("240")},
		{RoomNumber: "G2", CheckInDate: day(2024, time.February, 27), Nights: 4, TotalAmount: dec("320")},
		{RoomNumber: "G1", CheckInDate: day(2024, time.March, 20), Nights: 1, TotalAmount: dec("0")},
		{RoomNumber: "G1", Nights: 1, TotalAmount: dec("99")},
	}

	stats := ComputeOccupancy(nil, guestRooms, bookings, monthStart)

	assert.Equal(t, int64(50), stats.GuestOccupancy)
	assert.Equal(t, int64(50), stats.OverallOccupancy)
	assert.True(t, stats.GuestRevenue.Equal(dec("400")))
	assert.Equal(t, 5, stats.GuestNights)
	assert.True(t, stats.GuestRevPAR.Equal(dec("200")))
	assert.True(t, stats.GuestADR.Equal(dec("80")))
}

func TestComputeOccupancy_CheckInComparedByCalendarDate(t *testing.T) {
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	monthStart := valueobject.MonthStart(time.Date(2024, time.March, 15, 12, 0, 0, 0, newYork))
	bookings := []entity.Booking{
		{RoomNumber: "G1", CheckInDate: day(2024, time.March, 1), Nights: 2, TotalAmount: dec("200")},
		{RoomNumber: "G1", CheckInDate: day(2024, time.February, 29), Nights: 1, TotalAmount: dec("90")},
	}

	stats := ComputeOccupancy(nil, []entity.GuestRoom{{RoomNumber: "G1"}}, bookings, monthStart)

	assert.True(t, stats.GuestRevenue.Equal(dec("200")))
	assert.Equal(t, 2, stats.GuestNights)
	assert.True(t, stats.GuestADR.Equal(dec("100")))
	assert.True(t, valueobject.MonthToDate(monthStart.AddDate(0, 0, 14)).Contains(day(2024, time.March, 1)))
}

func TestComputeOccupancy_NoRooms(t *testing.T) {
	stats := ComputeOccupancy(nil, nil, nil, day(2024, time.March, 1))

	assert.Equal(t, int64(0), stats.OverallOccupancy)
	assert.Equal(t, int64(0), stats.TenantOccupancy)
	assert.Equal(t, int64(0), stats.GuestOccupancy)
	assert.True(t, stats.TenantRevPAR.IsZero())
	assert.True(t, stats.TenantADR.IsZero())
}

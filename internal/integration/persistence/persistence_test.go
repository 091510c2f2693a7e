package persistence_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/parsonage/property-ops/internal/domain/entity"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
	"github.com/parsonage/property-ops/internal/integration/persistence"
	"github.com/parsonage/property-ops/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbSQL, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	dbSQL.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = dbSQL.Close() })

	db, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLedgerRepository_AppendAndListAll(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewLedgerRepository(openTestDB(t))

	rent := entity.NewTransaction(date(2024, 3, 1), entity.KindRentIncome, "Rent payment from Ana - Room 1",
		decimal.NewFromInt(1000), "Rent", "Zelle", "RENT-1-202403", "Ana", "")
	repair := entity.NewTransaction(date(2024, 3, 5), entity.KindExpense, "Plumber",
		decimal.NewFromFloat(-150.5), "Maintenance", "Card", "", "", "R-22")
	undated := entity.NewTransaction(time.Time{}, "", "Imported row", decimal.NewFromInt(20), "", "", "", "", "")

	for i, tx := range []*entity.Transaction{rent, repair, undated} {
		position, err := repo.Append(ctx, tx)
		require.NoError(t, err)
		assert.Equal(t, int64(i+1), position)
		assert.Equal(t, position, tx.Position)
	}

	ledger, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 3)

	assert.Equal(t, rent.ID, ledger[0].ID)
	assert.Equal(t, "2024-03-01", ledger[0].Date.Format("2006-01-02"))
	assert.True(t, ledger[0].Amount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "RENT-1-202403", ledger[0].Reference)

	assert.Equal(t, repair.ID, ledger[1].ID)
	assert.True(t, ledger[1].Amount.Equal(decimal.NewFromFloat(-150.5)))
	assert.Equal(t, "R-22", ledger[1].ReceiptRef)

	assert.False(t, ledger[2].HasDate())
	assert.Equal(t, entity.DefaultCategory, ledger[2].Category)
	assert.Equal(t, int64(3), ledger[2].Position)
}

func TestLedgerRepository_AppendAll(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewLedgerRepository(openTestDB(t))

	first := entity.NewTransaction(date(2024, 3, 1), entity.KindRentIncome, "Room 1 rent",
		decimal.NewFromInt(1000), "Rent", "", "", "", "")
	second := entity.NewTransaction(date(2024, 3, 2), entity.KindExpense, "Bulbs",
		decimal.NewFromInt(-12), "Supplies", "", "", "", "")

	require.NoError(t, repo.AppendAll(ctx, []*entity.Transaction{first, second}))
	assert.Equal(t, int64(1), first.Position)
	assert.Equal(t, int64(2), second.Position)

	ledger, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 2)
	assert.Equal(t, second.ID, ledger[1].ID)
}

func TestLedgerRepository_AppendAllRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewLedgerRepository(openTestDB(t))

	first := entity.NewTransaction(date(2024, 3, 1), entity.KindRentIncome, "Room 1 rent",
		decimal.NewFromInt(1000), "Rent", "", "", "", "")
	second := entity.NewTransaction(date(2024, 3, 2), entity.KindRentIncome, "Room 2 rent",
		decimal.NewFromInt(900), "Rent", "", "", "", "")
	clash := entity.NewTransaction(date(2024, 3, 3), entity.KindExpense, "Duplicate id",
		decimal.NewFromInt(-5), "", "", "", "", "")
	clash.ID = first.ID

	err := repo.AppendAll(ctx, []*entity.Transaction{first, second, clash})
	require.Error(t, err)

	ledger, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestLedgerRepository_ReadsBackRoundedAmounts(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewLedgerRepository(openTestDB(t))

	tx := entity.NewTransaction(date(2024, 3, 1), entity.KindExpense, "Filters",
		decimal.RequireFromString("-19.995"), "Supplies", "", "", "", "")
	_, err := repo.Append(ctx, tx)
	require.NoError(t, err)

	ledger, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.True(t, ledger[0].Amount.Equal(decimal.RequireFromString("-20.00")))
	assert.True(t, ledger[0].Amount.Equal(tx.Amount))
}

func TestLedgerRepository_ListAllEmpty(t *testing.T) {
	repo := persistence.NewLedgerRepository(openTestDB(t))

	ledger, err := repo.ListAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, ledger)
}

func TestRoomRepository(t *testing.T) {
	ctx := context.Background()
	repo := persistence.NewRoomRepository(openTestDB(t))

	negotiated := decimal.NewFromInt(1100)
	room := entity.NewRoom("2", decimal.NewFromInt(1200))
	room.NegotiatedRent = &negotiated
	room.OccupantName = "Ben"
	room.Status = entity.RoomStatusOccupied
	require.NoError(t, repo.Save(ctx, room))
	require.NoError(t, repo.Save(ctx, entity.NewRoom("1", decimal.NewFromInt(900))))

	t.Run("lists rooms by number", func(t *testing.T) {
		rooms, err := repo.ListRooms(ctx)

		require.NoError(t, err)
		require.Len(t, rooms, 2)
		assert.Equal(t, "1", rooms[0].RoomNumber)
		assert.Equal(t, "2", rooms[1].RoomNumber)
	})

	t.Run("finds a room by number", func(t *testing.T) {
		found, err := repo.FindByNumber(ctx, "2")

		require.NoError(t, err)
		assert.Equal(t, "Ben", found.OccupantName)
		require.NotNil(t, found.NegotiatedRent)
		assert.True(t, found.EffectiveRent().Equal(negotiated))
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := repo.FindByNumber(ctx, "99")

		assert.ErrorIs(t, err, domainerror.ErrRoomNotFound)
	})

	t.Run("records last payment", func(t *testing.T) {
		paidAt := date(2024, 3, 1)
		require.NoError(t, repo.UpdateLastPayment(ctx, "2", paidAt, entity.PaymentStatusPaid))

		found, err := repo.FindByNumber(ctx, "2")
		require.NoError(t, err)
		require.NotNil(t, found.LastPaymentDate)
		assert.Equal(t, "2024-03-01", found.LastPaymentDate.Format("2006-01-02"))
		assert.Equal(t, entity.PaymentStatusPaid, found.PaymentStatus)
	})

	t.Run("last payment on unknown room", func(t *testing.T) {
		err := repo.UpdateLastPayment(ctx, "99", date(2024, 3, 1), entity.PaymentStatusPaid)

		assert.ErrorIs(t, err, domainerror.ErrRoomNotFound)
	})
}

func TestGuestRoomAndBookingRepositories(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	guestRooms := persistence.NewGuestRoomRepository(db)
	bookings := persistence.NewBookingRepository(db)

	require.NoError(t, guestRooms.Save(ctx, entity.NewGuestRoom("G2")))
	occupied := entity.NewGuestRoom("G1")
	occupied.Status = entity.GuestRoomStatusOccupied
	require.NoError(t, guestRooms.Save(ctx, occupied))

	later := entity.NewBooking("G1", "Cleo", date(2024, 3, 10), 2, decimal.NewFromInt(160))
	earlier := entity.NewBooking("G2", "Dan", date(2024, 3, 2), 3, decimal.NewFromInt(240))
	require.NoError(t, bookings.Save(ctx, later))
	require.NoError(t, bookings.Save(ctx, earlier))

	rooms, err := guestRooms.ListGuestRooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "G1", rooms[0].RoomNumber)
	assert.True(t, rooms[0].IsOccupied())

	listed, err := bookings.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Dan", listed[0].GuestName)
	assert.Equal(t, 3, listed[0].Nights)
	assert.True(t, listed[1].TotalAmount.Equal(decimal.NewFromInt(160)))
}

package steps

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/domain/entity"
	"github.com/parsonage/property-ops/internal/integration/persistence"
)

// registerSeedSteps registers steps that write fixtures straight to storage.
func registerSeedSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the ledger contains:$`, theLedgerContains)
	ctx.Step(`^the following rooms exist:$`, theFollowingRoomsExist)
	ctx.Step(`^the following guest rooms exist:$`, theFollowingGuestRoomsExist)
	ctx.Step(`^the following bookings exist:$`, theFollowingBookingsExist)
}

// tableRows maps each data row to its header names.
func tableRows(table *godog.Table) []map[string]string {
	if len(table.Rows) == 0 {
		return nil
	}

	header := table.Rows[0].Cells
	rows := make([]map[string]string, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i].Value] = cell.Value
		}
		rows = append(rows, values)
	}
	return rows
}

func parseSeedDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", raw)
}

func theLedgerContains(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	repo := persistence.NewLedgerRepository(tc.db.DbConn)
	for _, row := range tableRows(table) {
		date, err := parseSeedDate(row["date"])
		if err != nil {
			return fmt.Errorf("invalid ledger date %q: %w", row["date"], err)
		}
		amount, err := decimal.NewFromString(row["amount"])
		if err != nil {
			return fmt.Errorf("invalid ledger amount %q: %w", row["amount"], err)
		}

		tx := entity.NewTransaction(
			date,
			row["type"],
			row["description"],
			amount,
			row["category"],
			row["payment_method"],
			row["reference"],
			row["tenant_guest"],
			"",
		)
		if _, err := repo.Append(ctx, tx); err != nil {
			return fmt.Errorf("failed to seed ledger row: %w", err)
		}
	}
	return nil
}

func theFollowingRoomsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	repo := persistence.NewRoomRepository(tc.db.DbConn)
	for _, row := range tableRows(table) {
		rent, err := decimal.NewFromString(row["rent"])
		if err != nil {
			return fmt.Errorf("invalid rent %q: %w", row["rent"], err)
		}

		room := entity.NewRoom(row["room_number"], rent)
		room.OccupantName = row["occupant"]
		if status := row["status"]; status != "" {
			room.Status = entity.RoomStatus(status)
		}
		if negotiated := row["negotiated_rent"]; negotiated != "" {
			value, err := decimal.NewFromString(negotiated)
			if err != nil {
				return fmt.Errorf("invalid negotiated rent %q: %w", negotiated, err)
			}
			room.NegotiatedRent = &value
		}

		if err := repo.Save(ctx, room); err != nil {
			return fmt.Errorf("failed to seed room: %w", err)
		}
	}
	return nil
}

func theFollowingGuestRoomsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	repo := persistence.NewGuestRoomRepository(tc.db.DbConn)
	for _, row := range tableRows(table) {
		room := entity.NewGuestRoom(row["room_number"])
		if status := row["status"]; status != "" {
			room.Status = entity.GuestRoomStatus(status)
		}
		if err := repo.Save(ctx, room); err != nil {
			return fmt.Errorf("failed to seed guest room: %w", err)
		}
	}
	return nil
}

func theFollowingBookingsExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	repo := persistence.NewBookingRepository(tc.db.DbConn)
	for _, row := range tableRows(table) {
		checkIn, err := parseSeedDate(row["check_in"])
		if err != nil {
			return fmt.Errorf("invalid check-in %q: %w", row["check_in"], err)
		}
		nights, err := strconv.Atoi(row["nights"])
		if err != nil {
			return fmt.Errorf("invalid nights %q: %w", row["nights"], err)
		}
		total, err := decimal.NewFromString(row["total"])
		if err != nil {
			return fmt.Errorf("invalid total %q: %w", row["total"], err)
		}

		booking := entity.NewBooking(row["room_number"], row["guest"], checkIn, nights, total)
		if err := repo.Save(ctx, booking); err != nil {
			return fmt.Errorf("failed to seed booking: %w", err)
		}
	}
	return nil
}

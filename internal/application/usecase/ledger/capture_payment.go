package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/parsonage/property-ops/internal/application/adapter"
	"github.com/parsonage/property-ops/internal/domain/entity"
	domainerror "github.com/parsonage/property-ops/internal/domain/error"
)

// PaymentKind selects which tenant money movement is being captured.
type PaymentKind string

const (
	PaymentKindRent      PaymentKind = "rent"
	PaymentKindDeposit   PaymentKind = "deposit"
	PaymentKindRefund    PaymentKind = "refund"
	PaymentKindDeduction PaymentKind = "deduction"
)

// Ledger categories written by payment capture.
const (
	CategoryRent          = "Rent"
	CategoryDeposit       = "Deposit"
	CategoryDepositRefund = "Deposit Refund"
	CategoryMaintenance   = "Maintenance"
)

// CapturePaymentInput represents a tenant payment, deposit or deposit settlement.
type CapturePaymentInput struct {
	Kind          PaymentKind
	RoomNumber    string
	Date          *time.Time
	Amount        *decimal.Decimal // rent defaults to the room's effective rent
	PaymentMethod string
	Reason        string // deductions only
	ReceiptRef    string
}

// CapturePaymentUseCase writes the ledger row for a tenant money movement.
type CapturePaymentUseCase struct {
	ledgerRepo adapter.LedgerRepository
	roomRepo   adapter.RoomRepository
	clock      adapter.Clock
}

// NewCapturePaymentUseCase creates a new CapturePaymentUseCase instance.
func NewCapturePaymentUseCase(
	ledgerRepo adapter.LedgerRepository,
	roomRepo adapter.RoomRepository,
	clock adapter.Clock,
) *CapturePaymentUseCase {
	return &CapturePaymentUseCase{
		ledgerRepo: ledgerRepo,
		roomRepo:   roomRepo,
		clock:      clock,
	}
}

// Execute captures the payment.
func (uc *CapturePaymentUseCase) Execute(ctx context.Context, input CapturePaymentInput) (*TransactionOutput, error) {
	if err := validateCaptureInput(input); err != nil {
		return nil, err
	}

	room, err := uc.roomRepo.FindByNumber(ctx, strings.TrimSpace(input.RoomNumber))
	if err != nil {
		if errors.Is(err, domainerror.ErrRoomNotFound) {
			return nil, domainerror.NewLedgerError(
				domainerror.ErrCodeRoomNotFound,
				fmt.Sprintf("room %s not found", input.RoomNumber),
				domainerror.ErrRoomNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find room: %w", err)
	}

	date := uc.clock.Now()
	if input.Date != nil {
		date = *input.Date
	}

	var tx *entity.Transaction
	switch input.Kind {
	case PaymentKindRent:
		tx = rentTransaction(room, date, input)
	case PaymentKindDeposit:
		tx = entity.NewTransaction(
			date,
			entity.KindSecurityDeposit,
			fmt.Sprintf("Security deposit from %s - Room %s", room.OccupantName, room.RoomNumber),
			*input.Amount,
			CategoryDeposit,
			input.PaymentMethod,
			fmt.Sprintf("DEPOSIT-%s-%s", room.RoomNumber, date.Format("20060102")),
			room.OccupantName,
			input.ReceiptRef,
		)
	case PaymentKindRefund:
		tx = entity.NewTransaction(
			date,
			entity.KindDepositRefund,
			fmt.Sprintf("Security deposit refund to %s - Room %s", room.OccupantName, room.RoomNumber),
			input.Amount.Neg(),
			CategoryDepositRefund,
			input.PaymentMethod,
			fmt.Sprintf("REFUND-%s-%s", room.RoomNumber, date.Format("20060102")),
			room.OccupantName,
			input.ReceiptRef,
		)
	case PaymentKindDeduction:
		tx = entity.NewTransaction(
			date,
			entity.KindDepositDeduction,
			fmt.Sprintf("Deposit deduction - %s - %s", room.OccupantName, input.Reason),
			*input.Amount,
			CategoryMaintenance,
			input.PaymentMethod,
			fmt.Sprintf("DEDUCTION-%s-%s", room.RoomNumber, date.Format("20060102")),
			room.OccupantName,
			input.ReceiptRef,
		)
	}

	output, err := appendTransaction(ctx, uc.ledgerRepo, tx)
	if err != nil {
		return nil, err
	}

	if input.Kind == PaymentKindRent {
		if err := uc.roomRepo.UpdateLastPayment(ctx, room.RoomNumber, date, entity.PaymentStatusPaid); err != nil {
			return nil, fmt.Errorf("failed to update room payment status: %w", err)
		}
	}

	slog.Info("Payment captured",
		"kind", input.Kind,
		"room", room.RoomNumber,
		"reference", tx.Reference,
		"amount", tx.Amount.String(),
	)

	return output, nil
}

func rentTransaction(room *entity.Room, date time.Time, input CapturePaymentInput) *entity.Transaction {
	amount := room.EffectiveRent()
	if input.Amount != nil && input.Amount.IsPositive() {
		amount = *input.Amount
	}

	description := fmt.Sprintf("Rent payment from %s - Room %s", room.OccupantName, room.RoomNumber)
	if input.PaymentMethod != "" {
		description += fmt.Sprintf(" (%s)", input.PaymentMethod)
	}

	return entity.NewTransaction(
		date,
		entity.KindRentIncome,
		description,
		amount,
		CategoryRent,
		input.PaymentMethod,
		fmt.Sprintf("RENT-%s-%s", room.RoomNumber, date.Format("200601")),
		room.OccupantName,
		input.ReceiptRef,
	)
}

func validateCaptureInput(input CapturePaymentInput) error {
	switch input.Kind {
	case PaymentKindRent, PaymentKindDeposit, PaymentKindRefund, PaymentKindDeduction:
	default:
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidPaymentKind,
			"payment kind must be one of: rent, deposit, refund, deduction",
			domainerror.ErrInvalidPaymentKind,
		)
	}

	if strings.TrimSpace(input.RoomNumber) == "" {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeMissingRoomNumber,
			"room_number is required",
			domainerror.ErrMissingRoomNumber,
		)
	}

	// Rent may fall back to the room's rent; every other kind needs an explicit amount.
	if input.Kind != PaymentKindRent && (input.Amount == nil || !input.Amount.IsPositive()) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeNonPositiveAmount,
			fmt.Sprintf("%s amount must be greater than zero", input.Kind),
			domainerror.ErrNonPositiveAmount,
		)
	}

	return nil
}

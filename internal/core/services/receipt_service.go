package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/victoryfullpower/cpprimavera-sub002/internal/apperrors"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	portsrepo "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/repositories"
	portssvc "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/services"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/dto"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/middleware"
)

// maxAllocationAttempts bounds internal retries when concurrent receipts race
// on the same debt line items. Other error kinds surface immediately.
const maxAllocationAttempts = 3

// incomeReceiptService provides the income side of the receipt engine.
type incomeReceiptService struct {
	receiptRepo portsrepo.IncomeReceiptRepositoryFacade
	debtRepo    portsrepo.DebtReader
	standRepo   portsrepo.StandReader
	methodRepo  portsrepo.PaymentMethodReader
	conceptRepo portsrepo.ConceptReader
	now         func() time.Time
}

// NewIncomeReceiptService creates a new IncomeReceiptService.
func NewIncomeReceiptService(
	receiptRepo portsrepo.IncomeReceiptRepositoryFacade,
	debtRepo portsrepo.DebtReader,
	standRepo portsrepo.StandReader,
	methodRepo portsrepo.PaymentMethodReader,
	conceptRepo portsrepo.ConceptReader,
) portssvc.IncomeReceiptSvcFacade {
	return &incomeReceiptService{
		receiptRepo: receiptRepo,
		debtRepo:    debtRepo,
		standRepo:   standRepo,
		methodRepo:  methodRepo,
		conceptRepo: conceptRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.IncomeReceiptSvcFacade = (*incomeReceiptService)(nil)

// CreateIncomeReceipt validates the request, expands auto-allocate details
// into targeted allocations oldest debt first, and persists the receipt
// atomically. The repository re-checks every targeted balance under row
// locks; when a concurrent receipt wins the race, the plan is rebuilt and
// retried up to maxAllocationAttempts times.
func (s *incomeReceiptService) CreateIncomeReceipt(ctx context.Context, req dto.CreateIncomeReceiptRequest, creatorUserID string) (*domain.IncomeReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.validateRequest(ctx, req); err != nil {
		return nil, err
	}

	receiptDate := s.now()
	if req.Date != nil {
		receiptDate = *req.Date
	}

	now := s.now()
	receipt := domain.IncomeReceipt{
		ReceiptDate:     receiptDate,
		StandID:         req.StandID,
		PaymentMethodID: req.PaymentMethodID,
		Active:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	hasAutoAllocate := false
	for _, d := range req.Details {
		if d.AutoAllocate {
			hasAutoAllocate = true
			break
		}
	}

	var created *domain.IncomeReceipt
	var err error
	for attempt := 1; attempt <= maxAllocationAttempts; attempt++ {
		var details []domain.ReceiptDetail
		details, err = s.planDetails(ctx, req)
		if err != nil {
			return nil, err
		}

		created, err = s.receiptRepo.SaveIncomeReceipt(ctx, receipt, details)
		if err == nil {
			break
		}

		// A lost race invalidates the plan. Auto-allocate plans can also go
		// stale between planning and locking, which then shows up as an
		// insufficient balance; replanning resolves both.
		retryable := errors.Is(err, apperrors.ErrConcurrencyConflict) ||
			(hasAutoAllocate && errors.Is(err, apperrors.ErrInsufficientDebtBalance))
		if !retryable || attempt == maxAllocationAttempts {
			break
		}
		logger.Warn("Retrying income receipt allocation",
			slog.Int("attempt", attempt),
			slog.Int64("stand_id", req.StandID),
			slog.String("error", err.Error()))
	}
	if err != nil {
		if !errors.Is(err, apperrors.ErrInsufficientDebtBalance) {
			logger.Error("Failed to save income receipt", slog.String("error", err.Error()), slog.Int64("stand_id", req.StandID))
		}
		return nil, fmt.Errorf("failed to save income receipt: %w", err)
	}

	logger.Info("Income receipt created",
		slog.Int64("receipt_id", created.ReceiptID),
		slog.Int64("stand_id", created.StandID),
		slog.String("total", created.Total().String()))
	return created, nil
}

func (s *incomeReceiptService) validateRequest(ctx context.Context, req dto.CreateIncomeReceiptRequest) error {
	if len(req.Details) == 0 {
		return fmt.Errorf("%w: receipt must have at least one detail", apperrors.ErrValidation)
	}

	if _, err := s.standRepo.FindStandByID(ctx, req.StandID); err != nil {
		return fmt.Errorf("stand %d: %w", req.StandID, err)
	}
	if _, err := s.methodRepo.FindPaymentMethodByID(ctx, req.PaymentMethodID); err != nil {
		return fmt.Errorf("payment method %d: %w", req.PaymentMethodID, err)
	}

	for i, d := range req.Details {
		if d.Amount.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("%w: detail %d amount must be positive", apperrors.ErrValidation, i+1)
		}
		if d.LineItemID != nil && d.AutoAllocate {
			return fmt.Errorf("%w: detail %d cannot both target a line item and auto-allocate", apperrors.ErrValidation, i+1)
		}
		if _, err := s.conceptRepo.FindConceptByID(ctx, d.ConceptID); err != nil {
			return fmt.Errorf("concept %d: %w", d.ConceptID, err)
		}
		if d.LineItemID != nil {
			lineItem, err := s.debtRepo.FindLineItemByID(ctx, *d.LineItemID)
			if err != nil {
				return fmt.Errorf("debt line item %d: %w", *d.LineItemID, err)
			}
			if lineItem.StandID != req.StandID {
				return fmt.Errorf("%w: debt line item %d does not belong to stand %d", apperrors.ErrValidation, *d.LineItemID, req.StandID)
			}
		}
	}
	return nil
}

// planDetails turns request details into ordered receipt details. Targeted
// details pass through; auto-allocate details are spread across the stand's
// outstanding line items for the same concept, oldest period first, with any
// remainder recorded as a plain charge.
func (s *incomeReceiptService) planDetails(ctx context.Context, req dto.CreateIncomeReceiptRequest) ([]domain.ReceiptDetail, error) {
	var outstanding []domain.OutstandingLineItem
	for _, d := range req.Details {
		if d.AutoAllocate {
			var err error
			outstanding, err = s.debtRepo.FindOutstandingByStand(ctx, req.StandID)
			if err != nil {
				return nil, fmt.Errorf("failed to read outstanding debt for stand %d: %w", req.StandID, err)
			}
			break
		}
	}

	details := make([]domain.ReceiptDetail, 0, len(req.Details))
	lineNo := 0
	appendDetail := func(conceptID int64, kind domain.DetailKind, lineItemID *int64, amount decimal.Decimal) {
		lineNo++
		details = append(details, domain.ReceiptDetail{
			LineNo:     lineNo,
			ConceptID:  conceptID,
			Kind:       kind,
			LineItemID: lineItemID,
			Amount:     amount,
		})
	}

	for _, d := range req.Details {
		switch {
		case d.LineItemID != nil:
			appendDetail(d.ConceptID, domain.DetailDebtPayment, d.LineItemID, d.Amount)
		case d.AutoAllocate:
			remaining := d.Amount
			for i := range outstanding {
				if remaining.IsZero() {
					break
				}
				item := &outstanding[i]
				if item.ConceptID != d.ConceptID || item.RemainingBalance.LessThanOrEqual(decimal.Zero) {
					continue
				}
				applied := decimal.Min(remaining, item.RemainingBalance)
				id := item.LineItemID
				appendDetail(d.ConceptID, domain.DetailDebtPayment, &id, applied)
				item.RemainingBalance = item.RemainingBalance.Sub(applied)
				remaining = remaining.Sub(applied)
			}
			if remaining.IsPositive() {
				appendDetail(d.ConceptID, domain.DetailCharge, nil, remaining)
			}
		default:
			appendDetail(d.ConceptID, domain.DetailCharge, nil, d.Amount)
		}
	}
	return details, nil
}

// VoidIncomeReceipt flips the receipt inactive. Balances are derived from
// active receipts, so the flip reverses every allocation in the same
// transaction and a second void cannot double-credit.
func (s *incomeReceiptService) VoidIncomeReceipt(ctx context.Context, receiptID int64, voiderUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.receiptRepo.VoidIncomeReceipt(ctx, receiptID, voiderUserID, s.now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrAlreadyVoid) {
			return err
		}
		logger.Error("Failed to void income receipt", slog.Int64("receipt_id", receiptID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to void income receipt %d: %w", receiptID, err)
	}

	logger.Info("Income receipt voided", slog.Int64("receipt_id", receiptID))
	return nil
}

func (s *incomeReceiptService) GetIncomeReceiptByID(ctx context.Context, receiptID int64) (*domain.IncomeReceipt, error) {
	return s.receiptRepo.FindIncomeReceiptByID(ctx, receiptID)
}

// expenseReceiptService provides the expense side of the receipt engine.
type expenseReceiptService struct {
	receiptRepo portsrepo.ExpenseReceiptRepositoryFacade
	conceptRepo portsrepo.ConceptReader
	now         func() time.Time
}

// NewExpenseReceiptService creates a new ExpenseReceiptService.
func NewExpenseReceiptService(receiptRepo portsrepo.ExpenseReceiptRepositoryFacade, conceptRepo portsrepo.ConceptReader) portssvc.ExpenseReceiptSvcFacade {
	return &expenseReceiptService{
		receiptRepo: receiptRepo,
		conceptRepo: conceptRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.ExpenseReceiptSvcFacade = (*expenseReceiptService)(nil)

func (s *expenseReceiptService) CreateExpenseReceipt(ctx context.Context, req dto.CreateExpenseReceiptRequest, creatorUserID string) (*domain.ExpenseReceipt, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(req.Details) == 0 {
		return nil, fmt.Errorf("%w: receipt must have at least one detail", apperrors.ErrValidation)
	}

	details := make([]domain.ExpenseDetail, len(req.Details))
	for i, d := range req.Details {
		if d.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: detail %d amount must be positive", apperrors.ErrValidation, i+1)
		}
		if _, err := s.conceptRepo.FindConceptByID(ctx, d.ConceptID); err != nil {
			return nil, fmt.Errorf("concept %d: %w", d.ConceptID, err)
		}
		details[i] = domain.ExpenseDetail{
			LineNo:    i + 1,
			ConceptID: d.ConceptID,
			Amount:    d.Amount,
		}
	}

	receiptDate := s.now()
	if req.Date != nil {
		receiptDate = *req.Date
	}

	now := s.now()
	receipt := domain.ExpenseReceipt{
		ReceiptDate: receiptDate,
		Active:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	created, err := s.receiptRepo.SaveExpenseReceipt(ctx, receipt, details)
	if err != nil {
		logger.Error("Failed to save expense receipt", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save expense receipt: %w", err)
	}

	logger.Info("Expense receipt created", slog.Int64("receipt_id", created.ReceiptID), slog.String("total", created.Total().String()))
	return created, nil
}

func (s *expenseReceiptService) VoidExpenseReceipt(ctx context.Context, receiptID int64, voiderUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.receiptRepo.VoidExpenseReceipt(ctx, receiptID, voiderUserID, s.now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrAlreadyVoid) {
			return err
		}
		logger.Error("Failed to void expense receipt", slog.Int64("receipt_id", receiptID), slog.String("error", err.Error()))
		return fmt.Errorf("failed to void expense receipt %d: %w", receiptID, err)
	}

	logger.Info("Expense receipt voided", slog.Int64("receipt_id", receiptID))
	return nil
}

func (s *expenseReceiptService) GetExpenseReceiptByID(ctx context.Context, receiptID int64) (*domain.ExpenseReceipt, error) {
	return s.receiptRepo.FindExpenseReceiptByID(ctx, receiptID)
}

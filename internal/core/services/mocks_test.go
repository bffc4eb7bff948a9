package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/victoryfullpower/cpprimavera-sub002/internal/core/domain"
	portsrepo "github.com/victoryfullpower/cpprimavera-sub002/internal/core/ports/repositories"
)

// Shared repository mocks for the service tests in this package.

type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	args := m.Called(ctx, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

type MockStandRepository struct {
	mock.Mock
}

func (m *MockStandRepository) SaveStand(ctx context.Context, stand domain.Stand) (*domain.Stand, error) {
	args := m.Called(ctx, stand)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stand), args.Error(1)
}

func (m *MockStandRepository) FindStandByID(ctx context.Context, standID int64) (*domain.Stand, error) {
	args := m.Called(ctx, standID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Stand), args.Error(1)
}

func (m *MockStandRepository) ListStands(ctx context.Context) ([]domain.Stand, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Stand), args.Error(1)
}

type MockConceptRepository struct {
	mock.Mock
}

func (m *MockConceptRepository) SaveConcept(ctx context.Context, concept domain.Concept) (*domain.Concept, error) {
	args := m.Called(ctx, concept)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Concept), args.Error(1)
}

func (m *MockConceptRepository) UpdateConceptName(ctx context.Context, conceptID int64, name string, updatedBy string) (*domain.Concept, error) {
	args := m.Called(ctx, conceptID, name, updatedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Concept), args.Error(1)
}

func (m *MockConceptRepository) FindConceptByID(ctx context.Context, conceptID int64) (*domain.Concept, error) {
	args := m.Called(ctx, conceptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Concept), args.Error(1)
}

func (m *MockConceptRepository) ListConcepts(ctx context.Context) ([]domain.Concept, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Concept), args.Error(1)
}

type MockPaymentMethodRepository struct {
	mock.Mock
}

func (m *MockPaymentMethodRepository) SavePaymentMethod(ctx context.Context, method domain.PaymentMethod) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) FindPaymentMethodByID(ctx context.Context, paymentMethodID int64) (*domain.PaymentMethod, error) {
	args := m.Called(ctx, paymentMethodID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentMethod), args.Error(1)
}

func (m *MockPaymentMethodRepository) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentMethod), args.Error(1)
}

type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, header domain.DebtHeader, lineItems []domain.DebtLineItem) (*domain.DebtHeader, error) {
	args := m.Called(ctx, header, lineItems)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtHeader), args.Error(1)
}

func (m *MockDebtRepository) FindDebtHeaderByID(ctx context.Context, debtID int64) (*domain.DebtHeader, error) {
	args := m.Called(ctx, debtID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtHeader), args.Error(1)
}

func (m *MockDebtRepository) ListDebtHeadersByStand(ctx context.Context, standID int64) ([]domain.DebtHeader, error) {
	args := m.Called(ctx, standID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DebtHeader), args.Error(1)
}

func (m *MockDebtRepository) FindOutstandingByStand(ctx context.Context, standID int64) ([]domain.OutstandingLineItem, error) {
	args := m.Called(ctx, standID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OutstandingLineItem), args.Error(1)
}

func (m *MockDebtRepository) FindLineItemByID(ctx context.Context, lineItemID int64) (*domain.DebtLineItem, error) {
	args := m.Called(ctx, lineItemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DebtLineItem), args.Error(1)
}

type MockIncomeReceiptRepository struct {
	mock.Mock
}

func (m *MockIncomeReceiptRepository) SaveIncomeReceipt(ctx context.Context, receipt domain.IncomeReceipt, details []domain.ReceiptDetail) (*domain.IncomeReceipt, error) {
	args := m.Called(ctx, receipt, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeReceipt), args.Error(1)
}

func (m *MockIncomeReceiptRepository) VoidIncomeReceipt(ctx context.Context, receiptID int64, voidedBy string, voidedAt time.Time) error {
	args := m.Called(ctx, receiptID, voidedBy, voidedAt)
	return args.Error(0)
}

func (m *MockIncomeReceiptRepository) FindIncomeReceiptByID(ctx context.Context, receiptID int64) (*domain.IncomeReceipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IncomeReceipt), args.Error(1)
}

type MockExpenseReceiptRepository struct {
	mock.Mock
}

func (m *MockExpenseReceiptRepository) SaveExpenseReceipt(ctx context.Context, receipt domain.ExpenseReceipt, details []domain.ExpenseDetail) (*domain.ExpenseReceipt, error) {
	args := m.Called(ctx, receipt, details)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseReceipt), args.Error(1)
}

func (m *MockExpenseReceiptRepository) VoidExpenseReceipt(ctx context.Context, receiptID int64, voidedBy string, voidedAt time.Time) error {
	args := m.Called(ctx, receiptID, voidedBy, voidedAt)
	return args.Error(0)
}

func (m *MockExpenseReceiptRepository) FindExpenseReceiptByID(ctx context.Context, receiptID int64) (*domain.ExpenseReceipt, error) {
	args := m.Called(ctx, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseReceipt), args.Error(1)
}

type MockReportingRepository struct {
	mock.Mock
}

func (m *MockReportingRepository) ListIncomeReceiptReports(ctx context.Context, filter portsrepo.IncomeReceiptReportFilter) ([]domain.IncomeReceiptReport, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.IncomeReceiptReport), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportingRepository) ListExpenseReceiptReports(ctx context.Context, filter portsrepo.ExpenseReceiptReportFilter) ([]domain.ExpenseReceiptReport, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.ExpenseReceiptReport), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportingRepository) ListConceptSummary(ctx context.Context) ([]domain.ConceptSummaryRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ConceptSummaryRow), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User, passwordHash string) error {
	args := m.Called(ctx, user, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, userID string, deletedBy string) error {
	args := m.Called(ctx, userID, deletedBy)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

package service

import (
	"context"
	"testing"

	"fintrack/internal/currency"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memExpenseStore struct {
	records map[uuid.UUID]*models.Expense
}

func newMemExpenseStore() *memExpenseStore {
	return &memExpenseStore{records: make(map[uuid.UUID]*models.Expense)}
}

func (s *memExpenseStore) Create(_ context.Context, expense *models.Expense) error {
	cp := *expense
	s.records[expense.ID] = &cp
	return nil
}

func (s *memExpenseStore) GetByID(_ context.Context, id uuid.UUID) (*models.Expense, error) {
	expense, ok := s.records[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *expense
	return &cp, nil
}

func (s *memExpenseStore) ListByUserID(_ context.Context, userID uuid.UUID) ([]*models.Expense, error) {
	var out []*models.Expense
	for _, expense := range s.records {
		if expense.UserID == userID {
			cp := *expense
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *memExpenseStore) Update(_ context.Context, expense *models.Expense) error {
	if _, ok := s.records[expense.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *expense
	s.records[expense.ID] = &cp
	return nil
}

func (s *memExpenseStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.records[id]; !ok {
		return repository.ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func newTestExpenseService(store *memExpenseStore) *ExpenseService {
	rates := currency.NewStaticSource(map[string]decimal.Decimal{
		"EUR/USD": decimal.NewFromFloat(1.1),
	})
	normalizer := currency.NewNormalizer("USD", rates, zap.NewNop())
	return NewExpenseService(store, normalizer, zap.NewNop())
}

func TestExpenseCreateCanonicalCurrency(t *testing.T) {
	store := newMemExpenseStore()
	svc := newTestExpenseService(store)
	owner := uuid.New()

	resp, err := svc.Create(context.Background(), owner, &dto.CreateExpenseRequest{
		Amount:   "42.50",
		Category: "food",
		Currency: "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, "42.50", resp.Amount)
	assert.Equal(t, "USD", resp.Currency)
}

func TestExpenseCreateNormalizesForeignCurrency(t *testing.T) {
	store := newMemExpenseStore()
	svc := newTestExpenseService(store)
	owner := uuid.New()

	resp, err := svc.Create(context.Background(), owner, &dto.CreateExpenseRequest{
		Amount:   "50",
		Category: "travel",
		Currency: "EUR",
	})
	require.NoError(t, err)
	// 50 EUR at 1.1 -> 55.00 USD stored, original code retained.
	assert.Equal(t, "55.00", resp.Amount)
	assert.Equal(t, "EUR", resp.Currency)

	id := uuid.MustParse(resp.ID)
	stored := store.records[id]
	assert.Equal(t, "55.00", stored.Amount.StringFixed(2))
	assert.Equal(t, "EUR", stored.Currency)
	assert.Equal(t, owner, stored.UserID)
}

func TestExpenseCreateInvalidAmountNoWrite(t *testing.T) {
	store := newMemExpenseStore()
	svc := newTestExpenseService(store)

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateExpenseRequest{
		Amount:   "not-a-number",
		Category: "food",
	})
	assert.ErrorIs(t, err, currency.ErrInvalidAmount)
	assert.Empty(t, store.records)
}

func TestExpenseCreateMissingCategory(t *testing.T) {
	store := newMemExpenseStore()
	svc := newTestExpenseService(store)

	_, err := svc.Create(context.Background(), uuid.New(), &dto.CreateExpenseRequest{
		Amount: "10",
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, store.records)
}

func TestExpenseUpdateInvalidAmountLeavesRecordUnchanged(t *testing.T) {
	store := newMemExpenseStore()
	svc := newTestExpenseService(store)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateExpenseRequest{
		Amount:   "20",
		Category: "food",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	bad := dto.Amount("oops")
	_, err = svc.Update(context.Background(), owner, id, &dto.UpdateExpenseRequest{Amount: &bad})
	assert.ErrorIs(t, err, currency.ErrInvalidAmount)

	stored := store.records[id]
	assert.Equal(t, "20.00", stored.Amount.StringFixed(2))
}

func TestExpenseUpdateRenormalizesOnCurrencyChange(t *testing.T) {
	store := newMemExpenseStore()
	svc := newTestExpenseService(store)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateExpenseRequest{
		Amount:   "10",
		Category: "food",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	amount := dto.Amount("50")
	cur := "EUR"
	resp, err := svc.Update(context.Background(), owner, id, &dto.UpdateExpenseRequest{
		Amount:   &amount,
		Currency: &cur,
	})
	require.NoError(t, err)
	assert.Equal(t, "55.00", resp.Amount)
	assert.Equal(t, "EUR", resp.Currency)
}

func TestExpenseUpdateByNonOwnerDenied(t *testing.T) {
	store := newMemExpenseStore()
	svc := newTestExpenseService(store)
	owner := uuid.New()
	intruder := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateExpenseRequest{
		Amount:   "20",
		Category: "food",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	newCategory := "other"
	_, err = svc.Update(context.Background(), intruder, id, &dto.UpdateExpenseRequest{Category: &newCategory})
	assert.ErrorIs(t, err, ErrDenied)
	assert.Equal(t, "food", store.records[id].Category)
}

func TestExpenseDeleteByNonOwnerDenied(t *testing.T) {
	store := newMemExpenseStore()
	svc := newTestExpenseService(store)
	owner := uuid.New()
	intruder := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateExpenseRequest{
		Amount:   "20",
		Category: "food",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	err = svc.Delete(context.Background(), intruder, id)
	assert.ErrorIs(t, err, ErrDenied)

	// Still present and readable by its owner.
	got, err := svc.Get(context.Background(), owner, id)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestExpenseDeleteThenGetNotFound(t *testing.T) {
	store := newMemExpenseStore()
	svc := newTestExpenseService(store)
	owner := uuid.New()

	created, err := svc.Create(context.Background(), owner, &dto.CreateExpenseRequest{
		Amount:   "20",
		Category: "food",
	})
	require.NoError(t, err)
	id := uuid.MustParse(created.ID)

	require.NoError(t, svc.Delete(context.Background(), owner, id))

	_, err = svc.Get(context.Background(), owner, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// Re-deleting is safe: NotFound, not a crash.
	err = svc.Delete(context.Background(), owner, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestExpenseListScopedToOwner(t *testing.T) {
	store := newMemExpenseStore()
	svc := newTestExpenseService(store)
	alice := uuid.New()
	bob := uuid.New()

	_, err := svc.Create(context.Background(), alice, &dto.CreateExpenseRequest{Amount: "1", Category: "a"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob, &dto.CreateExpenseRequest{Amount: "2", Category: "b"})
	require.NoError(t, err)

	got, err := svc.List(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Category)
}

package services

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/momomaya/pos-backend/models"
	"github.com/momomaya/pos-backend/utils"
)

func setupTestLedger(t *testing.T) *LedgerStore {
	t.Helper()
	utils.InitLogger()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	store := NewLedgerStore(db)
	require.NoError(t, store.Migrate())
	return store
}

func billLines() []models.OrderLine {
	return []models.OrderLine{
		{ID: "chicken-steamed-medium", MenuItemID: "chicken", Name: "Steamed Chicken Momo (Medium)", UnitPrice: 60, UnitCost: 26, Quantity: 2},
		{ID: "tandoori-mayonnaise", MenuItemID: "tandoori-mayonnaise", Name: "Tandoori Mayonnaise", UnitPrice: 10, UnitCost: 4, Quantity: 1},
	}
}

func TestPeekNextBillNumberIsIdempotent(t *testing.T) {
	store := setupTestLedger(t)

	for i := 0; i < 3; i++ {
		n, err := store.PeekNextBillNumber()
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	}
}

func TestAppendAssignsSequentialBillNumbers(t *testing.T) {
	store := setupTestLedger(t)

	for want := 1; want <= 3; want++ {
		order, err := store.Append(billLines(), models.PaymentCash, "OK Road")
		require.NoError(t, err)
		assert.Equal(t, want, order.BillNumber)

		if want == 2 {
			// A soft delete in between must not disturb the sequence.
			_, err := store.SoftDelete(1, "customer cancelled")
			require.NoError(t, err)
		}
	}

	n, err := store.PeekNextBillNumber()
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestAppendFreezesSnapshot(t *testing.T) {
	store := setupTestLedger(t)

	lines := billLines()
	order, err := store.Append(lines, models.PaymentUPI, "OK Road")
	require.NoError(t, err)

	// Mutating the caller's slice afterwards must not affect the stored bill.
	lines[0].Quantity = 99

	stored, err := store.FindByBillNumber(order.BillNumber)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Items[0].Quantity)
	assert.Equal(t, 130.0, stored.Total)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, models.PaymentUPI, stored.PaymentMethod)
	assert.Equal(t, "OK Road", stored.BranchName)
}

func TestAppendValidation(t *testing.T) {
	store := setupTestLedger(t)

	_, err := store.Append(nil, models.PaymentCash, "OK Road")
	assert.ErrorIs(t, err, ErrEmptyOrder)

	_, err = store.Append(billLines(), "Cheque", "OK Road")
	assert.ErrorIs(t, err, ErrInvalidPayment)

	_, err = store.Append(billLines(), models.PaymentCash, "")
	assert.ErrorIs(t, err, ErrBranchNotSet)

	// None of the failures may burn a bill number.
	n, err := store.PeekNextBillNumber()
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestStatePersistsAcrossStoreInstances(t *testing.T) {
	store := setupTestLedger(t)

	_, err := store.Append(billLines(), models.PaymentCash, "OK Road")
	require.NoError(t, err)

	reopened := NewLedgerStore(store.db)
	n, err := reopened.PeekNextBillNumber()
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	order, err := reopened.FindByBillNumber(1)
	require.NoError(t, err)
	assert.Equal(t, 1, order.BillNumber)
}

func TestFindByBillNumberNotFound(t *testing.T) {
	store := setupTestLedger(t)

	_, err := store.FindByBillNumber(42)
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestSoftDeleteIsExclusionaryButDiscoverable(t *testing.T) {
	store := setupTestLedger(t)

	for i := 0; i < 3; i++ {
		_, err := store.Append(billLines(), models.PaymentCash, "OK Road")
		require.NoError(t, err)
	}

	_, err := store.SoftDelete(3, "customer cancelled")
	require.NoError(t, err)

	today := time.Now()
	active, err := store.QueryActiveByDateRange(today, today)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, o := range active {
		assert.NotEqual(t, 3, o.BillNumber)
	}

	deleted, err := store.QueryDeletedByDateRange(today, today)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, 3, deleted[0].BillNumber)
	require.NotNil(t, deleted[0].DeletionInfo)
	assert.Equal(t, "customer cancelled", deleted[0].DeletionInfo.Reason)

	// Still reachable by bill number, with the deletion info attached.
	found, err := store.FindByBillNumber(3)
	require.NoError(t, err)
	assert.True(t, found.IsDeleted())
}

func TestSoftDeleteMissingAndRepeated(t *testing.T) {
	store := setupTestLedger(t)

	_, err := store.SoftDelete(9, "whatever")
	assert.ErrorIs(t, err, ErrBillNotFound)

	_, err = store.Append(billLines(), models.PaymentCard, "OK Road")
	require.NoError(t, err)

	_, err = store.SoftDelete(1, "first")
	require.NoError(t, err)
	_, err = store.SoftDelete(1, "second")
	assert.ErrorIs(t, err, models.ErrAlreadyDeleted)

	// The original reason and the order's own date survive the second call.
	order, err := store.FindByBillNumber(1)
	require.NoError(t, err)
	assert.Equal(t, "first", order.DeletionInfo.Reason)
}

func seedOrdersAt(t *testing.T, store *LedgerStore, dates ...time.Time) {
	t.Helper()
	var orders []models.CompletedOrder
	for i, d := range dates {
		orders = append(orders, models.CompletedOrder{
			ID:            fmt.Sprintf("seed-%d", i+1),
			BillNumber:    i + 1,
			Items:         billLines(),
			Total:         130,
			Date:          d,
			PaymentMethod: models.PaymentCash,
			BranchName:    "OK Road",
		})
	}
	require.NoError(t, store.saveOrders(store.db, orders))
	require.NoError(t, store.putState(store.db, models.StateKeyLastBillNumber, strconv.Itoa(len(dates))))
}

func TestDateRangeBoundaryIsInclusiveToTheMillisecond(t *testing.T) {
	store := setupTestLedger(t)

	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.Local)
	lastMs := time.Date(2026, 8, 20, 23, 59, 59, 999*int(time.Millisecond), time.Local)
	seedOrdersAt(t, store,
		day.Add(10*time.Hour),
		lastMs,
		lastMs.Add(time.Millisecond),
	)

	active, err := store.QueryActiveByDateRange(day, day)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, 1, active[0].BillNumber)
	assert.Equal(t, 2, active[1].BillNumber)
}

func TestDeletedQueryFiltersByOriginalDate(t *testing.T) {
	store := setupTestLedger(t)

	yesterday := time.Now().AddDate(0, 0, -1)
	seedOrdersAt(t, store, yesterday)

	_, err := store.SoftDelete(1, "wrong order entered")
	require.NoError(t, err)

	// Deleted today, but listed under its original date.
	today := time.Now()
	deletedToday, err := store.QueryDeletedByDateRange(today, today)
	require.NoError(t, err)
	assert.Empty(t, deletedToday)

	deletedYesterday, err := store.QueryDeletedByDateRange(yesterday, yesterday)
	require.NoError(t, err)
	require.Len(t, deletedYesterday, 1)
	assert.Equal(t, 1, deletedYesterday[0].BillNumber)
}

func TestBranchNameRoundTrip(t *testing.T) {
	store := setupTestLedger(t)

	name, err := store.BranchName()
	require.NoError(t, err)
	assert.Empty(t, name)

	require.NoError(t, store.SetBranchName("Jahangir Mohalla"))
	name, err = store.BranchName()
	require.NoError(t, err)
	assert.Equal(t, "Jahangir Mohalla", name)

	// Overwrite, not append.
	require.NoError(t, store.SetBranchName("OK Road"))
	name, err = store.BranchName()
	require.NoError(t, err)
	assert.Equal(t, "OK Road", name)
}

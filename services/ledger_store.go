package services

import (
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/momomaya/pos-backend/models"
	"github.com/momomaya/pos-backend/utils"
)

var (
	ErrBillNotFound   = errors.New("bill number not found")
	ErrEmptyOrder     = errors.New("cannot finalize an empty order")
	ErrBranchNotSet   = errors.New("branch name has not been set")
	ErrInvalidPayment = errors.New("invalid payment method")
)

// LedgerStore is the durable append-only ledger of completed orders plus the
// bill-number counter. Both live as whole-document state records and every
// mutation rewrites them inside one transaction, so the counter can never
// advance without its order being stored.
type LedgerStore struct {
	db *gorm.DB
}

func NewLedgerStore(db *gorm.DB) *LedgerStore {
	return &LedgerStore{db: db}
}

// Migrate creates the state-record table.
func (s *LedgerStore) Migrate() error {
	return s.db.AutoMigrate(&models.StateRecord{})
}

func (s *LedgerStore) loadOrders(tx *gorm.DB) ([]models.CompletedOrder, error) {
	var rec models.StateRecord
	err := tx.First(&rec, "key = ?", models.StateKeyOrders).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var orders []models.CompletedOrder
	if err := json.Unmarshal([]byte(rec.Value), &orders); err != nil {
		// A corrupt blob is logged and treated as empty rather than taking
		// the whole terminal down.
		utils.ErrorLogger.Errorf("could not parse stored orders, treating as empty: %v", err)
		return nil, nil
	}
	return orders, nil
}

func (s *LedgerStore) saveOrders(tx *gorm.DB, orders []models.CompletedOrder) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return s.putState(tx, models.StateKeyOrders, string(data))
}

func (s *LedgerStore) lastBillNumber(tx *gorm.DB) (int, error) {
	var rec models.StateRecord
	err := tx.First(&rec, "key = ?", models.StateKeyLastBillNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(rec.Value)
	if err != nil {
		utils.ErrorLogger.Errorf("could not parse stored bill counter %q: %v", rec.Value, err)
		return 0, nil
	}
	return n, nil
}

func (s *LedgerStore) putState(tx *gorm.DB, key, value string) error {
	rec := models.StateRecord{Key: key, Value: value, UpdatedAt: time.Now()}
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
}

// PeekNextBillNumber returns the bill number the next finalize will use
// without reserving it. Repeated calls return the same value.
func (s *LedgerStore) PeekNextBillNumber() (int, error) {
	last, err := s.lastBillNumber(s.db)
	if err != nil {
		return 0, err
	}
	return last + 1, nil
}

// Append finalizes an order: assigns the next bill number, stamps the date,
// snapshots the lines and durably stores the result. The order list and the
// counter are written in the same transaction; a failed write leaves both
// untouched and a retry reuses the same bill number.
func (s *LedgerStore) Append(lines []models.OrderLine, paymentMethod models.PaymentMethod, branchName string) (models.CompletedOrder, error) {
	if len(lines) == 0 {
		return models.CompletedOrder{}, ErrEmptyOrder
	}
	if !paymentMethod.IsValid() {
		return models.CompletedOrder{}, ErrInvalidPayment
	}
	if branchName == "" {
		return models.CompletedOrder{}, ErrBranchNotSet
	}

	var completed models.CompletedOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders, err := s.loadOrders(tx)
		if err != nil {
			return err
		}
		last, err := s.lastBillNumber(tx)
		if err != nil {
			return err
		}

		snapshot := models.CloneLines(lines)
		completed = models.CompletedOrder{
			ID:            uuid.NewString(),
			BillNumber:    last + 1,
			Items:         snapshot,
			Total:         models.OrderTotal(snapshot),
			Date:          time.Now(),
			PaymentMethod: paymentMethod,
			BranchName:    branchName,
		}
		orders = append(orders, completed)

		if err := s.saveOrders(tx, orders); err != nil {
			return err
		}
		return s.putState(tx, models.StateKeyLastBillNumber, strconv.Itoa(completed.BillNumber))
	})
	if err != nil {
		utils.ErrorLogger.Errorf("failed to persist bill: %v", err)
		return models.CompletedOrder{}, err
	}
	utils.InfoLogger.Infof("stored bill #%d (%s, %.2f)", completed.BillNumber, paymentMethod, completed.Total)
	return completed, nil
}

// AllOrders returns a snapshot of every stored order, active and deleted.
func (s *LedgerStore) AllOrders() ([]models.CompletedOrder, error) {
	return s.loadOrders(s.db)
}

// FindByBillNumber looks a bill up regardless of deletion state.
func (s *LedgerStore) FindByBillNumber(billNumber int) (models.CompletedOrder, error) {
	orders, err := s.loadOrders(s.db)
	if err != nil {
		return models.CompletedOrder{}, err
	}
	for _, o := range orders {
		if o.BillNumber == billNumber {
			return o, nil
		}
	}
	return models.CompletedOrder{}, ErrBillNotFound
}

// QueryActiveByDateRange returns non-deleted orders whose own date falls in
// [start 00:00:00.000, end 23:59:59.999].
func (s *LedgerStore) QueryActiveByDateRange(start, end time.Time) ([]models.CompletedOrder, error) {
	return s.queryByDateRange(start, end, false)
}

// QueryDeletedByDateRange is the deleted-bill counterpart, still filtered by
// the order's original date rather than the deletion date.
func (s *LedgerStore) QueryDeletedByDateRange(start, end time.Time) ([]models.CompletedOrder, error) {
	return s.queryByDateRange(start, end, true)
}

func (s *LedgerStore) queryByDateRange(start, end time.Time, deleted bool) ([]models.CompletedOrder, error) {
	orders, err := s.loadOrders(s.db)
	if err != nil {
		return nil, err
	}
	from := startOfDay(start)
	to := endOfDay(end)

	var out []models.CompletedOrder
	for _, o := range orders {
		if o.IsDeleted() != deleted {
			continue
		}
		if o.Date.Before(from) || o.Date.After(to) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

// SoftDelete marks a bill as voided. The record stays discoverable by bill
// number and in deleted-bill listings; there is no way back to active.
func (s *LedgerStore) SoftDelete(billNumber int, reason string) (models.CompletedOrder, error) {
	var deleted models.CompletedOrder
	err := s.db.Transaction(func(tx *gorm.DB) error {
		orders, err := s.loadOrders(tx)
		if err != nil {
			return err
		}
		idx := -1
		for i := range orders {
			if orders[i].BillNumber == billNumber {
				idx = i
				break
			}
		}
		if idx < 0 {
			return ErrBillNotFound
		}
		if err := orders[idx].MarkDeleted(reason, time.Now()); err != nil {
			return err
		}
		deleted = orders[idx]
		return s.saveOrders(tx, orders)
	})
	if err != nil {
		return models.CompletedOrder{}, err
	}
	utils.InfoLogger.Infof("soft-deleted bill #%d: %s", billNumber, reason)
	return deleted, nil
}

// SetBranchName persists the session branch. It must be set before the first
// finalize.
func (s *LedgerStore) SetBranchName(name string) error {
	return s.putState(s.db, models.StateKeyBranchName, name)
}

// BranchName returns the persisted branch, empty when never set.
func (s *LedgerStore) BranchName() (string, error) {
	var rec models.StateRecord
	err := s.db.First(&rec, "key = ?", models.StateKeyBranchName).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return rec.Value, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999*int(time.Millisecond), t.Location())
}

package pos

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Store owns the two backing files and the in-memory ledger hydrated from
// them. All mutation paths go through it so that a single writer is
// active per file, and every optimistic in-memory change is reverted when
// its write fails.
type Store struct {
	ordersPath string
	salesPath  string

	mu     sync.Mutex
	ledger *Ledger
}

// OpenStore hydrates a store from the backing files. Missing files are
// non-fatal: the corresponding collection starts empty.
func OpenStore(ordersPath, salesPath string) (*Store, error) {
	s := &Store{ordersPath: ordersPath, salesPath: salesPath, ledger: NewLedger()}
	if err := s.Refresh(); err != nil {
		return nil, err
	}
	return s, nil
}

// Ledger exposes the in-memory ledger for reads and queries.
func (s *Store) Ledger() *Ledger { return s.ledger }

// LoadOrders reads every order line from the file. A missing file yields
// an empty list and ErrNotFound. Lines that fail to decode are skipped
// individually with a log, one bad line never aborts the load.
func LoadOrders(path string) ([]*Order, error) {
	orders := make([]*Order, 0, 128)
	err := loadLines(path, func(line int, fields []string) {
		o, err := decodeOrder(fields)
		if err != nil {
			log.Println(&DecodeError{File: path, Line: line, Err: err})
			return
		}
		orders = append(orders, o)
	})
	return orders, err
}

// LoadSales reads every sale line from the file with the same
// partial-failure semantics as LoadOrders.
func LoadSales(path string) ([]SaleRecord, error) {
	sales := make([]SaleRecord, 0, 128)
	err := loadLines(path, func(line int, fields []string) {
		r, err := decodeSale(fields)
		if err != nil {
			log.Println(&DecodeError{File: path, Line: line, Err: err})
			return
		}
		sales = append(sales, r)
	})
	return sales, err
}

// loadLines feeds each non-comment, non-blank decoded line to fn.
func loadLines(path string, fn func(line int, fields []string)) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return &PersistenceError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for i := 1; scanner.Scan(); i++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fn(i, DecodeLine(line))
	}
	if err := scanner.Err(); err != nil {
		return &PersistenceError{Op: "read", Path: path, Err: err}
	}
	return nil
}

// SaveOrders rewrites the whole orders file, header line included. The
// write goes to a temp file in the same directory and replaces the
// original by rename, so a concurrent reader never observes a truncated
// file. This is the only path by which a status edit or a new order
// becomes durable.
func SaveOrders(path string, orders []*Order) error {
	var b strings.Builder
	b.WriteString(ordersHeader)
	b.WriteByte('\n')
	for _, o := range orders {
		b.WriteString(encodeOrder(o))
		b.WriteByte('\n')
	}
	return replaceFile(path, b.String())
}

func replaceFile(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return &PersistenceError{Op: "create temp for", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &PersistenceError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &PersistenceError{Op: "replace", Path: path, Err: err}
	}
	return nil
}

// appendLine appends one line to a file, creating it with its header
// when absent. Cheaper than a rewrite; sales take this path.
func appendLine(path, header, line string) error {
	_, statErr := os.Stat(path)
	fresh := errors.Is(statErr, fs.ErrNotExist)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return &PersistenceError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	if fresh {
		line = header + "\n" + line
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		return &PersistenceError{Op: "append", Path: path, Err: err}
	}
	return nil
}

// SaveAll rewrites the orders file from the current ledger.
func (s *Store) SaveAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SaveOrders(s.ordersPath, s.ledger.orders)
}

// Refresh clears and reloads both collections from disk, reconciling the
// ledger after another instance may have touched the files. The swap
// happens only after both loads succeed, a failed or partial reload never
// discards current state. The whole load-and-swap runs under the store
// lock: a mutation that saved between an unlocked load and the swap would
// otherwise be replaced by its pre-save snapshot and dropped from disk on
// the next rewrite. Missing files load as empty.
func (s *Store) Refresh() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders, err := LoadOrders(s.ordersPath)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	sales, err := LoadSales(s.salesPath)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}
	s.ledger.replace(orders, sales)
	return nil
}

// CreateOrder mints and persists a new Pending order. On write failure
// the order is removed from the ledger again and the error surfaced.
func (s *Store) CreateOrder(customer, contact string, items []Item, method PaymentMethod, details PaymentDetails, total Money, at time.Time) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, err := s.ledger.NewOrder(customer, contact, items, method, details, total, at)
	if err != nil {
		return nil, err
	}
	if err := SaveOrders(s.ordersPath, s.ledger.orders); err != nil {
		s.ledger.removeOrder(o.ID)
		return nil, err
	}
	return o, nil
}

// SetOrderStatus edits an order's status and persists the whole file.
// The previous status is restored when the write fails.
func (s *Store) SetOrderStatus(orderID string, status OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.ledger.Order(orderID)
	if o == nil {
		return fmt.Errorf("unknown order %s", orderID)
	}
	prev := o.Status
	if err := o.SetStatus(status); err != nil {
		return err
	}
	if err := SaveOrders(s.ordersPath, s.ledger.orders); err != nil {
		o.Status = prev
		return err
	}
	return nil
}

// SetPaymentStatus edits an order's payment status with the same
// revert-on-failure contract as SetOrderStatus.
func (s *Store) SetPaymentStatus(orderID string, status PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.ledger.Order(orderID)
	if o == nil {
		return fmt.Errorf("unknown order %s", orderID)
	}
	prev := o.Payment
	if err := o.SetPaymentStatus(status); err != nil {
		return err
	}
	if err := SaveOrders(s.ordersPath, s.ledger.orders); err != nil {
		o.Payment = prev
		return err
	}
	return nil
}

// Finalize derives the sale for a completed order and appends it to the
// sales file. Re-finalizing an order that already has a sale returns the
// existing record: a crash between the order rewrite and the sale append
// can then be healed by simply finalizing again.
func (s *Store) Finalize(orderID string, at time.Time) (SaleRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing := s.ledger.SaleFor(orderID); existing != nil {
		return *existing, nil
	}
	o := s.ledger.Order(orderID)
	if o == nil {
		return SaleRecord{}, fmt.Errorf("unknown order %s", orderID)
	}

	id := s.nextSaleID(at)
	r, err := DeriveSale(o, id, at)
	if err != nil {
		return SaleRecord{}, err
	}
	if err := appendLine(s.salesPath, salesHeader, encodeSale(r)); err != nil {
		return SaleRecord{}, err
	}
	s.ledger.addSale(r)
	return r, nil
}

// nextSaleID re-scans the sales file so the sequence stays monotonic even
// when another instance appended since our last refresh. On scan failure
// it falls back to a time-derived unique id rather than risking a
// collision.
func (s *Store) nextSaleID(at time.Time) string {
	sales, err := LoadSales(s.salesPath)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fallbackSaleID(at)
	}
	return NextSaleID(sales)
}

/*
Package sqlite provides a SQLite-backed implementation of payroll.Source.

PURPOSE:
  The engine only needs read access to two ordered collections; this
  package supplies them from a database so a pay run can work off a real
  store instead of in-process fixtures. In production the same patterns
  apply to PostgreSQL - only minor SQL dialect differences.

KEY TABLES:
  employees:       One row per employee. The compensation plan and the
                   delivery disposition are stored as a tag column plus
                   the variant's fields; unused fields stay NULL.
  payroll_entries: One row per period input, AUTOINCREMENT seq preserves
                   insertion order so first-match lookup semantics
                   survive the round trip.

MONEY COLUMNS:
  Monetary values and rates are stored as TEXT and parsed with
  shopspring/decimal. REAL columns would reintroduce the binary
  floating-point drift the engine exists to avoid.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging): multiple readers
  don't block and crash recovery is cleaner.

USAGE:
  store, err := sqlite.New("./data/payroll.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  runner := payroll.NewRunner(store, dispatcher)

SEE ALSO:
  - payroll/source.go: Interface definition
  - store/memory: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/payroll-engine/payroll"
)

// Store implements payroll.Source backed by SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS employees (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		comp_kind TEXT NOT NULL,
		monthly_salary TEXT,
		base_salary TEXT,
		commission_rate TEXT,
		hourly_rate TEXT,
		disp_method TEXT NOT NULL,
		address_line1 TEXT,
		address_line2 TEXT,
		city TEXT,
		state TEXT,
		zip_code TEXT,
		office_number TEXT,
		bank_name TEXT,
		account_number TEXT,
		routing_number TEXT
	);

	-- seq preserves insertion order; duplicate employee_ids are legal and
	-- first-match lookup depends on stable ordering
	CREATE TABLE IF NOT EXISTS payroll_entries (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL,
		value_kind TEXT NOT NULL,
		hours INTEGER,
		receipts TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_entries_employee
		ON payroll_entries(employee_id);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SEED - Load fixture collections
// =============================================================================

// Seed inserts both collections atomically, replacing existing rows.
func (s *Store) Seed(ctx context.Context, employees []payroll.Employee, entries []payroll.PayrollEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM employees`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM payroll_entries`); err != nil {
		return err
	}

	for _, e := range employees {
		if err := insertEmployee(ctx, tx, e); err != nil {
			return fmt.Errorf("seed employee %d: %w", e.ID, err)
		}
	}
	for _, entry := range entries {
		if err := insertEntry(ctx, tx, entry); err != nil {
			return fmt.Errorf("seed entry for employee %d: %w", entry.EmployeeID, err)
		}
	}

	return tx.Commit()
}

// Empty reports whether the store has no employees (used to decide
// whether to seed on startup).
func (s *Store) Empty(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM employees`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

func insertEmployee(ctx context.Context, tx *sql.Tx, e payroll.Employee) error {
	var monthly, base, rate, hourly sql.NullString
	switch comp := e.Compensation.(type) {
	case payroll.Salaried:
		monthly = sql.NullString{String: comp.MonthlySalary.Value.String(), Valid: true}
	case payroll.Commissioned:
		base = sql.NullString{String: comp.BaseSalary.Value.String(), Valid: true}
		rate = sql.NullString{String: comp.CommissionRate.String(), Valid: true}
	case payroll.Hourly:
		hourly = sql.NullString{String: comp.HourlyRate.Value.String(), Valid: true}
	}

	var addr1, addr2, city, state, zip, office, bank, account, routing sql.NullString
	switch disp := e.Disposition.(type) {
	case payroll.MailedHome:
		addr1 = sql.NullString{String: disp.AddressLine1, Valid: true}
		addr2 = sql.NullString{String: disp.AddressLine2, Valid: true}
		city = sql.NullString{String: disp.City, Valid: true}
		state = sql.NullString{String: disp.State, Valid: true}
		zip = sql.NullString{String: disp.ZipCode, Valid: true}
	case payroll.HeldAtOffice:
		office = sql.NullString{String: disp.OfficeNumber, Valid: true}
	case payroll.DirectDeposit:
		bank = sql.NullString{String: disp.BankName, Valid: true}
		account = sql.NullString{String: disp.AccountNumber, Valid: true}
		routing = sql.NullString{String: disp.RoutingNumber, Valid: true}
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO employees (
			id, name, comp_kind,
			monthly_salary, base_salary, commission_rate, hourly_rate,
			disp_method,
			address_line1, address_line2, city, state, zip_code,
			office_number, bank_name, account_number, routing_number
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		int(e.ID), e.Name, string(e.Compensation.Kind()),
		monthly, base, rate, hourly,
		string(e.Disposition.Method()),
		addr1, addr2, city, state, zip,
		office, bank, account, routing,
	)
	return err
}

func insertEntry(ctx context.Context, tx *sql.Tx, entry payroll.PayrollEntry) error {
	var hours sql.NullInt64
	var receipts sql.NullString
	switch v := entry.Value.(type) {
	case payroll.Hours:
		hours = sql.NullInt64{Int64: int64(v.Worked), Valid: true}
	case payroll.SalesReceipts:
		receipts = sql.NullString{String: v.Total.Value.String(), Valid: true}
	}

	_, err := tx.ExecContext(ctx, `
		INSERT INTO payroll_entries (employee_id, value_kind, hours, receipts)
		VALUES (?, ?, ?, ?)`,
		int(entry.EmployeeID), string(entry.Value.ValueKind()), hours, receipts,
	)
	return err
}

// =============================================================================
// SOURCE - Read access for the pay run
// =============================================================================

// Employees returns the employee collection ordered by id.
func (s *Store) Employees(ctx context.Context) ([]payroll.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, comp_kind,
		       monthly_salary, base_salary, commission_rate, hourly_rate,
		       disp_method,
		       address_line1, address_line2, city, state, zip_code,
		       office_number, bank_name, account_number, routing_number
		FROM employees ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []payroll.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

// Entries returns the payroll entries in insertion order.
func (s *Store) Entries(ctx context.Context) ([]payroll.PayrollEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT employee_id, value_kind, hours, receipts
		FROM payroll_entries ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []payroll.PayrollEntry
	for rows.Next() {
		var id int
		var kind string
		var hours sql.NullInt64
		var receipts sql.NullString
		if err := rows.Scan(&id, &kind, &hours, &receipts); err != nil {
			return nil, err
		}

		var value payroll.PayrollValue
		switch payroll.PayrollValueKind(kind) {
		case payroll.ValueHours:
			value = payroll.Hours{Worked: int(hours.Int64)}
		case payroll.ValueSalesReceipts:
			total, err := parseMoney(receipts.String)
			if err != nil {
				return nil, fmt.Errorf("entry for employee %d: %w", id, err)
			}
			value = payroll.SalesReceipts{Total: total}
		default:
			return nil, fmt.Errorf("entry for employee %d: unknown value kind %q", id, kind)
		}

		entries = append(entries, payroll.PayrollEntry{
			EmployeeID: payroll.EmployeeID(id),
			Value:      value,
		})
	}
	return entries, rows.Err()
}

func scanEmployee(rows *sql.Rows) (payroll.Employee, error) {
	var id int
	var name, compKind, dispMethod string
	var monthly, base, rate, hourly sql.NullString
	var addr1, addr2, city, state, zip, office, bank, account, routing sql.NullString

	err := rows.Scan(&id, &name, &compKind,
		&monthly, &base, &rate, &hourly,
		&dispMethod,
		&addr1, &addr2, &city, &state, &zip,
		&office, &bank, &account, &routing)
	if err != nil {
		return payroll.Employee{}, err
	}

	var comp payroll.Compensation
	switch payroll.CompensationKind(compKind) {
	case payroll.KindSalaried:
		salary, err := parseMoney(monthly.String)
		if err != nil {
			return payroll.Employee{}, fmt.Errorf("employee %d: %w", id, err)
		}
		comp = payroll.Salaried{MonthlySalary: salary}
	case payroll.KindCommissioned:
		baseSalary, err := parseMoney(base.String)
		if err != nil {
			return payroll.Employee{}, fmt.Errorf("employee %d: %w", id, err)
		}
		commissionRate, err := decimal.NewFromString(rate.String)
		if err != nil {
			return payroll.Employee{}, fmt.Errorf("employee %d: %w", id, err)
		}
		comp = payroll.Commissioned{BaseSalary: baseSalary, CommissionRate: commissionRate}
	case payroll.KindHourly:
		hourlyRate, err := parseMoney(hourly.String)
		if err != nil {
			return payroll.Employee{}, fmt.Errorf("employee %d: %w", id, err)
		}
		comp = payroll.Hourly{HourlyRate: hourlyRate}
	default:
		return payroll.Employee{}, fmt.Errorf("employee %d: unknown compensation kind %q", id, compKind)
	}

	var disp payroll.Disposition
	switch payroll.DeliveryMethod(dispMethod) {
	case payroll.MethodMail:
		disp = payroll.MailedHome{
			AddressLine1: addr1.String,
			AddressLine2: addr2.String,
			City:         city.String,
			State:        state.String,
			ZipCode:      zip.String,
		}
	case payroll.MethodOffice:
		disp = payroll.HeldAtOffice{OfficeNumber: office.String}
	case payroll.MethodDeposit:
		disp = payroll.DirectDeposit{
			BankName:      bank.String,
			AccountNumber: account.String,
			RoutingNumber: routing.String,
		}
	default:
		return payroll.Employee{}, fmt.Errorf("employee %d: unknown disposition %q", id, dispMethod)
	}

	return payroll.Employee{
		ID:           payroll.EmployeeID(id),
		Name:         name,
		Compensation: comp,
		Disposition:  disp,
	}, nil
}

func parseMoney(s string) (payroll.Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return payroll.ZeroMoney(), fmt.Errorf("bad money value %q: %w", s, err)
	}
	return payroll.Money{Value: d}, nil
}

var _ payroll.Source = (*Store)(nil)

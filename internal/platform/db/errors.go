package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ViolationKind categorizes a Postgres constraint violation by SQLSTATE
// class, so repositories can switch on the kind instead of matching a
// hardcoded constraint name.
type ViolationKind int

const (
	// OtherViolation covers SQLSTATEs this package does not classify.
	OtherViolation ViolationKind = iota
	// UniqueViolation is SQLSTATE 23505.
	UniqueViolation
	// ForeignKeyViolation is SQLSTATE 23503.
	ForeignKeyViolation
	// NotNullViolation is SQLSTATE 23502.
	NotNullViolation
	// CheckViolation is SQLSTATE 23514.
	CheckViolation
)

// SQLError carries structured metadata from a Postgres integrity failure:
// the classified kind plus the table, column and constraint the server
// reported. It wraps the original driver error.
type SQLError struct {
	Kind       ViolationKind
	Code       string // raw SQLSTATE
	Table      string
	Column     string
	Constraint string

	driverErr *pgconn.PgError
}

func (e *SQLError) Error() string {
	return fmt.Sprintf("db: constraint violation (%s) on %s.%s constraint %q",
		e.Code, e.Table, e.Column, e.Constraint)
}

func (e *SQLError) Unwrap() error {
	return e.driverErr
}

// Classify inspects err for a *pgconn.PgError integrity violation and
// returns its structured form, or nil when err is not a constraint
// violation. Non-constraint driver errors (connectivity, syntax) stay
// unclassified and propagate to the caller as-is.
func Classify(err error) *SQLError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	kind := kindForCode(pgErr.Code)
	if kind == OtherViolation {
		return nil
	}
	return &SQLError{
		Kind:       kind,
		Code:       pgErr.Code,
		Table:      pgErr.TableName,
		Column:     pgErr.ColumnName,
		Constraint: pgErr.ConstraintName,
		driverErr:  pgErr,
	}
}

// IsNoRows reports whether err is the driver's empty-result sentinel.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

func kindForCode(code string) ViolationKind {
	switch code {
	case "23505":
		return UniqueViolation
	case "23503":
		return ForeignKeyViolation
	case "23502":
		return NotNullViolation
	case "23514":
		return CheckViolation
	default:
		return OtherViolation
	}
}

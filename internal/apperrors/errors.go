package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDivisionByZero indicates a computation attempted to divide an amount by
// zero (no participants, zero total weight).
var ErrDivisionByZero = errors.New("division by zero")

// ErrReconciliation indicates that computed per-participant amounts drifted
// from the expense total beyond the allowed tolerance. Results carrying this
// error must be discarded, not shown to users.
var ErrReconciliation = errors.New("reconciliation error")

// ErrBalanceInvariant indicates that net balances across all participants do
// not sum to zero within tolerance. Results carrying this error must be
// discarded, not shown to users.
var ErrBalanceInvariant = errors.New("balance invariant violation")

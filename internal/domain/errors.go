package domain

import "errors"

type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthorization
	KindState
	KindFatal
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthorization:
		return "authorization"
	case KindState:
		return "state"
	case KindFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Error is a vault rejection. Values are compared by identity, so wrap them
// with %w and test with errors.Is.
type Error struct {
	Kind Kind
	Code string
	msg  string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.msg
}

func newError(kind Kind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, msg: msg}
}

var (
	ErrZeroAmount               = newError(KindValidation, "ZeroAmount", "amount must be greater than zero")
	ErrInvalidAmount            = newError(KindValidation, "InvalidAmount", "amount must be a non-negative whole number of value units")
	ErrInvalidDuration          = newError(KindValidation, "InvalidDuration", "lock duration must not be negative")
	ErrArityMismatch            = newError(KindValidation, "ArityMismatch", "amounts and durations must be non-empty and of equal length")
	ErrInsufficientFunds        = newError(KindValidation, "InsufficientFunds", "funding is less than the sum of amounts")
	ErrFundingMismatch          = newError(KindValidation, "FundingMismatch", "funding exceeds the sum of amounts")
	ErrInvalidTierConfiguration = newError(KindValidation, "InvalidTierConfiguration", "invalid interest tier configuration")
	ErrLoginTaken               = newError(KindValidation, "LoginTaken", "username already taken")

	ErrDepositNotForCaller = newError(KindAuthorization, "DepositNotForCaller", "deposit does not belong to caller")
	ErrNotAdministrator    = newError(KindAuthorization, "NotAdministrator", "caller is not the vault administrator")

	ErrFundsStillLockedUp = newError(KindState, "FundsStillLockedUp", "funds are still locked up")
	ErrAlreadyWithdrawn   = newError(KindState, "AlreadyWithdrawn", "deposit already withdrawn")
	ErrUnknownDeposit     = newError(KindState, "UnknownDeposit", "deposit does not exist")
	ErrInvalidTimestamp   = newError(KindState, "InvalidTimestamp", "timestamp is in the future")

	ErrInsufficientVaultBalance = newError(KindFatal, "InsufficientVaultBalance", "vault balance does not cover the payout")
)

// KindOf returns the kind of the first vault error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

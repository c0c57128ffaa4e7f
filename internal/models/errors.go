package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Budget line errors
var (
	ErrAmountNotPositive     = errors.New("budget line amounts must be larger than zero")
	ErrLineTypeInvalid       = errors.New("the specified budget line type is invalid")
	ErrFundingSourceInvalid  = errors.New("the specified funding source is invalid")
	ErrStandardInvalid       = errors.New("the specified education standard is invalid")
	ErrComponentInvalid      = errors.New("the specified BOSP component is invalid")
	ErrAccountCodeMissing    = errors.New("expense lines need an account code")
	ErrAccountCodeInvalid    = errors.New("account codes consist of numbers separated by dots, e.g. 5.1.02.01.01.0012")
	ErrFiscalYearMissing     = errors.New("the fiscal year must be set")
	ErrRealizationsOnIncome  = errors.New("realizations can only be recorded for expense lines")
	ErrStatementMonthInvalid = errors.New("bank statement months must be between 1 and 12")
	ErrStatementNotUnique    = errors.New("there already is a bank statement for this month")
	ErrRuleMatchEmpty        = errors.New("account rules need a pattern to match descriptions against")
)

// Realization ledger errors
var (
	ErrRealizationMonthInvalid = errors.New("realization months must be between 1 and 12")
	ErrRealizationNotPositive  = errors.New("realization amounts must be larger than zero")
	ErrRealizationIndexInvalid = errors.New("there is no realization with this index")
)

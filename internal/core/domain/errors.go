package domain

import "errors"

var (
	errAccountRequired     = errors.New("transaction requires an owning account")
	errNegativeAmount      = errors.New("transaction amount must be a non-negative magnitude")
	errUnknownType         = errors.New("unknown transaction type")
	errTransferDestination = errors.New("transfer requires a resolvable destination account")
)

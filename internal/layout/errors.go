package layout

import "errors"

var (
	ErrNoPanels       = errors.New("panel group has no panels")
	ErrDuplicateID    = errors.New("duplicate panel id")
	ErrDuplicateOrder = errors.New("duplicate panel order")
	ErrInvalidBounds  = errors.New("invalid panel size bounds")
	ErrBudget         = errors.New("panel sizes do not fit in 100%")
)

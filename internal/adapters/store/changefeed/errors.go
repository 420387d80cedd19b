package changefeed

import (
	"github.com/jsamuelsen11/todotags/internal/domain"
)

// ErrClosed is returned by Subscribe after the hub has been closed.
var ErrClosed = domain.NewError(domain.KindUnavailable, "change feed closed")

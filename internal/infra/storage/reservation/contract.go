package reservation

import "github.com/kik4/salon-booking-service/pkg/txmanager"

// DBExecutor is the query interface the repository runs against. When a
// transaction is active in the context, txmanager substitutes it in.
type DBExecutor = txmanager.Executor

package sync

// OrderSyncResult reports how many pulled orders were new and which ones.
// Orders already present are silently skipped.
type OrderSyncResult struct {
	AddedCount    int      `json:"addedCount"`
	AddedOrderIDs []string `json:"addedOrderIds"`
}

package types

// a table lock guards the commit timeline of one table
// the fencing token is strictly monotonic across all tables and grows on
// every fresh acquisition, so storage can reject writes from a stale holder
type TableLock struct {
	Table        string //table base path
	OwnerID      string
	FencingToken uint64
	LeaseID      uint64 //associated lease
}

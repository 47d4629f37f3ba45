package client

import "context"

// a granted table lock and the fencing token that came with it
type Lock struct {
	client       *Client
	table        string
	fencingToken uint64
}

func (l *Lock) Table() string {
	return l.table
}

func (l *Lock) Token() uint64 {
	return l.fencingToken
}

// asks the leader whether this grant is still the live one
func (l *Lock) Valid(ctx context.Context) (bool, error) {
	return l.client.ValidateFence(ctx, l.table, l.fencingToken)
}

func (l *Lock) Release(ctx context.Context) error {
	return l.client.Release(ctx, l.table)
}

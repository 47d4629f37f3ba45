package types

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/proto"
)

//go:generate protoc --go_out=. --go_opt=paths=source_relative -I ../.. pkg/types/command.proto

// type of FSM command
type CommandType uint32

const (
	CommandTypeCreateLease CommandType = iota + 1
	CommandTypeRenewLease
	CommandTypeAcquireLock
	CommandTypeReleaseLock
	CommandTypeExpireLease
)

func (t CommandType) String() string {
	switch t {
	case CommandTypeCreateLease:
		return "create_lease"
	case CommandTypeRenewLease:
		return "renew_lease"
	case CommandTypeAcquireLock:
		return "acquire_lock"
	case CommandTypeReleaseLock:
		return "release_lock"
	case CommandTypeExpireLease:
		return "expire_lease"
	default:
		return "unknown"
	}
}

// interface all FSM commands implement
type Command interface {
	Type() CommandType
}

// creates a new lease, ttl travels with millisecond precision
type CreateLeaseCmd struct {
	OwnerID string
	TTL     time.Duration
}

func (c CreateLeaseCmd) Type() CommandType { return CommandTypeCreateLease }

// renews an existing lease
type RenewLeaseCmd struct {
	LeaseID uint64
}

func (c RenewLeaseCmd) Type() CommandType { return CommandTypeRenewLease }

// acquires the lock of a table with fencing
type AcquireLockCmd struct {
	Table   string
	OwnerID string
	LeaseID uint64
}

func (c AcquireLockCmd) Type() CommandType { return CommandTypeAcquireLock }

// releases the lock of a table
type ReleaseLockCmd struct {
	Table   string
	LeaseID uint64
}

func (c ReleaseLockCmd) Type() CommandType { return CommandTypeReleaseLock }

// expires a lease and releases all its locks (internal)
type ExpireLeaseCmd struct {
	LeaseID uint64
}

func (c ExpireLeaseCmd) Type() CommandType { return CommandTypeExpireLease }

// converts a command into its protobuf envelope
func ToProto(cmd Command) (*CommandWrapper, error) {
	w := &CommandWrapper{Type: uint32(cmd.Type())}

	switch c := cmd.(type) {
	case CreateLeaseCmd:
		w.OwnerId = c.OwnerID
		w.TtlMs = c.TTL.Milliseconds()
	case RenewLeaseCmd:
		w.LeaseId = c.LeaseID
	case AcquireLockCmd:
		w.Table = c.Table
		w.OwnerId = c.OwnerID
		w.LeaseId = c.LeaseID
	case ReleaseLockCmd:
		w.Table = c.Table
		w.LeaseId = c.LeaseID
	case ExpireLeaseCmd:
		w.LeaseId = c.LeaseID
	default:
		return nil, fmt.Errorf("unknown command: %T", cmd)
	}
	return w, nil
}

// marshals a command into the bytes replicated through the raft log
func EncodeCommand(cmd Command) ([]byte, error) {
	wrapper, err := ToProto(cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to convert to proto: %w", err)
	}
	return proto.Marshal(wrapper)
}

// inverse of EncodeCommand
func DecodeCommand(data []byte) (Command, error) {
	var wrapper CommandWrapper
	if err := proto.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal command: %w", err)
	}
	return FromProto(&wrapper)
}

// converts a protobuf envelope back into an internal command
func FromProto(w *CommandWrapper) (Command, error) {
	switch t := CommandType(w.GetType()); t {
	case CommandTypeCreateLease:
		return CreateLeaseCmd{
			OwnerID: w.GetOwnerId(),
			TTL:     time.Duration(w.GetTtlMs()) * time.Millisecond,
		}, nil
	case CommandTypeRenewLease:
		return RenewLeaseCmd{LeaseID: w.GetLeaseId()}, nil
	case CommandTypeAcquireLock:
		return AcquireLockCmd{Table: w.GetTable(), OwnerID: w.GetOwnerId(), LeaseID: w.GetLeaseId()}, nil
	case CommandTypeReleaseLock:
		return ReleaseLockCmd{Table: w.GetTable(), LeaseID: w.GetLeaseId()}, nil
	case CommandTypeExpireLease:
		return ExpireLeaseCmd{LeaseID: w.GetLeaseId()}, nil
	default:
		return nil, fmt.Errorf("unknown command type: %d", w.GetType())
	}
}

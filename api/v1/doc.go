// Package v1 holds the wire types and gRPC stubs of the table lock service.
package v1

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative -I ../.. api/v1/lock.proto

// Package pb holds the protoc output for api/proto/coffee.proto.
//
// Regenerate after editing the .proto file:
//
//	go generate ./api/pb
package pb

//go:generate protoc -I ../proto --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative coffee.proto

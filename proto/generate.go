// Package proto holds the wire definitions. Generated Go stubs land under
// gen/proto and are not committed.
package proto

//go:generate protoc -I . --go_out=../gen/proto --go_opt=paths=source_relative --go-grpc_out=../gen/proto --go-grpc_opt=paths=source_relative docstream/v1/docstream.proto

// Package proto holds the LLM sidecar service definition. The Go bindings
// are generated into this directory and are not committed.
//
//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative llm.proto
package proto

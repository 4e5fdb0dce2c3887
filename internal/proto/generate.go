package proto

//go:generate protoc -I ../../api --go_out=../.. --go_opt=module=github.com/dmitrijs2005/signly --go-grpc_out=../.. --go-grpc_opt=module=github.com/dmitrijs2005/signly signly/v1/signly.proto

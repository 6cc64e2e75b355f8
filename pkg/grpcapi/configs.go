package grpcapi

import "os"

// DefaultAddress is used when no listen address is configured.
const DefaultAddress = ":50051"

// Config controls the gRPC server.
type Config struct {
	// Address is the listen address. Default: ":50051".
	Address string
}

// NewConfig reads gRPC server settings from the environment.
//
// Variables:
//   - GRPC_ADDRESS (default ":50051")
func NewConfig() Config {
	addr := os.Getenv("GRPC_ADDRESS")
	if addr == "" {
		addr = DefaultAddress
	}
	return Config{Address: addr}
}

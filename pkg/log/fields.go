package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Service
	FieldService = "service"

	// gRPC
	FieldGRPCMethod = "grpc_method"
	FieldGRPCCode   = "grpc_code"
	FieldPeer       = "peer"

	// Generator
	FieldNodeID     = "node_id"
	FieldAPIVersion = "api_version"
	FieldEntityType = "entity_type"
	FieldIDKind     = "id_kind"
	FieldCount      = "count"
)

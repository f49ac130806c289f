package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// SettlementServiceName is the fully-qualified name of the SettlementService.
	SettlementServiceName = "splitledger.v1.SettlementService"

	// SettlementServiceComputeSettlementProcedure is the path of the ComputeSettlement RPC.
	SettlementServiceComputeSettlementProcedure = "/splitledger.v1.SettlementService/ComputeSettlement"
)

// SettlementServiceHandler is implemented by the settlement service.
type SettlementServiceHandler interface {
	ComputeSettlement(context.Context, *connect.Request[ComputeSettlementRequest]) (*connect.Response[ComputeSettlementResponse], error)
}

// NewSettlementServiceHandler builds an HTTP handler for the service and
// returns the path prefix to mount it on.
func NewSettlementServiceHandler(svc SettlementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSONCodec(opts)

	mux := http.NewServeMux()
	mux.Handle(SettlementServiceComputeSettlementProcedure,
		connect.NewUnaryHandler(SettlementServiceComputeSettlementProcedure, svc.ComputeSettlement, opts...))

	return "/" + SettlementServiceName + "/", mux
}

// SettlementServiceClient calls a remote SettlementService.
type SettlementServiceClient struct {
	computeSettlement *connect.Client[ComputeSettlementRequest, ComputeSettlementResponse]
}

// NewSettlementServiceClient creates a client for the service at baseURL
// (e.g., http://localhost:8080).
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SettlementServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append(opts, connect.WithCodec(JSONCodec{}))
	return &SettlementServiceClient{
		computeSettlement: connect.NewClient[ComputeSettlementRequest, ComputeSettlementResponse](
			httpClient, baseURL+SettlementServiceComputeSettlementProcedure, opts...),
	}
}

// ComputeSettlement calls splitledger.v1.SettlementService.ComputeSettlement.
func (c *SettlementServiceClient) ComputeSettlement(ctx context.Context, req *connect.Request[ComputeSettlementRequest]) (*connect.Response[ComputeSettlementResponse], error) {
	return c.computeSettlement.CallUnary(ctx, req)
}

func withJSONCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

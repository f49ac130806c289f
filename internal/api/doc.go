// Package api defines the splitledger.v1 RPC contract: message types,
// procedure names, and Connect handler and client constructors.
//
// Messages are plain Go structs sent as JSON, one request and one response
// type per RPC, named after it. Amounts are JSON numbers. JSONCodec is registered under
// the "json" codec name on both sides, so any Connect client that speaks the
// Connect protocol with Content-Type application/json can call the services,
// including curl:
//
//	curl -H 'Content-Type: application/json' \
//	  -d '{"people":["A","B"],"expenses":[...]}' \
//	  http://localhost:8080/splitledger.v1.SettlementService/ComputeSettlement
package api

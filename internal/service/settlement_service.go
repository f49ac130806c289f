package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/api"
	"github.com/mmynk/splitledger/internal/calculator"
)

// SettlementService computes balances and settlements for a roster and
// expense log sent by the caller. Nothing is stored.
type SettlementService struct{}

// NewSettlementService creates a new SettlementService.
func NewSettlementService() *SettlementService {
	return &SettlementService{}
}

var _ api.SettlementServiceHandler = (*SettlementService)(nil)

// ComputeSettlement runs the engine over the request.
func (s *SettlementService) ComputeSettlement(ctx context.Context, req *connect.Request[api.ComputeSettlementRequest]) (*connect.Response[api.ComputeSettlementResponse], error) {
	slog.Info("ComputeSettlement request received",
		"people_count", len(req.Msg.People),
		"expenses_count", len(req.Msg.Expenses),
	)

	result := calculator.ComputeSettlement(req.Msg.People, req.Msg.Expenses)
	logResult(ctx, "", result)

	return connect.NewResponse(&api.ComputeSettlementResponse{
		Summary: api.NewSummary(result),
	}), nil
}

// logResult reports data-quality problems the engine tolerated.
func logResult(ctx context.Context, ledgerID string, r calculator.Result) {
	if r.Degraded > 0 {
		slog.WarnContext(ctx, "Custom splits fell back to equal shares",
			"ledger_id", ledgerID,
			"degraded", r.Degraded,
		)
	}
	if !r.Consistent() {
		slog.WarnContext(ctx, "Settlement plan leaves a residual",
			"ledger_id", ledgerID,
			"residual", r.Residual.StringFixed(2),
			"tolerance", r.Tolerance().StringFixed(2),
		)
	}
	slog.DebugContext(ctx, "Settlement computed",
		"ledger_id", ledgerID,
		"balances", r.Balances.Len(),
		"settlements", len(r.Settlements),
	)
}

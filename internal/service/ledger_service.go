package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/api"
	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/events"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// errIncomplete aborts an update when a draft still lacks custom amounts.
var errIncomplete = errors.New("expense incomplete")

// LedgerService manages stored ledgers and keeps their settlement current.
type LedgerService struct {
	store     storage.Store
	publisher events.Publisher
	now       func() time.Time
}

// NewLedgerService creates a LedgerService with the given storage backend.
// A nil publisher disables notifications.
func NewLedgerService(store storage.Store, publisher events.Publisher) *LedgerService {
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &LedgerService{store: store, publisher: publisher, now: time.Now}
}

var _ api.LedgerServiceHandler = (*LedgerService)(nil)

// CreateLedger creates a ledger with an optional initial roster.
func (s *LedgerService) CreateLedger(ctx context.Context, req *connect.Request[api.CreateLedgerRequest]) (*connect.Response[api.CreateLedgerResponse], error) {
	slog.Info("CreateLedger request received",
		"name", req.Msg.Name,
		"people_count", len(req.Msg.People),
	)

	l := models.Ledger{Name: strings.TrimSpace(req.Msg.Name)}
	if l.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("ledger %w", ledger.ErrEmptyName))
	}
	for _, name := range req.Msg.People {
		next, err := ledger.Apply(l, ledger.AddPerson{Name: name})
		if err != nil {
			slog.Error("CreateLedger roster rejected", "person", name, "error", err)
			return nil, toConnectError(err)
		}
		l = next
	}

	if err := s.store.CreateLedger(ctx, &l); err != nil {
		slog.Error("CreateLedger failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Ledger created", "ledger_id", l.ID)
	view := newLedgerView(ctx, l)
	s.publish(ctx, events.LedgerCreated, view)

	return connect.NewResponse(&api.CreateLedgerResponse{LedgerView: view}), nil
}

// GetLedger returns a ledger and its current settlement.
func (s *LedgerService) GetLedger(ctx context.Context, req *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	slog.Info("GetLedger request received", "ledger_id", req.Msg.LedgerID)

	l, err := s.store.GetLedger(ctx, req.Msg.LedgerID)
	if err != nil {
		slog.Error("GetLedger failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.GetLedgerResponse{LedgerView: newLedgerView(ctx, l)}), nil
}

// ListLedgers returns a short description of every ledger.
func (s *LedgerService) ListLedgers(ctx context.Context, req *connect.Request[api.ListLedgersRequest]) (*connect.Response[api.ListLedgersResponse], error) {
	slog.Info("ListLedgers request received")

	ledgers, err := s.store.ListLedgers(ctx)
	if err != nil {
		slog.Error("ListLedgers failed", "error", err)
		return nil, toConnectError(err)
	}

	infos := make([]api.LedgerInfo, len(ledgers))
	for i, l := range ledgers {
		infos[i] = api.LedgerInfo{
			ID:           l.ID,
			Name:         l.Name,
			PeopleCount:  len(l.People),
			ExpenseCount: len(l.Expenses),
			CreatedAt:    l.CreatedAt,
		}
	}

	slog.Info("ListLedgers successful", "count", len(infos))
	return connect.NewResponse(&api.ListLedgersResponse{Ledgers: infos}), nil
}

// DeleteLedger removes a ledger.
func (s *LedgerService) DeleteLedger(ctx context.Context, req *connect.Request[api.DeleteLedgerRequest]) (*connect.Response[api.DeleteLedgerResponse], error) {
	slog.Info("DeleteLedger request received", "ledger_id", req.Msg.LedgerID)

	if err := s.store.DeleteLedger(ctx, req.Msg.LedgerID); err != nil {
		slog.Error("DeleteLedger failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Ledger deleted", "ledger_id", req.Msg.LedgerID)
	s.publish(ctx, events.LedgerDeleted, api.LedgerView{Ledger: models.Ledger{ID: req.Msg.LedgerID}})

	return connect.NewResponse(&api.DeleteLedgerResponse{}), nil
}

// AddPerson adds a name to a ledger's roster.
func (s *LedgerService) AddPerson(ctx context.Context, req *connect.Request[api.AddPersonRequest]) (*connect.Response[api.AddPersonResponse], error) {
	slog.Info("AddPerson request received", "ledger_id", req.Msg.LedgerID, "name", req.Msg.Name)

	view, err := s.apply(ctx, req.Msg.LedgerID, events.PersonAdded, ledger.AddPerson{Name: req.Msg.Name})
	if err != nil {
		slog.Error("AddPerson failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.AddPersonResponse{LedgerView: view}), nil
}

// RemovePerson takes a name off a ledger's roster and out of every split.
func (s *LedgerService) RemovePerson(ctx context.Context, req *connect.Request[api.RemovePersonRequest]) (*connect.Response[api.RemovePersonResponse], error) {
	slog.Info("RemovePerson request received", "ledger_id", req.Msg.LedgerID, "name", req.Msg.Name)

	view, err := s.apply(ctx, req.Msg.LedgerID, events.PersonRemoved, ledger.RemovePerson{Name: req.Msg.Name})
	if err != nil {
		slog.Error("RemovePerson failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.RemovePersonResponse{LedgerView: view}), nil
}

// AddExpense validates a draft against the current roster and records it.
// A draft that still lacks custom amounts is not an error: the response
// lists who is missing and nothing is stored.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	draft := req.Msg.Expense
	slog.Info("AddExpense request received",
		"ledger_id", req.Msg.LedgerID,
		"description", draft.Description,
		"split_type", draft.SplitType,
	)

	var validation ledger.Validation
	l, err := s.store.UpdateLedger(ctx, req.Msg.LedgerID, func(l models.Ledger) (models.Ledger, error) {
		v, err := draft.Validate(l.People)
		if err != nil {
			return l, fmt.Errorf("%w: %w", errInvalidDraft, err)
		}
		validation = v
		if !v.Complete() {
			return l, errIncomplete
		}
		return ledger.Apply(l, ledger.AddExpense{Expense: v.Expense, At: s.now().UTC()})
	})

	if errors.Is(err, errIncomplete) {
		slog.Info("AddExpense incomplete",
			"ledger_id", req.Msg.LedgerID,
			"missing", validation.Missing,
			"remaining", validation.Remaining.StringFixed(2),
		)
		current, err := s.store.GetLedger(ctx, req.Msg.LedgerID)
		if err != nil {
			return nil, toConnectError(err)
		}
		return connect.NewResponse(&api.AddExpenseResponse{
			LedgerView: newLedgerView(ctx, current),
			Incomplete: &api.IncompleteExpense{
				Missing:   validation.Missing,
				Remaining: validation.Remaining,
			},
		}), nil
	}
	if err != nil {
		slog.Error("AddExpense failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, toConnectError(err)
	}

	expenseID := l.Expenses[len(l.Expenses)-1].ID
	slog.Info("Expense added", "ledger_id", l.ID, "expense_id", expenseID)

	view := newLedgerView(ctx, l)
	s.publish(ctx, events.ExpenseAdded, view)

	return connect.NewResponse(&api.AddExpenseResponse{
		LedgerView: view,
		ExpenseID:  expenseID,
	}), nil
}

// DeleteExpense removes an expense from a ledger.
func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "ledger_id", req.Msg.LedgerID, "expense_id", req.Msg.ExpenseID)

	view, err := s.apply(ctx, req.Msg.LedgerID, events.ExpenseDeleted, ledger.DeleteExpense{ID: req.Msg.ExpenseID})
	if err != nil {
		slog.Error("DeleteExpense failed", "ledger_id", req.Msg.LedgerID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.DeleteExpenseResponse{LedgerView: view}), nil
}

// apply runs a ledger action atomically in the store and announces the result.
func (s *LedgerService) apply(ctx context.Context, ledgerID string, kind events.Action, action ledger.Action) (api.LedgerView, error) {
	l, err := s.store.UpdateLedger(ctx, ledgerID, func(l models.Ledger) (models.Ledger, error) {
		return ledger.Apply(l, action)
	})
	if err != nil {
		return api.LedgerView{}, err
	}

	view := newLedgerView(ctx, l)
	s.publish(ctx, kind, view)
	return view, nil
}

// publish sends a ledger event. Failures are logged and otherwise ignored:
// the mutation has already been stored.
func (s *LedgerService) publish(ctx context.Context, kind events.Action, view api.LedgerView) {
	e := events.NewLedgerUpdated(kind, view.Ledger, view.Summary.Settlements)
	if err := s.publisher.Publish(ctx, e); err != nil {
		slog.Warn("Failed to publish ledger event",
			"ledger_id", e.LedgerID,
			"action", kind,
			"error", err,
		)
	}
}

func newLedgerView(ctx context.Context, l models.Ledger) api.LedgerView {
	result := calculator.ComputeSettlement(l.People, l.Expenses)
	logResult(ctx, l.ID, result)

	if l.People == nil {
		l.People = []string{}
	}
	if l.Expenses == nil {
		l.Expenses = []models.Expense{}
	}
	return api.LedgerView{Ledger: l, Summary: api.NewSummary(result)}
}

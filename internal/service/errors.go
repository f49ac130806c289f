package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// errInvalidDraft marks every error raised while validating an expense draft.
var errInvalidDraft = errors.New("invalid expense")

var invalidArgument = []error{
	errInvalidDraft,
	ledger.ErrEmptyName,
	ledger.ErrEmptyDescription,
	ledger.ErrInvalidAmount,
	ledger.ErrMissingPayer,
	ledger.ErrUnknownPayer,
	ledger.ErrNoParticipants,
	ledger.ErrNegativeShare,
	ledger.ErrCustomSumMismatch,
	models.ErrUnknownSplitType,
}

// codeOf maps a domain error to the Connect code callers see.
func codeOf(err error) connect.Code {
	for _, target := range invalidArgument {
		if errors.Is(err, target) {
			return connect.CodeInvalidArgument
		}
	}
	switch {
	case errors.Is(err, ledger.ErrDuplicatePerson):
		return connect.CodeAlreadyExists
	case errors.Is(err, storage.ErrNotFound),
		errors.Is(err, ledger.ErrUnknownPerson),
		errors.Is(err, ledger.ErrUnknownExpense):
		return connect.CodeNotFound
	case errors.Is(err, context.Canceled):
		return connect.CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return connect.CodeDeadlineExceeded
	default:
		return connect.CodeInternal
	}
}

func toConnectError(err error) *connect.Error {
	return connect.NewError(codeOf(err), err)
}

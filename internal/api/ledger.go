package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const (
	// LedgerServiceName is the fully-qualified name of the LedgerService.
	LedgerServiceName = "splitledger.v1.LedgerService"

	LedgerServiceCreateLedgerProcedure  = "/splitledger.v1.LedgerService/CreateLedger"
	LedgerServiceGetLedgerProcedure     = "/splitledger.v1.LedgerService/GetLedger"
	LedgerServiceListLedgersProcedure   = "/splitledger.v1.LedgerService/ListLedgers"
	LedgerServiceDeleteLedgerProcedure  = "/splitledger.v1.LedgerService/DeleteLedger"
	LedgerServiceAddPersonProcedure     = "/splitledger.v1.LedgerService/AddPerson"
	LedgerServiceRemovePersonProcedure  = "/splitledger.v1.LedgerService/RemovePerson"
	LedgerServiceAddExpenseProcedure    = "/splitledger.v1.LedgerService/AddExpense"
	LedgerServiceDeleteExpenseProcedure = "/splitledger.v1.LedgerService/DeleteExpense"
)

// LedgerServiceHandler is implemented by the ledger service.
type LedgerServiceHandler interface {
	CreateLedger(context.Context, *connect.Request[CreateLedgerRequest]) (*connect.Response[CreateLedgerResponse], error)
	GetLedger(context.Context, *connect.Request[GetLedgerRequest]) (*connect.Response[GetLedgerResponse], error)
	ListLedgers(context.Context, *connect.Request[ListLedgersRequest]) (*connect.Response[ListLedgersResponse], error)
	DeleteLedger(context.Context, *connect.Request[DeleteLedgerRequest]) (*connect.Response[DeleteLedgerResponse], error)
	AddPerson(context.Context, *connect.Request[AddPersonRequest]) (*connect.Response[AddPersonResponse], error)
	RemovePerson(context.Context, *connect.Request[RemovePersonRequest]) (*connect.Response[RemovePersonResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler for the service and returns
// the path prefix to mount it on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withJSONCodec(opts)

	mux := http.NewServeMux()
	mux.Handle(LedgerServiceCreateLedgerProcedure,
		connect.NewUnaryHandler(LedgerServiceCreateLedgerProcedure, svc.CreateLedger, opts...))
	mux.Handle(LedgerServiceGetLedgerProcedure,
		connect.NewUnaryHandler(LedgerServiceGetLedgerProcedure, svc.GetLedger, opts...))
	mux.Handle(LedgerServiceListLedgersProcedure,
		connect.NewUnaryHandler(LedgerServiceListLedgersProcedure, svc.ListLedgers, opts...))
	mux.Handle(LedgerServiceDeleteLedgerProcedure,
		connect.NewUnaryHandler(LedgerServiceDeleteLedgerProcedure, svc.DeleteLedger, opts...))
	mux.Handle(LedgerServiceAddPersonProcedure,
		connect.NewUnaryHandler(LedgerServiceAddPersonProcedure, svc.AddPerson, opts...))
	mux.Handle(LedgerServiceRemovePersonProcedure,
		connect.NewUnaryHandler(LedgerServiceRemovePersonProcedure, svc.RemovePerson, opts...))
	mux.Handle(LedgerServiceAddExpenseProcedure,
		connect.NewUnaryHandler(LedgerServiceAddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(LedgerServiceDeleteExpenseProcedure,
		connect.NewUnaryHandler(LedgerServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...))

	return "/" + LedgerServiceName + "/", mux
}

// LedgerServiceClient calls a remote LedgerService.
type LedgerServiceClient struct {
	createLedger  *connect.Client[CreateLedgerRequest, CreateLedgerResponse]
	getLedger     *connect.Client[GetLedgerRequest, GetLedgerResponse]
	listLedgers   *connect.Client[ListLedgersRequest, ListLedgersResponse]
	deleteLedger  *connect.Client[DeleteLedgerRequest, DeleteLedgerResponse]
	addPerson     *connect.Client[AddPersonRequest, AddPersonResponse]
	removePerson  *connect.Client[RemovePersonRequest, RemovePersonResponse]
	addExpense    *connect.Client[AddExpenseRequest, AddExpenseResponse]
	deleteExpense *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
}

// NewLedgerServiceClient creates a client for the service at baseURL.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append(opts, connect.WithCodec(JSONCodec{}))
	return &LedgerServiceClient{
		createLedger: connect.NewClient[CreateLedgerRequest, CreateLedgerResponse](
			httpClient, baseURL+LedgerServiceCreateLedgerProcedure, opts...),
		getLedger: connect.NewClient[GetLedgerRequest, GetLedgerResponse](
			httpClient, baseURL+LedgerServiceGetLedgerProcedure, opts...),
		listLedgers: connect.NewClient[ListLedgersRequest, ListLedgersResponse](
			httpClient, baseURL+LedgerServiceListLedgersProcedure, opts...),
		deleteLedger: connect.NewClient[DeleteLedgerRequest, DeleteLedgerResponse](
			httpClient, baseURL+LedgerServiceDeleteLedgerProcedure, opts...),
		addPerson: connect.NewClient[AddPersonRequest, AddPersonResponse](
			httpClient, baseURL+LedgerServiceAddPersonProcedure, opts...),
		removePerson: connect.NewClient[RemovePersonRequest, RemovePersonResponse](
			httpClient, baseURL+LedgerServiceRemovePersonProcedure, opts...),
		addExpense: connect.NewClient[AddExpenseRequest, AddExpenseResponse](
			httpClient, baseURL+LedgerServiceAddExpenseProcedure, opts...),
		deleteExpense: connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](
			httpClient, baseURL+LedgerServiceDeleteExpenseProcedure, opts...),
	}
}

func (c *LedgerServiceClient) CreateLedger(ctx context.Context, req *connect.Request[CreateLedgerRequest]) (*connect.Response[CreateLedgerResponse], error) {
	return c.createLedger.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) GetLedger(ctx context.Context, req *connect.Request[GetLedgerRequest]) (*connect.Response[GetLedgerResponse], error) {
	return c.getLedger.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListLedgers(ctx context.Context, req *connect.Request[ListLedgersRequest]) (*connect.Response[ListLedgersResponse], error) {
	return c.listLedgers.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) DeleteLedger(ctx context.Context, req *connect.Request[DeleteLedgerRequest]) (*connect.Response[DeleteLedgerResponse], error) {
	return c.deleteLedger.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) AddPerson(ctx context.Context, req *connect.Request[AddPersonRequest]) (*connect.Response[AddPersonResponse], error) {
	return c.addPerson.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) RemovePerson(ctx context.Context, req *connect.Request[RemovePersonRequest]) (*connect.Response[RemovePersonResponse], error) {
	return c.removePerson.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

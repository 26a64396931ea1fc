package api

import (
	"context"

	"connectrpc.com/connect"
)

// LedgerClient calls the ledger service over Connect.
type LedgerClient struct {
	createGroup      *connect.Client[CreateGroupRequest, CreateGroupResponse]
	getGroup         *connect.Client[GetGroupRequest, GetGroupResponse]
	listGroups       *connect.Client[ListGroupsRequest, ListGroupsResponse]
	deleteGroup      *connect.Client[DeleteGroupRequest, DeleteGroupResponse]
	addMember        *connect.Client[AddMemberRequest, AddMemberResponse]
	listMembers      *connect.Client[ListMembersRequest, ListMembersResponse]
	deleteMember     *connect.Client[DeleteMemberRequest, DeleteMemberResponse]
	addExpense       *connect.Client[AddExpenseRequest, AddExpenseResponse]
	listExpenses     *connect.Client[ListExpensesRequest, ListExpensesResponse]
	deleteExpense    *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	toggleSettlement *connect.Client[ToggleSettlementRequest, ToggleSettlementResponse]
	getBalances      *connect.Client[GetBalancesRequest, GetBalancesResponse]
}

// NewLedgerClient constructs a client for the ledger service served at baseURL,
// e.g. http://localhost:8080.
func NewLedgerClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LedgerClient {
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &LedgerClient{
		createGroup:      connect.NewClient[CreateGroupRequest, CreateGroupResponse](httpClient, baseURL+LedgerServiceCreateGroupProcedure, opts...),
		getGroup:         connect.NewClient[GetGroupRequest, GetGroupResponse](httpClient, baseURL+LedgerServiceGetGroupProcedure, opts...),
		listGroups:       connect.NewClient[ListGroupsRequest, ListGroupsResponse](httpClient, baseURL+LedgerServiceListGroupsProcedure, opts...),
		deleteGroup:      connect.NewClient[DeleteGroupRequest, DeleteGroupResponse](httpClient, baseURL+LedgerServiceDeleteGroupProcedure, opts...),
		addMember:        connect.NewClient[AddMemberRequest, AddMemberResponse](httpClient, baseURL+LedgerServiceAddMemberProcedure, opts...),
		listMembers:      connect.NewClient[ListMembersRequest, ListMembersResponse](httpClient, baseURL+LedgerServiceListMembersProcedure, opts...),
		deleteMember:     connect.NewClient[DeleteMemberRequest, DeleteMemberResponse](httpClient, baseURL+LedgerServiceDeleteMemberProcedure, opts...),
		addExpense:       connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+LedgerServiceAddExpenseProcedure, opts...),
		listExpenses:     connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+LedgerServiceListExpensesProcedure, opts...),
		deleteExpense:    connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+LedgerServiceDeleteExpenseProcedure, opts...),
		toggleSettlement: connect.NewClient[ToggleSettlementRequest, ToggleSettlementResponse](httpClient, baseURL+LedgerServiceToggleSettlementProcedure, opts...),
		getBalances:      connect.NewClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL+LedgerServiceGetBalancesProcedure, opts...),
	}
}

func (c *LedgerClient) CreateGroup(ctx context.Context, req *CreateGroupRequest) (*CreateGroupResponse, error) {
	return call(ctx, c.createGroup, req)
}

func (c *LedgerClient) GetGroup(ctx context.Context, req *GetGroupRequest) (*GetGroupResponse, error) {
	return call(ctx, c.getGroup, req)
}

func (c *LedgerClient) ListGroups(ctx context.Context, req *ListGroupsRequest) (*ListGroupsResponse, error) {
	return call(ctx, c.listGroups, req)
}

func (c *LedgerClient) DeleteGroup(ctx context.Context, req *DeleteGroupRequest) (*DeleteGroupResponse, error) {
	return call(ctx, c.deleteGroup, req)
}

func (c *LedgerClient) AddMember(ctx context.Context, req *AddMemberRequest) (*AddMemberResponse, error) {
	return call(ctx, c.addMember, req)
}

func (c *LedgerClient) ListMembers(ctx context.Context, req *ListMembersRequest) (*ListMembersResponse, error) {
	return call(ctx, c.listMembers, req)
}

func (c *LedgerClient) DeleteMember(ctx context.Context, req *DeleteMemberRequest) (*DeleteMemberResponse, error) {
	return call(ctx, c.deleteMember, req)
}

func (c *LedgerClient) AddExpense(ctx context.Context, req *AddExpenseRequest) (*AddExpenseResponse, error) {
	return call(ctx, c.addExpense, req)
}

func (c *LedgerClient) ListExpenses(ctx context.Context, req *ListExpensesRequest) (*ListExpensesResponse, error) {
	return call(ctx, c.listExpenses, req)
}

func (c *LedgerClient) DeleteExpense(ctx context.Context, req *DeleteExpenseRequest) (*DeleteExpenseResponse, error) {
	return call(ctx, c.deleteExpense, req)
}

func (c *LedgerClient) ToggleSettlement(ctx context.Context, req *ToggleSettlementRequest) (*ToggleSettlementResponse, error) {
	return call(ctx, c.toggleSettlement, req)
}

func (c *LedgerClient) GetBalances(ctx context.Context, req *GetBalancesRequest) (*GetBalancesResponse, error) {
	return call(ctx, c.getBalances, req)
}

func call[Req, Res any](ctx context.Context, client *connect.Client[Req, Res], req *Req) (*Res, error) {
	resp, err := client.CallUnary(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, err
	}
	return resp.Msg, nil
}

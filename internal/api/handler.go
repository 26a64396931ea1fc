// Package api exposes the ledger service over Connect RPC with a JSON codec.
package api

import (
	"context"
	"net/http"

	"connectrpc.com/connect"

	"github.com/mmynk/groupsplit/internal/models"
	"github.com/mmynk/groupsplit/internal/service"
)

// LedgerServiceName is the fully-qualified name of the ledger service.
const LedgerServiceName = "groupsplit.v1.LedgerService"

// Procedure paths of the ledger service's RPCs.
const (
	LedgerServiceCreateGroupProcedure      = "/groupsplit.v1.LedgerService/CreateGroup"
	LedgerServiceGetGroupProcedure         = "/groupsplit.v1.LedgerService/GetGroup"
	LedgerServiceListGroupsProcedure       = "/groupsplit.v1.LedgerService/ListGroups"
	LedgerServiceDeleteGroupProcedure      = "/groupsplit.v1.LedgerService/DeleteGroup"
	LedgerServiceAddMemberProcedure        = "/groupsplit.v1.LedgerService/AddMember"
	LedgerServiceListMembersProcedure      = "/groupsplit.v1.LedgerService/ListMembers"
	LedgerServiceDeleteMemberProcedure     = "/groupsplit.v1.LedgerService/DeleteMember"
	LedgerServiceAddExpenseProcedure       = "/groupsplit.v1.LedgerService/AddExpense"
	LedgerServiceListExpensesProcedure     = "/groupsplit.v1.LedgerService/ListExpenses"
	LedgerServiceDeleteExpenseProcedure    = "/groupsplit.v1.LedgerService/DeleteExpense"
	LedgerServiceToggleSettlementProcedure = "/groupsplit.v1.LedgerService/ToggleSettlement"
	LedgerServiceGetBalancesProcedure      = "/groupsplit.v1.LedgerService/GetBalances"
)

// Ledger is the set of use cases served over RPC. *service.LedgerService implements it.
type Ledger interface {
	CreateGroup(ctx context.Context, name string) (*models.Group, error)
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	ListGroups(ctx context.Context) ([]*models.Group, error)
	DeleteGroup(ctx context.Context, groupID string) error
	AddMember(ctx context.Context, groupID, name string) (*models.Member, error)
	ListMembers(ctx context.Context, groupID string) ([]models.Member, error)
	DeleteMember(ctx context.Context, memberID string) error
	AddExpense(ctx context.Context, in service.ExpenseInput) (*models.Expense, error)
	ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error
	ToggleSettlement(ctx context.Context, expenseID, memberID string) (*models.Expense, error)
	GetBalances(ctx context.Context, groupID string) (*service.GroupBalances, error)
}

type ledgerHandler struct {
	svc Ledger
}

// NewLedgerServiceHandler builds an HTTP handler for every ledger RPC.
// It returns the path prefix to mount the handler on.
func NewLedgerServiceHandler(svc Ledger, opts ...connect.HandlerOption) (string, http.Handler) {
	h := &ledgerHandler{svc: svc}
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(LedgerServiceCreateGroupProcedure, connect.NewUnaryHandler(LedgerServiceCreateGroupProcedure, h.CreateGroup, opts...))
	mux.Handle(LedgerServiceGetGroupProcedure, connect.NewUnaryHandler(LedgerServiceGetGroupProcedure, h.GetGroup, opts...))
	mux.Handle(LedgerServiceListGroupsProcedure, connect.NewUnaryHandler(LedgerServiceListGroupsProcedure, h.ListGroups, opts...))
	mux.Handle(LedgerServiceDeleteGroupProcedure, connect.NewUnaryHandler(LedgerServiceDeleteGroupProcedure, h.DeleteGroup, opts...))
	mux.Handle(LedgerServiceAddMemberProcedure, connect.NewUnaryHandler(LedgerServiceAddMemberProcedure, h.AddMember, opts...))
	mux.Handle(LedgerServiceListMembersProcedure, connect.NewUnaryHandler(LedgerServiceListMembersProcedure, h.ListMembers, opts...))
	mux.Handle(LedgerServiceDeleteMemberProcedure, connect.NewUnaryHandler(LedgerServiceDeleteMemberProcedure, h.DeleteMember, opts...))
	mux.Handle(LedgerServiceAddExpenseProcedure, connect.NewUnaryHandler(LedgerServiceAddExpenseProcedure, h.AddExpense, opts...))
	mux.Handle(LedgerServiceListExpensesProcedure, connect.NewUnaryHandler(LedgerServiceListExpensesProcedure, h.ListExpenses, opts...))
	mux.Handle(LedgerServiceDeleteExpenseProcedure, connect.NewUnaryHandler(LedgerServiceDeleteExpenseProcedure, h.DeleteExpense, opts...))
	mux.Handle(LedgerServiceToggleSettlementProcedure, connect.NewUnaryHandler(LedgerServiceToggleSettlementProcedure, h.ToggleSettlement, opts...))
	mux.Handle(LedgerServiceGetBalancesProcedure, connect.NewUnaryHandler(LedgerServiceGetBalancesProcedure, h.GetBalances, opts...))

	return "/" + LedgerServiceName + "/", mux
}

func (h *ledgerHandler) CreateGroup(ctx context.Context, req *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	group, err := h.svc.CreateGroup(ctx, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&CreateGroupResponse{Group: toGroup(group)}), nil
}

func (h *ledgerHandler) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	if err := required("groupId", req.Msg.GroupID); err != nil {
		return nil, err
	}
	group, err := h.svc.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&GetGroupResponse{Group: toGroup(group)}), nil
}

func (h *ledgerHandler) ListGroups(ctx context.Context, _ *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	groups, err := h.svc.ListGroups(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &ListGroupsResponse{Groups: make([]Group, 0, len(groups))}
	for _, g := range groups {
		resp.Groups = append(resp.Groups, toGroup(g))
	}
	return connect.NewResponse(resp), nil
}

func (h *ledgerHandler) DeleteGroup(ctx context.Context, req *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error) {
	if err := required("groupId", req.Msg.GroupID); err != nil {
		return nil, err
	}
	if err := h.svc.DeleteGroup(ctx, req.Msg.GroupID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&DeleteGroupResponse{}), nil
}

func (h *ledgerHandler) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error) {
	if err := required("groupId", req.Msg.GroupID); err != nil {
		return nil, err
	}
	member, err := h.svc.AddMember(ctx, req.Msg.GroupID, req.Msg.Name)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&AddMemberResponse{Member: toMember(*member)}), nil
}

func (h *ledgerHandler) ListMembers(ctx context.Context, req *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error) {
	if err := required("groupId", req.Msg.GroupID); err != nil {
		return nil, err
	}
	members, err := h.svc.ListMembers(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &ListMembersResponse{Members: make([]Member, 0, len(members))}
	for _, m := range members {
		resp.Members = append(resp.Members, toMember(m))
	}
	return connect.NewResponse(resp), nil
}

func (h *ledgerHandler) DeleteMember(ctx context.Context, req *connect.Request[DeleteMemberRequest]) (*connect.Response[DeleteMemberResponse], error) {
	if err := required("memberId", req.Msg.MemberID); err != nil {
		return nil, err
	}
	if err := h.svc.DeleteMember(ctx, req.Msg.MemberID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&DeleteMemberResponse{}), nil
}

func (h *ledgerHandler) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	if err := required("groupId", req.Msg.GroupID); err != nil {
		return nil, err
	}
	expense, err := h.svc.AddExpense(ctx, service.ExpenseInput{
		GroupID:      req.Msg.GroupID,
		Description:  req.Msg.Description,
		Amount:       req.Msg.Amount,
		PayerID:      req.Msg.PayerID,
		Participants: req.Msg.Participants,
	})
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&AddExpenseResponse{Expense: toExpense(expense)}), nil
}

func (h *ledgerHandler) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	if err := required("groupId", req.Msg.GroupID); err != nil {
		return nil, err
	}
	expenses, err := h.svc.ListExpenses(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError(err)
	}

	resp := &ListExpensesResponse{Expenses: make([]Expense, 0, len(expenses))}
	for i := range expenses {
		resp.Expenses = append(resp.Expenses, toExpense(&expenses[i]))
	}
	return connect.NewResponse(resp), nil
}

func (h *ledgerHandler) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	if err := required("expenseId", req.Msg.ExpenseID); err != nil {
		return nil, err
	}
	if err := h.svc.DeleteExpense(ctx, req.Msg.ExpenseID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&DeleteExpenseResponse{}), nil
}

func (h *ledgerHandler) ToggleSettlement(ctx context.Context, req *connect.Request[ToggleSettlementRequest]) (*connect.Response[ToggleSettlementResponse], error) {
	if err := required("expenseId", req.Msg.ExpenseID); err != nil {
		return nil, err
	}
	if err := required("memberId", req.Msg.MemberID); err != nil {
		return nil, err
	}
	expense, err := h.svc.ToggleSettlement(ctx, req.Msg.ExpenseID, req.Msg.MemberID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ToggleSettlementResponse{Expense: toExpense(expense)}), nil
}

func (h *ledgerHandler) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	if err := required("groupId", req.Msg.GroupID); err != nil {
		return nil, err
	}
	balances, err := h.svc.GetBalances(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(toBalancesResponse(balances)), nil
}

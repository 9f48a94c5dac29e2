package app

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/calehh/worker-app/state"
	abcitypes "github.com/cometbft/cometbft/abci/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
)

func (app *WorkerApp) Query(ctx context.Context, req *abcitypes.RequestQuery) (res *abcitypes.ResponseQuery, err error) {
	path := req.Path
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}
	q, ok := app.queriers[path]
	if !ok {
		res = &abcitypes.ResponseQuery{}
		res.Code = 404
		return
	}
	res, err = q.Query(ctx, req)
	return
}

type Querier interface {
	Query(ctx context.Context, req *abcitypes.RequestQuery) (res *abcitypes.ResponseQuery, err error)
}

type AccountQuerier struct {
	db     *state.StateDB
	logger cmtlog.Logger
}

func NewAccountQuerier(db *state.StateDB, logger cmtlog.Logger) (q *AccountQuerier) {
	q = &AccountQuerier{
		db:     db,
		logger: logger,
	}
	return
}

// Query resolves an account by name (request data is the raw name).
func (q *AccountQuerier) Query(ctx context.Context, req *abcitypes.RequestQuery) (res *abcitypes.ResponseQuery, err error) {
	res = &abcitypes.ResponseQuery{}
	a, height, _ := q.db.GetAccountByName(string(req.Data))
	if a != nil {
		res.Value, _ = json.Marshal(a)
		res.Height = int64(height)
	} else {
		res.Code = 1
	}
	return
}

type DelegateQuerier struct {
	db     *state.StateDB
	logger cmtlog.Logger
}

func NewDelegateQuerier(db *state.StateDB, logger cmtlog.Logger) (q *DelegateQuerier) {
	q = &DelegateQuerier{
		db:     db,
		logger: logger,
	}
	return
}

func (q *DelegateQuerier) Query(ctx context.Context, req *abcitypes.RequestQuery) (res *abcitypes.ResponseQuery, err error) {
	res = &abcitypes.ResponseQuery{}
	delegates, height, err := q.db.Delegates()
	if err != nil {
		res.Code = 1
		return res, nil
	}
	res.Height = int64(height)
	res.Value, _ = json.Marshal(delegates)
	return
}

type PoolQuerier struct {
	db     *state.StateDB
	logger cmtlog.Logger
}

func NewPoolQuerier(db *state.StateDB, logger cmtlog.Logger) (q *PoolQuerier) {
	q = &PoolQuerier{
		db:     db,
		logger: logger,
	}
	return
}

func (q *PoolQuerier) Query(ctx context.Context, req *abcitypes.RequestQuery) (res *abcitypes.ResponseQuery, err error) {
	res = &abcitypes.ResponseQuery{}
	pool, height, err := q.db.GetPool(string(req.Data))
	if err != nil {
		res.Code = 1
		res.Log = err.Error()
		return res, nil
	}
	res.Height = int64(height)
	res.Value, _ = json.Marshal(pool)
	return
}

type FundQueryRequest struct {
	Pool  string `json:"pool"`
	Owner string `json:"owner"`
}

type FundQuerier struct {
	db     *state.StateDB
	logger cmtlog.Logger
}

func NewFundQuerier(db *state.StateDB, logger cmtlog.Logger) (q *FundQuerier) {
	q = &FundQuerier{
		db:     db,
		logger: logger,
	}
	return
}

func (q *FundQuerier) Query(ctx context.Context, req *abcitypes.RequestQuery) (res *abcitypes.ResponseQuery, err error) {
	res = &abcitypes.ResponseQuery{}
	var qr FundQueryRequest
	if err1 := json.Unmarshal(req.Data, &qr); err1 != nil {
		res.Code = 1
		res.Log = err1.Error()
		return res, nil
	}
	fund, height, err := q.db.GetFund(qr.Pool, qr.Owner)
	if err != nil {
		res.Code = 1
		res.Log = err.Error()
		return res, nil
	}
	res.Height = int64(height)
	res.Value, _ = json.Marshal(fund)
	return
}

type ProposalQueryRequest struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
}

type ProposalQuerier struct {
	db     *state.StateDB
	logger cmtlog.Logger
}

func NewProposalQuerier(db *state.StateDB, logger cmtlog.Logger) (q *ProposalQuerier) {
	q = &ProposalQuerier{
		db:     db,
		logger: logger,
	}
	return
}

func (q *ProposalQuerier) Query(ctx context.Context, req *abcitypes.RequestQuery) (res *abcitypes.ResponseQuery, err error) {
	res = &abcitypes.ResponseQuery{}
	var qr ProposalQueryRequest
	if err1 := json.Unmarshal(req.Data, &qr); err1 != nil {
		res.Code = 1
		res.Log = err1.Error()
		return res, nil
	}
	proposal, height, err := q.db.GetProposal(qr.Pool, qr.Proposal)
	if err != nil {
		res.Code = 1
		res.Log = err.Error()
		return res, nil
	}
	res.Height = int64(height)
	res.Value, _ = json.Marshal(proposal)
	return
}

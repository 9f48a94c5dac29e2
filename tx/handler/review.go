package handler

import (
	"context"

	"github.com/calehh/worker-app/state"
	"github.com/calehh/worker-app/tx"
	"github.com/calehh/worker-app/types"
	abcitypes "github.com/cometbft/cometbft/abci/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
)

type PostStatusTxHandler struct {
	logger cmtlog.Logger
}

func NewPostStatusTxHandler(logger cmtlog.Logger) (h *PostStatusTxHandler) {
	logger = logger.With("module", "postStatusTx")
	h = &PostStatusTxHandler{
		logger: logger,
	}
	return
}

func (h *PostStatusTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.PostStatusTx)
	_, err1 := st.PostStatus(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx post status fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *PostStatusTxHandler) NewContext(ctx context.Context) {}

func (h *PostStatusTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.PostStatusTx)
	result, err := st.PostStatus(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if result == nil {
		return
	}
	if result.Status != nil {
		appendEvent(res, types.EncodeEventStatus(result.Status))
	}
	if result.Proposal != nil {
		appendEvent(res, types.EncodeEventProposal(result.Proposal))
	}
	return
}

func (h *PostStatusTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *PostStatusTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func authorReviewEvents(res *abcitypes.ExecTxResult, result *state.AuthorReviewResult) {
	if result == nil {
		return
	}
	if result.Comment != nil {
		appendEvent(res, types.EncodeEventComment(result.Comment))
	}
	if result.Proposal != nil {
		appendEvent(res, types.EncodeEventProposal(result.Proposal))
	}
}

type AcceptWorkTxHandler struct {
	logger cmtlog.Logger
}

func NewAcceptWorkTxHandler(logger cmtlog.Logger) (h *AcceptWorkTxHandler) {
	logger = logger.With("module", "acceptWorkTx")
	h = &AcceptWorkTxHandler{
		logger: logger,
	}
	return
}

func (h *AcceptWorkTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.AcceptWorkTx)
	_, err1 := st.AcceptWork(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx accept work fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *AcceptWorkTxHandler) NewContext(ctx context.Context) {}

func (h *AcceptWorkTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.AcceptWorkTx)
	result, err := st.AcceptWork(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	authorReviewEvents(res, result)
	return
}

func (h *AcceptWorkTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *AcceptWorkTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type RejectWorkTxHandler struct {
	logger cmtlog.Logger
}

func NewRejectWorkTxHandler(logger cmtlog.Logger) (h *RejectWorkTxHandler) {
	logger = logger.With("module", "rejectWorkTx")
	h = &RejectWorkTxHandler{
		logger: logger,
	}
	return
}

func (h *RejectWorkTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.RejectWorkTx)
	_, err1 := st.RejectWork(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx reject work fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *RejectWorkTxHandler) NewContext(ctx context.Context) {}

func (h *RejectWorkTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.RejectWorkTx)
	result, err := st.RejectWork(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	authorReviewEvents(res, result)
	return
}

func (h *RejectWorkTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *RejectWorkTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type CancelWorkTxHandler struct {
	logger cmtlog.Logger
}

func NewCancelWorkTxHandler(logger cmtlog.Logger) (h *CancelWorkTxHandler) {
	logger = logger.With("module", "cancelWorkTx")
	h = &CancelWorkTxHandler{
		logger: logger,
	}
	return
}

func (h *CancelWorkTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.CancelWorkTx)
	_, err1 := st.CancelWork(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx cancel work fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *CancelWorkTxHandler) NewContext(ctx context.Context) {}

func (h *CancelWorkTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.CancelWorkTx)
	result, err := st.CancelWork(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if result == nil {
		return
	}
	if result.Proposal != nil {
		appendEvent(res, types.EncodeEventProposal(result.Proposal))
	}
	if result.Fund != nil {
		appendEvent(res, types.EncodeEventFund(result.Fund))
	}
	return
}

func (h *CancelWorkTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *CancelWorkTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type ReviewWorkTxHandler struct {
	logger cmtlog.Logger
}

func NewReviewWorkTxHandler(logger cmtlog.Logger) (h *ReviewWorkTxHandler) {
	logger = logger.With("module", "reviewWorkTx")
	h = &ReviewWorkTxHandler{
		logger: logger,
	}
	return
}

func (h *ReviewWorkTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.ReviewWorkTx)
	_, err1 := st.ReviewWork(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx review work fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *ReviewWorkTxHandler) NewContext(ctx context.Context) {}

func (h *ReviewWorkTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.ReviewWorkTx)
	result, err := st.ReviewWork(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if result == nil {
		return
	}
	if result.Vote != nil {
		appendEvent(res, types.EncodeEventVote(result.Vote))
	}
	if result.Proposal != nil {
		appendEvent(res, types.EncodeEventProposal(result.Proposal))
	}
	if result.Fund != nil {
		appendEvent(res, types.EncodeEventFund(result.Fund))
	}
	return
}

func (h *ReviewWorkTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *ReviewWorkTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

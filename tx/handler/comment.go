package handler

import (
	"context"

	"github.com/calehh/worker-app/state"
	"github.com/calehh/worker-app/tx"
	"github.com/calehh/worker-app/types"
	abcitypes "github.com/cometbft/cometbft/abci/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
)

type AddCommentTxHandler struct {
	logger cmtlog.Logger
}

func NewAddCommentTxHandler(logger cmtlog.Logger) (h *AddCommentTxHandler) {
	logger = logger.With("module", "addCommentTx")
	h = &AddCommentTxHandler{
		logger: logger,
	}
	return
}

func (h *AddCommentTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.AddCommentTx)
	_, err1 := st.AddComment(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx add comment fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *AddCommentTxHandler) NewContext(ctx context.Context) {}

func (h *AddCommentTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.AddCommentTx)
	event, err := st.AddComment(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventComment(event))
	}
	return
}

func (h *AddCommentTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *AddCommentTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type EditCommentTxHandler struct {
	logger cmtlog.Logger
}

func NewEditCommentTxHandler(logger cmtlog.Logger) (h *EditCommentTxHandler) {
	logger = logger.With("module", "editCommentTx")
	h = &EditCommentTxHandler{
		logger: logger,
	}
	return
}

func (h *EditCommentTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.EditCommentTx)
	_, err1 := st.EditComment(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx edit comment fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *EditCommentTxHandler) NewContext(ctx context.Context) {}

func (h *EditCommentTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.EditCommentTx)
	event, err := st.EditComment(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventComment(event))
	}
	return
}

func (h *EditCommentTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *EditCommentTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type DelCommentTxHandler struct {
	logger cmtlog.Logger
}

func NewDelCommentTxHandler(logger cmtlog.Logger) (h *DelCommentTxHandler) {
	logger = logger.With("module", "delCommentTx")
	h = &DelCommentTxHandler{
		logger: logger,
	}
	return
}

func (h *DelCommentTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.DelCommentTx)
	_, err1 := st.DelComment(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx del comment fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *DelCommentTxHandler) NewContext(ctx context.Context) {}

func (h *DelCommentTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.DelCommentTx)
	event, err := st.DelComment(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventComment(event))
	}
	return
}

func (h *DelCommentTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *DelCommentTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

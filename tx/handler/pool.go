package handler

import (
	"context"

	"github.com/calehh/worker-app/state"
	"github.com/calehh/worker-app/tx"
	"github.com/calehh/worker-app/types"
	abcitypes "github.com/cometbft/cometbft/abci/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
)

type CreatePoolTxHandler struct {
	logger cmtlog.Logger
}

func NewCreatePoolTxHandler(logger cmtlog.Logger) (h *CreatePoolTxHandler) {
	logger = logger.With("module", "createPoolTx")
	h = &CreatePoolTxHandler{
		logger: logger,
	}
	return
}

func (h *CreatePoolTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.CreatePoolTx)
	_, err1 := st.CreatePool(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx create pool fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *CreatePoolTxHandler) NewContext(ctx context.Context) {}

func (h *CreatePoolTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.CreatePoolTx)
	event, err := st.CreatePool(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventPool(event))
	}
	return
}

func (h *CreatePoolTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *CreatePoolTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type DepositTxHandler struct {
	logger cmtlog.Logger
}

func NewDepositTxHandler(logger cmtlog.Logger) (h *DepositTxHandler) {
	logger = logger.With("module", "depositTx")
	h = &DepositTxHandler{
		logger: logger,
	}
	return
}

func (h *DepositTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.DepositTx)
	_, err1 := st.Deposit(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx deposit fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *DepositTxHandler) NewContext(ctx context.Context) {}

func (h *DepositTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.DepositTx)
	event, err := st.Deposit(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventFund(event))
	}
	return
}

func (h *DepositTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *DepositTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type SetFundTxHandler struct {
	logger cmtlog.Logger
}

func NewSetFundTxHandler(logger cmtlog.Logger) (h *SetFundTxHandler) {
	logger = logger.With("module", "setFundTx")
	h = &SetFundTxHandler{
		logger: logger,
	}
	return
}

func (h *SetFundTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.SetFundTx)
	_, err1 := st.SetFund(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx set fund fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *SetFundTxHandler) NewContext(ctx context.Context) {}

func (h *SetFundTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.SetFundTx)
	event, err := st.SetFund(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventTspec(event))
	}
	return
}

func (h *SetFundTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *SetFundTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

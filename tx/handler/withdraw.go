package handler

import (
	"context"
	"encoding/json"

	"github.com/calehh/worker-app/state"
	"github.com/calehh/worker-app/tx"
	"github.com/calehh/worker-app/types"
	abcitypes "github.com/cometbft/cometbft/abci/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
)

type WithdrawTxHandler struct {
	logger cmtlog.Logger
}

func NewWithdrawTxHandler(logger cmtlog.Logger) (h *WithdrawTxHandler) {
	logger = logger.With("module", "withdrawTx")
	h = &WithdrawTxHandler{
		logger: logger,
	}
	return
}

func (h *WithdrawTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.WithdrawTx)
	_, err1 := st.Withdraw(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx withdraw fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *WithdrawTxHandler) NewContext(ctx context.Context) {}

func (h *WithdrawTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.WithdrawTx)
	result, err := st.Withdraw(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if result == nil {
		return
	}
	if result.Withdraw != nil {
		appendEvent(res, types.EncodeEventWithdraw(result.Withdraw))
	}
	if result.Proposal != nil {
		appendEvent(res, types.EncodeEventProposal(result.Proposal))
	}
	// the post-installment proposal rides in the tx result so callers
	// can decide about the next withdraw without a query round-trip
	if result.Snapshot != nil {
		res.Data, err = json.Marshal(result.Snapshot)
		if err != nil {
			return nil, err
		}
	}
	return
}

func (h *WithdrawTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *WithdrawTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

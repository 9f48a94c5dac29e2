package handler

import (
	"context"

	"github.com/calehh/worker-app/state"
	"github.com/calehh/worker-app/tx"
	"github.com/calehh/worker-app/types"
	abcitypes "github.com/cometbft/cometbft/abci/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
)

type AddProposalTxHandler struct {
	logger cmtlog.Logger
}

func NewAddProposalTxHandler(logger cmtlog.Logger) (h *AddProposalTxHandler) {
	logger = logger.With("module", "addProposalTx")
	h = &AddProposalTxHandler{
		logger: logger,
	}
	return
}

func (h *AddProposalTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.AddProposalTx)
	_, err1 := st.AddProposal(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx add proposal fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *AddProposalTxHandler) NewContext(ctx context.Context) {}

func (h *AddProposalTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.AddProposalTx)
	event, err := st.AddProposal(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventProposal(event))
	}
	return
}

func (h *AddProposalTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *AddProposalTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type EditProposalTxHandler struct {
	logger cmtlog.Logger
}

func NewEditProposalTxHandler(logger cmtlog.Logger) (h *EditProposalTxHandler) {
	logger = logger.With("module", "editProposalTx")
	h = &EditProposalTxHandler{
		logger: logger,
	}
	return
}

func (h *EditProposalTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.EditProposalTx)
	_, err1 := st.EditProposal(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx edit proposal fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *EditProposalTxHandler) NewContext(ctx context.Context) {}

func (h *EditProposalTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.EditProposalTx)
	event, err := st.EditProposal(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventProposal(event))
	}
	return
}

func (h *EditProposalTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *EditProposalTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type DelProposalTxHandler struct {
	logger cmtlog.Logger
}

func NewDelProposalTxHandler(logger cmtlog.Logger) (h *DelProposalTxHandler) {
	logger = logger.With("module", "delProposalTx")
	h = &DelProposalTxHandler{
		logger: logger,
	}
	return
}

func (h *DelProposalTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.DelProposalTx)
	_, err1 := st.DelProposal(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx del proposal fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *DelProposalTxHandler) NewContext(ctx context.Context) {}

func (h *DelProposalTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.DelProposalTx)
	event, err := st.DelProposal(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventProposal(event))
	}
	return
}

func (h *DelProposalTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *DelProposalTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type VoteProposalTxHandler struct {
	logger cmtlog.Logger
}

func NewVoteProposalTxHandler(logger cmtlog.Logger) (h *VoteProposalTxHandler) {
	logger = logger.With("module", "voteProposalTx")
	h = &VoteProposalTxHandler{
		logger: logger,
	}
	return
}

func (h *VoteProposalTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.VoteProposalTx)
	_, err1 := st.VoteProposal(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx vote proposal fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *VoteProposalTxHandler) NewContext(ctx context.Context) {}

func (h *VoteProposalTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.VoteProposalTx)
	event, err := st.VoteProposal(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventVote(event))
	}
	return
}

func (h *VoteProposalTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *VoteProposalTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

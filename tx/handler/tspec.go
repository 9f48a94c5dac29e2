package handler

import (
	"context"

	"github.com/calehh/worker-app/state"
	"github.com/calehh/worker-app/tx"
	"github.com/calehh/worker-app/types"
	abcitypes "github.com/cometbft/cometbft/abci/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
)

type AddTspecTxHandler struct {
	logger cmtlog.Logger
}

func NewAddTspecTxHandler(logger cmtlog.Logger) (h *AddTspecTxHandler) {
	logger = logger.With("module", "addTspecTx")
	h = &AddTspecTxHandler{
		logger: logger,
	}
	return
}

func (h *AddTspecTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.AddTspecTx)
	_, err1 := st.AddTspec(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx add tspec fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *AddTspecTxHandler) NewContext(ctx context.Context) {}

func (h *AddTspecTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.AddTspecTx)
	event, err := st.AddTspec(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventTspec(event))
	}
	return
}

func (h *AddTspecTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *AddTspecTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type EditTspecTxHandler struct {
	logger cmtlog.Logger
}

func NewEditTspecTxHandler(logger cmtlog.Logger) (h *EditTspecTxHandler) {
	logger = logger.With("module", "editTspecTx")
	h = &EditTspecTxHandler{
		logger: logger,
	}
	return
}

func (h *EditTspecTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.EditTspecTx)
	_, err1 := st.EditTspec(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx edit tspec fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *EditTspecTxHandler) NewContext(ctx context.Context) {}

func (h *EditTspecTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.EditTspecTx)
	event, err := st.EditTspec(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventTspec(event))
	}
	return
}

func (h *EditTspecTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *EditTspecTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type DelTspecTxHandler struct {
	logger cmtlog.Logger
}

func NewDelTspecTxHandler(logger cmtlog.Logger) (h *DelTspecTxHandler) {
	logger = logger.With("module", "delTspecTx")
	h = &DelTspecTxHandler{
		logger: logger,
	}
	return
}

func (h *DelTspecTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.DelTspecTx)
	_, err1 := st.DelTspec(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx del tspec fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *DelTspecTxHandler) NewContext(ctx context.Context) {}

func (h *DelTspecTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.DelTspecTx)
	event, err := st.DelTspec(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventTspec(event))
	}
	return
}

func (h *DelTspecTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *DelTspecTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type VoteTspecTxHandler struct {
	logger cmtlog.Logger
}

func NewVoteTspecTxHandler(logger cmtlog.Logger) (h *VoteTspecTxHandler) {
	logger = logger.With("module", "voteTspecTx")
	h = &VoteTspecTxHandler{
		logger: logger,
	}
	return
}

func (h *VoteTspecTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.VoteTspecTx)
	_, err1 := st.VoteTspec(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx vote tspec fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *VoteTspecTxHandler) NewContext(ctx context.Context) {}

func (h *VoteTspecTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.VoteTspecTx)
	result, err := st.VoteTspec(stx, btx.Signer, false)
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
	if result.Chosen != nil {
		appendEvent(res, types.EncodeEventTspec(result.Chosen))
	}
	if result.Fund != nil {
		appendEvent(res, types.EncodeEventFund(result.Fund))
	}
	if result.Proposal != nil {
		appendEvent(res, types.EncodeEventProposal(result.Proposal))
	}
	return
}

func (h *VoteTspecTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *VoteTspecTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type PublishTspecTxHandler struct {
	logger cmtlog.Logger
}

func NewPublishTspecTxHandler(logger cmtlog.Logger) (h *PublishTspecTxHandler) {
	logger = logger.With("module", "publishTspecTx")
	h = &PublishTspecTxHandler{
		logger: logger,
	}
	return
}

func (h *PublishTspecTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.PublishTspecTx)
	_, err1 := st.PublishTspec(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx publish tspec fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *PublishTspecTxHandler) NewContext(ctx context.Context) {}

func (h *PublishTspecTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.PublishTspecTx)
	event, err := st.PublishTspec(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventTspec(event))
	}
	return
}

func (h *PublishTspecTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *PublishTspecTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

type StartWorkTxHandler struct {
	logger cmtlog.Logger
}

func NewStartWorkTxHandler(logger cmtlog.Logger) (h *StartWorkTxHandler) {
	logger = logger.With("module", "startWorkTx")
	h = &StartWorkTxHandler{
		logger: logger,
	}
	return
}

func (h *StartWorkTxHandler) Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error) {
	res = &abcitypes.ResponseCheckTx{Code: 0}
	stx := btx.Tx.(*tx.StartWorkTx)
	_, err1 := st.StartWork(stx, btx.Signer, true)
	if err1 != nil {
		h.logger.Info("CheckTx start work fail", "err", err1)
		res.Code = 1
		res.Log = err1.Error()
	}
	return
}

func (h *StartWorkTxHandler) NewContext(ctx context.Context) {}

func (h *StartWorkTxHandler) handle(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	stx := btx.Tx.(*tx.StartWorkTx)
	event, err := st.StartWork(stx, btx.Signer, false)
	if err != nil {
		return nil, err
	}
	res = &abcitypes.ExecTxResult{}
	if event != nil {
		appendEvent(res, types.EncodeEventProposal(event))
	}
	return
}

func (h *StartWorkTxHandler) Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

func (h *StartWorkTxHandler) Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error) {
	return h.handle(ctx, st, btx)
}

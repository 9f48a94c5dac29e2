package handler

import (
	"context"

	"github.com/calehh/worker-app/state"
	"github.com/calehh/worker-app/tx"
	abcitypes "github.com/cometbft/cometbft/abci/types"
)

type TxHandler interface {
	Check(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ResponseCheckTx, err error)
	NewContext(ctx context.Context)
	Prepare(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error)
	Process(ctx context.Context, st *state.State, btx *tx.WorkerTx) (res *abcitypes.ExecTxResult, err error)
}

func appendEvent(res *abcitypes.ExecTxResult, event abcitypes.Event) {
	res.Events = append(res.Events, event)
}

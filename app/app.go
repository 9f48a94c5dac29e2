package app

import (
	"context"

	"github.com/calehh/worker-app/config"
	"github.com/calehh/worker-app/state"
	"github.com/calehh/worker-app/tx"
	"github.com/calehh/worker-app/tx/handler"
	"github.com/calehh/worker-app/types"
	abcitypes "github.com/cometbft/cometbft/abci/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
	"github.com/cometbft/cometbft/store"
	"github.com/ethereum/go-ethereum/common"
)

type finalizeBlock struct {
	Height uint64
	Hash   common.Hash
}

func (b *finalizeBlock) Set(blk *abcitypes.RequestFinalizeBlock) {
	b.Height = uint64(blk.Height)
	b.Hash = common.BytesToHash(blk.Hash)
}

var _ abcitypes.Application = &WorkerApp{}

type WorkerApp struct {
	cfg    *config.WorkerAppConfig
	logger cmtlog.Logger

	db       *state.StateDB
	lastBlk  finalizeBlock
	txHdlrs  map[tx.WorkerTxType]handler.TxHandler
	queriers map[string]Querier

	st *state.State
}

func NewWorkerApp(cfg *config.WorkerAppConfig, logger cmtlog.Logger) (app *WorkerApp, err error) {
	logger = logger.With("module", "app")

	dir := cfg.Home + "/data"
	db, err := state.NewStateDB(dir, logger)
	if err != nil {
		return nil, err
	}

	app = &WorkerApp{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		txHdlrs:  make(map[tx.WorkerTxType]handler.TxHandler),
		queriers: make(map[string]Querier),
	}
	app.registerTxHandler()
	app.registerQuerier()
	return
}

func (app *WorkerApp) Start(bs *store.BlockStore) {
	height := app.db.Header().Height
	if height > 0 {
		blk := bs.LoadBlock(int64(height))
		if blk == nil {
			panic("unexpected BlockStore")
		}
		app.lastBlk.Height = height
		app.lastBlk.Hash = common.BytesToHash(blk.Hash())
	}
}

func (app *WorkerApp) Stop() {
	err := app.db.Close()
	if err != nil {
		app.logger.Error("close db fail", "err", err)
	}
	app.logger.Info("worker app stopped")
}

func (app *WorkerApp) StateDB() *state.StateDB {
	return app.db
}

func (app *WorkerApp) registerTxHandler() {
	app.txHdlrs = map[tx.WorkerTxType]handler.TxHandler{
		tx.WorkerTxTypeCreatePool:   handler.NewCreatePoolTxHandler(app.logger),
		tx.WorkerTxTypeDeposit:      handler.NewDepositTxHandler(app.logger),
		tx.WorkerTxTypeAddProposal:  handler.NewAddProposalTxHandler(app.logger),
		tx.WorkerTxTypeEditProposal: handler.NewEditProposalTxHandler(app.logger),
		tx.WorkerTxTypeDelProposal:  handler.NewDelProposalTxHandler(app.logger),
		tx.WorkerTxTypeSetFund:      handler.NewSetFundTxHandler(app.logger),
		tx.WorkerTxTypeVoteProposal: handler.NewVoteProposalTxHandler(app.logger),
		tx.WorkerTxTypeAddComment:   handler.NewAddCommentTxHandler(app.logger),
		tx.WorkerTxTypeEditComment:  handler.NewEditCommentTxHandler(app.logger),
		tx.WorkerTxTypeDelComment:   handler.NewDelCommentTxHandler(app.logger),
		tx.WorkerTxTypeAddTspec:     handler.NewAddTspecTxHandler(app.logger),
		tx.WorkerTxTypeEditTspec:    handler.NewEditTspecTxHandler(app.logger),
		tx.WorkerTxTypeDelTspec:     handler.NewDelTspecTxHandler(app.logger),
		tx.WorkerTxTypeVoteTspec:    handler.NewVoteTspecTxHandler(app.logger),
		tx.WorkerTxTypePublishTspec: handler.NewPublishTspecTxHandler(app.logger),
		tx.WorkerTxTypeStartWork:    handler.NewStartWorkTxHandler(app.logger),
		tx.WorkerTxTypeCancelWork:   handler.NewCancelWorkTxHandler(app.logger),
		tx.WorkerTxTypePostStatus:   handler.NewPostStatusTxHandler(app.logger),
		tx.WorkerTxTypeAcceptWork:   handler.NewAcceptWorkTxHandler(app.logger),
		tx.WorkerTxTypeRejectWork:   handler.NewRejectWorkTxHandler(app.logger),
		tx.WorkerTxTypeReviewWork:   handler.NewReviewWorkTxHandler(app.logger),
		tx.WorkerTxTypeWithdraw:     handler.NewWithdrawTxHandler(app.logger),
	}
}

func (app *WorkerApp) registerQuerier() {
	app.queriers["/accounts/"] = NewAccountQuerier(app.db, app.logger)
	app.queriers["/delegates/"] = NewDelegateQuerier(app.db, app.logger)
	app.queriers["/pools/"] = NewPoolQuerier(app.db, app.logger)
	app.queriers["/funds/"] = NewFundQuerier(app.db, app.logger)
	app.queriers["/proposals/"] = NewProposalQuerier(app.db, app.logger)
}

func (app *WorkerApp) InitChain(_ context.Context, chain *abcitypes.RequestInitChain) (res *abcitypes.ResponseInitChain, err error) {
	st := app.db.NewState()
	st.SetChainId(chain.ChainId)
	appState, err := types.ParseAppState(chain.AppStateBytes)
	if err != nil {
		app.logger.Error("InitChain parse app state fail", "err", err)
		return nil, err
	}
	for _, m := range appState.Members {
		var acnt state.Account
		acnt.Name = m.Name
		acnt.Delegate = m.Delegate
		acnt.SetPubKey(m.PubKey.Bytes())
		err = st.AddAccount(&acnt)
		if err != nil {
			app.logger.Error("InitChain add account fail", "name", m.Name, "err", err)
			return nil, err
		}
	}
	var h common.Hash
	_, err = st.Update()
	if err != nil {
		app.logger.Error("InitChain update state fail", "err", err)
		return nil, err
	}
	h, err = app.db.SetState(st)
	if err != nil {
		app.logger.Error("InitChain apply state fail", "err", err)
		return nil, err
	}
	return &abcitypes.ResponseInitChain{
		AppHash: h.Bytes(),
	}, nil
}

func (app *WorkerApp) Info(ctx context.Context, info *abcitypes.RequestInfo) (*abcitypes.ResponseInfo, error) {
	header := app.db.Header()
	return &abcitypes.ResponseInfo{
		LastBlockHeight:  int64(header.Height),
		LastBlockAppHash: header.Hash,
	}, nil
}

func (app *WorkerApp) ExtendVote(_ context.Context, extend *abcitypes.RequestExtendVote) (*abcitypes.ResponseExtendVote, error) {
	return &abcitypes.ResponseExtendVote{}, nil
}

func (app *WorkerApp) VerifyVoteExtension(_ context.Context, verify *abcitypes.RequestVerifyVoteExtension) (*abcitypes.ResponseVerifyVoteExtension, error) {
	return &abcitypes.ResponseVerifyVoteExtension{}, nil
}

func (app *WorkerApp) ApplySnapshotChunk(context.Context, *abcitypes.RequestApplySnapshotChunk) (*abcitypes.ResponseApplySnapshotChunk, error) {
	return nil, nil
}

func (app *WorkerApp) ListSnapshots(context.Context, *abcitypes.RequestListSnapshots) (*abcitypes.ResponseListSnapshots, error) {
	return nil, nil
}

func (app *WorkerApp) LoadSnapshotChunk(context.Context, *abcitypes.RequestLoadSnapshotChunk) (*abcitypes.ResponseLoadSnapshotChunk, error) {
	return nil, nil
}

func (app *WorkerApp) OfferSnapshot(context.Context, *abcitypes.RequestOfferSnapshot) (*abcitypes.ResponseOfferSnapshot, error) {
	return nil, nil
}

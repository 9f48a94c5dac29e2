package state

import (
	"sync"

	worker_types "github.com/calehh/worker-app/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
	"github.com/cosmos/iavl"
	dbm "github.com/cosmos/iavl/db"
	"github.com/ethereum/go-ethereum/common"
)

type StateDB struct {
	mtx sync.RWMutex

	dir    string
	logger cmtlog.Logger
	db     *iavl.MutableTree

	state *State
}

func NewStateDB(dir string, logger cmtlog.Logger) (db *StateDB, err error) {
	logger = logger.With("module", "workerdb")
	ldb, err := dbm.NewDB("worker", "goleveldb", dir)
	if err != nil {
		return nil, err
	}
	tdb := iavl.NewMutableTree(ldb, 128, true, Cometbft2CosmosLogger(logger))
	version, err := tdb.Load()
	if err != nil {
		return nil, err
	}
	logger.Info("load db success", "version", version)
	st := newState(tdb, logger)
	err = st.load()
	if err != nil {
		logger.Error("from workerdb load fail", "err", err)
		return nil, err
	}
	db = &StateDB{
		dir:    dir,
		logger: logger,
		db:     tdb,
		state:  st,
	}
	return
}

func (db *StateDB) Close() (err error) {
	err = db.db.Close()
	return
}

func (db *StateDB) Header() (header *StateHeader) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	header = db.state.Header()
	return
}

func (db *StateDB) State() *State {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	return db.state
}

func (db *StateDB) NewState() (st *State) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	st = db.state.nextState()
	return
}

func (db *StateDB) SetState(st *State) (hash common.Hash, err error) {
	db.mtx.Lock()
	defer db.mtx.Unlock()
	hash, err = st.save()
	if err != nil {
		return
	}
	db.state = st
	return
}

func (db *StateDB) GetAccountByIndex(idx uint64) (acnt *Account, height uint64, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	acnt, err = db.state.GetAccount(idx)
	if err != nil {
		return
	}
	if acnt != nil {
		acnt = acnt.Clone()
	}
	height = db.state.header.Height

	return
}

func (db *StateDB) GetAccountByName(name string) (acnt *Account, height uint64, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	acnt, err = db.state.FindAccount(name)
	if err != nil {
		return
	}
	if acnt != nil {
		acnt = acnt.Clone()
	}
	height = db.state.header.Height

	return
}

func (db *StateDB) GetPool(name string) (pool *worker_types.Pool, height uint64, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	pool, err = db.state.getPool(name)
	if err != nil {
		return
	}
	pool = clonePool(pool)
	height = db.state.header.Height
	return
}

func (db *StateDB) GetFund(pool, owner string) (fund *worker_types.Fund, height uint64, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	fund, err = db.state.getFund(pool, owner)
	if err != nil {
		return
	}
	if fund == nil {
		err = ErrFundNoexists
		return
	}
	fund = cloneFund(fund)
	height = db.state.header.Height
	return
}

func (db *StateDB) GetProposal(pool string, idx uint64) (proposal *worker_types.Proposal, height uint64, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	proposal, err = db.state.getProposal(pool, idx)
	if err != nil {
		return
	}
	proposal = cloneProposal(proposal)
	height = db.state.header.Height
	return
}

// Delegates lists the registered voting roster.
func (db *StateDB) Delegates() (acnts []*Account, height uint64, err error) {
	db.mtx.RLock()
	defer db.mtx.RUnlock()
	for idx := uint64(StartAccountIdx); idx < db.state.header.AccountIdx; idx++ {
		acnt, err1 := db.state.GetAccount(idx)
		if err1 != nil {
			if err1 == ErrNotFound {
				continue
			}
			return nil, 0, err1
		}
		if acnt.Delegate {
			acnts = append(acnts, acnt.Clone())
		}
	}
	height = db.state.header.Height
	return
}

package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/calehh/worker-app/tx"
	worker_types "github.com/calehh/worker-app/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
	"github.com/cosmos/iavl"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/syndtr/goleveldb/leveldb"
)

const (
	StartAccountIdx = 65536

	ModifiedFlagNew = 1 << 0
	ModifiedFlagMod = 1 << 1
)

var (
	ErrNotFound = errors.New("not found")
)

var (
	KeyState            = "s"
	KeyAccountIndex     = "i%s"
	KeyAccountBody      = "a%v"
	KeyPoolBody         = "pool/%s"
	KeyFundBody         = "f%s/%s"
	KeyProposalBody     = "p%s/%v"
	KeyProposalMaxIndex = "pi%s"
)

var (
	ErrTxSignerNoexists     = errors.New("signer noexists")
	ErrTxNotDelegate        = errors.New("signer not a delegate")
	ErrTxNonceInvalid       = errors.New("nonce invalid")
	ErrTxSigInvalid         = errors.New("signature invalid")
	ErrTxUnauthorized       = errors.New("unauthorized")
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrAccountNoexists      = errors.New("account noexists")
	ErrPoolAlreadyExists    = errors.New("pool already exists")
	ErrPoolNoexists         = errors.New("pool noexists")
	ErrFundNoexists         = errors.New("fund noexists")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrProposalNoexists     = errors.New("proposal noexists")
	ErrTspecNoexists        = errors.New("tspec noexists")
	ErrCommentNoexists      = errors.New("comment noexists")
	ErrInvalidState         = errors.New("action not allowed in current proposal state")
	ErrCommentRequired      = errors.New("comment required")
)

// StateHeader carries the per-height engine bookkeeping persisted under
// KeyState. Delegates is the registered voting roster size every
// majority tally divides.
type StateHeader struct {
	ChainId    string `json:"chain_id"`
	Height     uint64 `json:"height"`
	AccountIdx uint64 `json:"account_idx"`
	Delegates  uint64 `json:"delegates"`
	RootHash   []byte `json:"root_hash"`
	Hash       []byte `json:"hash"`
}

func (h *StateHeader) Clone() *StateHeader {
	n := *h
	n.RootHash = append([]byte(nil), h.RootHash...)
	n.Hash = append([]byte(nil), h.Hash...)
	return &n
}

// State applies one block worth of actions against the versioned tree.
// Mutations accumulate in the cache maps and reach the tree only in
// Update, keyed deterministically, so a failed action never leaves a
// partial write behind.
type State struct {
	logger cmtlog.Logger
	db     *iavl.MutableTree
	dbVer  int64

	header *StateHeader
	idxs   map[string]uint64
	acnts  map[uint64]*Account

	modifiedAcnts map[uint64]uint32

	pools        map[string]*worker_types.Pool
	funds        map[string]*worker_types.Fund
	proposals    map[string]*worker_types.Proposal
	proposalMax  map[string]uint64
	modPools     map[string]bool
	modFunds     map[string]bool
	modProposals map[string]bool
	modMaxIdx    map[string]bool
	delProposals map[string]bool
}

func newState(db *iavl.MutableTree, logger cmtlog.Logger) *State {
	s := &State{
		logger:        logger,
		db:            db,
		dbVer:         0,
		header:        new(StateHeader),
		idxs:          make(map[string]uint64),
		acnts:         make(map[uint64]*Account),
		modifiedAcnts: make(map[uint64]uint32),
		pools:         make(map[string]*worker_types.Pool),
		funds:         make(map[string]*worker_types.Fund),
		proposals:     make(map[string]*worker_types.Proposal),
		proposalMax:   make(map[string]uint64),
		modPools:      make(map[string]bool),
		modFunds:      make(map[string]bool),
		modProposals:  make(map[string]bool),
		modMaxIdx:     make(map[string]bool),
		delProposals:  make(map[string]bool),
	}
	s.header.AccountIdx = StartAccountIdx
	return s
}

func (s *State) nextState() *State {
	n := newState(s.db, s.logger)
	n.dbVer = s.dbVer
	n.header = s.header.Clone()
	if s.header.Hash != nil {
		n.header.Height = s.header.Height + 1
	}
	return n
}

func clonePool(p *worker_types.Pool) *worker_types.Pool {
	n := *p
	return &n
}

func cloneFund(f *worker_types.Fund) *worker_types.Fund {
	n := *f
	return &n
}

func cloneProposal(p *worker_types.Proposal) *worker_types.Proposal {
	dat, _ := json.Marshal(p)
	n := new(worker_types.Proposal)
	_ = json.Unmarshal(dat, n)
	return n
}

func deepCopyMap[K comparable, V any](source map[K]V) map[K]V {
	res := make(map[K]V)
	for k, v := range source {
		switch x := any(v).(type) {
		case *Account:
			res[k] = any(x.Clone()).(V)
		case *worker_types.Pool:
			res[k] = any(clonePool(x)).(V)
		case *worker_types.Fund:
			res[k] = any(cloneFund(x)).(V)
		case *worker_types.Proposal:
			res[k] = any(cloneProposal(x)).(V)
		default:
			res[k] = v
		}
	}
	return res
}

func (s *State) Clone() *State {
	n := &State{
		logger:        s.logger,
		db:            s.db,
		dbVer:         s.dbVer,
		header:        s.header.Clone(),
		idxs:          deepCopyMap(s.idxs),
		acnts:         deepCopyMap(s.acnts),
		modifiedAcnts: deepCopyMap(s.modifiedAcnts),
		pools:         deepCopyMap(s.pools),
		funds:         deepCopyMap(s.funds),
		proposals:     deepCopyMap(s.proposals),
		proposalMax:   deepCopyMap(s.proposalMax),
		modPools:      deepCopyMap(s.modPools),
		modFunds:      deepCopyMap(s.modFunds),
		modProposals:  deepCopyMap(s.modProposals),
		modMaxIdx:     deepCopyMap(s.modMaxIdx),
		delProposals:  deepCopyMap(s.delProposals),
	}
	return n
}

func (s *State) load() (err error) {
	val, err := s.db.Get([]byte(KeyState))
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil
		}
		return err
	}
	if val != nil {
		err = json.Unmarshal(val, s.header)
		if err != nil {
			return
		}
		h := s.db.Hash()
		if h != nil {
			s.calcHash(h, true)
		}
	}
	return
}

func (s *State) calcHash(rootHash []byte, update bool) (h common.Hash) {
	h = crypto.Keccak256Hash(rootHash)
	if update {
		if s.header.RootHash == nil {
			s.header.RootHash = make([]byte, len(rootHash))
		}
		copy(s.header.RootHash, rootHash)
		if s.header.Hash == nil {
			s.header.Hash = make([]byte, len(h))
		}
		copy(s.header.Hash, h[:])
	}
	return
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Update flushes every modified record into the working tree in key
// order and returns the resulting app hash. The tree is rolled back
// whole on any write failure.
func (s *State) Update() (h common.Hash, err error) {
	var hash []byte
	defer func() {
		if hash == nil {
			s.db.Rollback()
		}
	}()
	var val []byte
	val, err = json.Marshal(s.header)
	if err != nil {
		return
	}
	_, err = s.db.Set([]byte(KeyState), val)
	if err != nil {
		return
	}

	for _, name := range sortedKeys(s.modPools) {
		key := fmt.Sprintf(KeyPoolBody, name)
		val, err = json.Marshal(s.pools[name])
		if err != nil {
			return
		}
		_, err = s.db.Set([]byte(key), val)
		if err != nil {
			return
		}
	}

	for _, key := range sortedKeys(s.modFunds) {
		val, err = json.Marshal(s.funds[key])
		if err != nil {
			return
		}
		_, err = s.db.Set([]byte(key), val)
		if err != nil {
			return
		}
	}

	for _, name := range sortedKeys(s.modMaxIdx) {
		key := fmt.Sprintf(KeyProposalMaxIndex, name)
		val, err = rlp.EncodeToBytes(s.proposalMax[name])
		if err != nil {
			return
		}
		_, err = s.db.Set([]byte(key), val)
		if err != nil {
			return
		}
	}

	for _, key := range sortedKeys(s.modProposals) {
		val, err = json.Marshal(s.proposals[key])
		if err != nil {
			return
		}
		_, err = s.db.Set([]byte(key), val)
		if err != nil {
			return
		}
	}

	for _, key := range sortedKeys(s.delProposals) {
		_, _, err = s.db.Remove([]byte(key))
		if err != nil {
			return
		}
	}

	n := len(s.modifiedAcnts)
	if n > 0 {
		idxs := make([]uint64, n)
		i := 0
		for idx := range s.modifiedAcnts {
			idxs[i] = idx
			i += 1
		}
		sort.Slice(idxs, func(i, j int) bool {
			return idxs[i] < idxs[j]
		})
		for _, idx := range idxs {
			flag := s.modifiedAcnts[idx]
			acnt := s.acnts[idx]
			key := fmt.Sprintf(KeyAccountBody, acnt.Index)
			val, err = json.Marshal(acnt)
			if err != nil {
				return
			}
			_, err = s.db.Set([]byte(key), val)
			if err != nil {
				return
			}
			if flag&ModifiedFlagNew == ModifiedFlagNew {
				key = fmt.Sprintf(KeyAccountIndex, acnt.Name)
				val, err = rlp.EncodeToBytes(acnt.Index)
				if err != nil {
					return
				}
				_, err = s.db.Set([]byte(key), val)
				if err != nil {
					return
				}
			}
		}
	}
	hash = s.db.WorkingHash()
	h = s.calcHash(hash, false)
	s.modifiedAcnts = make(map[uint64]uint32)
	s.modPools = make(map[string]bool)
	s.modFunds = make(map[string]bool)
	s.modProposals = make(map[string]bool)
	s.modMaxIdx = make(map[string]bool)
	s.delProposals = make(map[string]bool)
	return
}

func (s *State) save() (h common.Hash, err error) {
	hash, ver, err := s.db.SaveVersion()
	if err != nil {
		return h, err
	}

	s.dbVer = ver
	h = s.calcHash(hash, true)

	return
}

func fundKey(pool, owner string) string {
	return fmt.Sprintf(KeyFundBody, pool, owner)
}

func proposalKey(pool string, index uint64) string {
	return fmt.Sprintf(KeyProposalBody, pool, index)
}

func (s *State) getPool(name string) (pool *worker_types.Pool, err error) {
	if p, ok := s.pools[name]; ok {
		return p, nil
	}
	key := fmt.Sprintf(KeyPoolBody, name)
	val, err := s.db.Get([]byte(key))
	if err != nil {
		if err != leveldb.ErrNotFound {
			return nil, err
		}
	}
	if val == nil {
		return nil, ErrPoolNoexists
	}
	pool = new(worker_types.Pool)
	err = json.Unmarshal(val, pool)
	if err != nil {
		return nil, err
	}
	s.pools[name] = pool
	return
}

func (s *State) setPool(pool *worker_types.Pool) {
	s.pools[pool.Name] = pool
	s.modPools[pool.Name] = true
}

// getFund returns nil without error when no fund record exists yet; a
// missing fund and a zero fund behave the same.
func (s *State) getFund(pool, owner string) (fund *worker_types.Fund, err error) {
	key := fundKey(pool, owner)
	if f, ok := s.funds[key]; ok {
		return f, nil
	}
	val, err := s.db.Get([]byte(key))
	if err != nil {
		if err != leveldb.ErrNotFound {
			return nil, err
		}
	}
	if val == nil {
		return nil, nil
	}
	fund = new(worker_types.Fund)
	err = json.Unmarshal(val, fund)
	if err != nil {
		return nil, err
	}
	s.funds[key] = fund
	return
}

func (s *State) setFund(fund *worker_types.Fund) {
	key := fundKey(fund.Pool, fund.Owner)
	s.funds[key] = fund
	s.modFunds[key] = true
}

func (s *State) creditFund(pool, owner string, amount uint64) (fund *worker_types.Fund, err error) {
	fund, err = s.getFund(pool, owner)
	if err != nil {
		return nil, err
	}
	if fund == nil {
		fund = &worker_types.Fund{Pool: pool, Owner: owner}
	}
	fund.Quantity += amount
	s.setFund(fund)
	return
}

func (s *State) debitFund(pool, owner string, amount uint64) (fund *worker_types.Fund, err error) {
	fund, err = s.getFund(pool, owner)
	if err != nil {
		return nil, err
	}
	if fund == nil || fund.Quantity < amount {
		return nil, ErrInsufficientFunds
	}
	fund.Quantity -= amount
	s.setFund(fund)
	return
}

func (s *State) getProposalMax(pool string) (idx uint64, err error) {
	if v, ok := s.proposalMax[pool]; ok {
		return v, nil
	}
	key := fmt.Sprintf(KeyProposalMaxIndex, pool)
	val, err := s.db.Get([]byte(key))
	if err != nil {
		if err != leveldb.ErrNotFound {
			return 0, err
		}
	}
	if val != nil {
		err = rlp.DecodeBytes(val, &idx)
		if err != nil {
			return 0, err
		}
	}
	s.proposalMax[pool] = idx
	return idx, nil
}

func (s *State) setProposalMax(pool string, idx uint64) {
	s.proposalMax[pool] = idx
	s.modMaxIdx[pool] = true
}

func (s *State) getProposal(pool string, idx uint64) (proposal *worker_types.Proposal, err error) {
	key := proposalKey(pool, idx)
	if s.delProposals[key] {
		return nil, ErrProposalNoexists
	}
	if p, ok := s.proposals[key]; ok {
		return p, nil
	}
	val, err := s.db.Get([]byte(key))
	if err != nil {
		if err != leveldb.ErrNotFound {
			return nil, err
		}
	}
	if val == nil {
		return nil, ErrProposalNoexists
	}
	proposal = new(worker_types.Proposal)
	err = json.Unmarshal(val, proposal)
	if err != nil {
		return nil, err
	}
	s.proposals[key] = proposal
	return
}

func (s *State) setProposal(proposal *worker_types.Proposal) {
	key := proposalKey(proposal.Pool, proposal.Index)
	proposal.Modified = s.header.Height
	s.proposals[key] = proposal
	s.modProposals[key] = true
}

func (s *State) removeProposal(proposal *worker_types.Proposal) {
	key := proposalKey(proposal.Pool, proposal.Index)
	delete(s.proposals, key)
	delete(s.modProposals, key)
	s.delProposals[key] = true
}

func (s *State) GetAccount(idx uint64) (acnt *Account, err error) {
	if idx >= s.header.AccountIdx {
		err = ErrAccountNoexists
		return
	}
	acnt = s.acnts[idx]
	if acnt != nil {
		return
	}
	key := fmt.Sprintf(KeyAccountBody, idx)
	val, err := s.db.Get([]byte(key))
	if err != nil {
		return nil, err
	}
	if val == nil {
		err = ErrNotFound
		return
	}
	acnt = new(Account)
	err = json.Unmarshal(val, acnt)
	if err != nil {
		acnt = nil
		return
	}
	s.acnts[idx] = acnt
	return
}

func (s *State) FindAccount(name string) (acnt *Account, err error) {
	idx, ok := s.idxs[name]
	if !ok {
		key := fmt.Sprintf(KeyAccountIndex, name)
		val, err := s.db.Get([]byte(key))
		if err != nil {
			if err == leveldb.ErrNotFound {
				return nil, nil
			}
			return nil, err
		}
		if val == nil {
			return nil, nil
		}
		err = rlp.DecodeBytes(val, &idx)
		if err != nil {
			return nil, err
		}
		s.idxs[name] = idx
	}
	acnt, err = s.GetAccount(idx)

	return
}

func (s *State) existName(name string) (bool, error) {
	if _, ok := s.idxs[name]; ok {
		return true, nil
	}
	key := fmt.Sprintf(KeyAccountIndex, name)
	val, err := s.db.Get([]byte(key))
	if err != nil {
		if err != leveldb.ErrNotFound {
			return false, err
		}
	}
	if val != nil {
		return true, nil
	}
	for _, acc := range s.acnts {
		if acc.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (s *State) Header() *StateHeader {
	return s.header
}

func (s *State) Hash() (h common.Hash) {
	if s.header.Hash != nil {
		copy(h[:], s.header.Hash)
	}
	return
}

func (s *State) SetChainId(chainId string) {
	s.header.ChainId = chainId
}

// Delegates is the registered roster size majority tallies divide.
func (s *State) Delegates() uint64 {
	return s.header.Delegates
}

func (s *State) AddAccount(acnt *Account) (err error) {
	exist, err := s.existName(acnt.Name)
	if err != nil {
		return err
	}
	if exist {
		err = ErrAccountAlreadyExists
		return
	}
	acnt.Index = s.header.AccountIdx
	s.header.AccountIdx += 1
	if acnt.Delegate {
		s.header.Delegates += 1
	}
	s.idxs[acnt.Name] = acnt.Index
	s.acnts[acnt.Index] = acnt.Clone()
	s.modifiedAcnts[acnt.Index] = ModifiedFlagNew
	return
}

// touch bumps the signer's nonce and marks the account dirty. Call once
// per applied action.
func (s *State) touch(a *Account) {
	a.Nonce += 1
	v := s.modifiedAcnts[a.Index]
	v |= ModifiedFlagMod
	s.modifiedAcnts[a.Index] = v
	s.acnts[a.Index] = a.Clone()
}

// signer resolves the tx signer by name, optionally requiring delegate
// standing.
func (s *State) signer(name string, delegate bool) (acnt *Account, err error) {
	acnt, err = s.FindAccount(name)
	if err != nil {
		return nil, err
	}
	if acnt == nil {
		return nil, ErrTxSignerNoexists
	}
	if delegate && !acnt.Delegate {
		return nil, ErrTxNotDelegate
	}
	return
}

func (s *State) Verify(btx *tx.WorkerTx, allowNonceGap bool) (succ bool, err error) {
	a, err := s.FindAccount(btx.Signer)
	if err != nil {
		return succ, err
	}
	if a == nil {
		err = ErrTxSignerNoexists
		return
	}
	if !(a.Nonce == btx.Nonce || (allowNonceGap && a.Nonce < btx.Nonce)) {
		err = ErrTxNonceInvalid
		return
	}
	dat, err := btx.SigData([]byte(s.header.ChainId))
	if err != nil {
		return succ, err
	}
	succ = a.Verify(dat, btx.Sig)
	if !succ {
		err = ErrTxSigInvalid
	}
	return
}

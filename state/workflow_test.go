package state

import (
	"fmt"
	"testing"

	"github.com/calehh/worker-app/tx"
	worker_types "github.com/calehh/worker-app/types"
	"github.com/cometbft/cometbft/crypto/ed25519"
	cmtlog "github.com/cometbft/cometbft/libs/log"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	db, err := NewStateDB(t.TempDir(), cmtlog.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	st := db.NewState()
	st.SetChainId("test-chain")
	return st
}

func addMember(t *testing.T, st *State, name string, delegate bool) {
	t.Helper()
	acnt := &Account{Name: name, Delegate: delegate}
	acnt.SetPubKey(ed25519.GenPrivKey().PubKey().Bytes())
	require.NoError(t, st.AddAccount(acnt))
}

// fixture drives a pool with a 1500 deposit, one proposal and one
// competing tspec (100 spec + 200 dev over 2 installments) through the
// workflow stages.
type fixture struct {
	st        *State
	delegates []string
}

const (
	fxPool   = "app.sample"
	fxAuthor = "user.a"
	fxTspec  = "user.t"
	fxWorker = "user.w"
)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	st := newTestState(t)
	addMember(t, st, fxPool, false)
	addMember(t, st, fxAuthor, false)
	addMember(t, st, fxTspec, false)
	addMember(t, st, fxWorker, false)
	delegates := make([]string, 0, 21)
	for i := 1; i <= 21; i++ {
		name := fmt.Sprintf("delegate.%02d", i)
		addMember(t, st, name, true)
		delegates = append(delegates, name)
	}
	require.Equal(t, uint64(21), st.Delegates())

	_, err := st.CreatePool(&tx.CreatePoolTx{Name: fxPool, TokenSymbol: "APP"}, fxPool, false)
	require.NoError(t, err)
	_, err = st.Deposit(&tx.DepositTx{Pool: fxPool, Amount: 1500}, fxPool, false)
	require.NoError(t, err)
	_, err = st.AddProposal(&tx.AddProposalTx{Pool: fxPool, Title: "sample work", Data: []byte("do the thing")}, fxAuthor, false)
	require.NoError(t, err)
	_, err = st.AddTspec(&tx.AddTspecTx{
		Pool:     fxPool,
		Proposal: 1,
		Data:     []byte("tspec draft"),
		Terms:    tx.TspecTerms{SpecCost: 100, SpecEta: 3600, DevCost: 200, DevEta: 7200, PaymentsCount: 2},
	}, fxTspec, false)
	require.NoError(t, err)

	return &fixture{st: st, delegates: delegates}
}

func (f *fixture) proposal(t *testing.T) *worker_types.Proposal {
	t.Helper()
	p, err := f.st.getProposal(fxPool, 1)
	require.NoError(t, err)
	return p
}

func (f *fixture) fund(t *testing.T, owner string) uint64 {
	t.Helper()
	fund, err := f.st.getFund(fxPool, owner)
	require.NoError(t, err)
	if fund == nil {
		return 0
	}
	return fund.Quantity
}

// selectTspec has 11 of the 21 delegates approve tspec 1, crossing the
// majority on the last vote.
func (f *fixture) selectTspec(t *testing.T) *VoteTspecResult {
	t.Helper()
	var last *VoteTspecResult
	for i := 0; i < 11; i++ {
		res, err := f.st.VoteTspec(&tx.VoteTspecTx{Pool: fxPool, Proposal: 1, Tspec: 1, Positive: true}, f.delegates[i], false)
		require.NoError(t, err)
		if i < 10 {
			require.Nil(t, res.Chosen, "vote %d must not select", i+1)
		}
		last = res
	}
	return last
}

func (f *fixture) toWork(t *testing.T) {
	t.Helper()
	f.selectTspec(t)
	_, err := f.st.PublishTspec(&tx.PublishTspecTx{Pool: fxPool, Proposal: 1, Data: []byte("final tspec")}, fxTspec, false)
	require.NoError(t, err)
	_, err = f.st.StartWork(&tx.StartWorkTx{Pool: fxPool, Proposal: 1, Worker: fxWorker}, fxTspec, false)
	require.NoError(t, err)
}

func (f *fixture) toAuthorReview(t *testing.T) {
	t.Helper()
	f.toWork(t)
	_, err := f.st.PostStatus(&tx.PostStatusTx{Pool: fxPool, Proposal: 1, Kind: uint64(worker_types.StatusKindFinal), Data: []byte("done")}, fxWorker, false)
	require.NoError(t, err)
}

func (f *fixture) toDelegatesReview(t *testing.T) {
	t.Helper()
	f.toAuthorReview(t)
	_, err := f.st.AcceptWork(&tx.AcceptWorkTx{Pool: fxPool, Proposal: 1}, fxTspec, false)
	require.NoError(t, err)
}

func (f *fixture) toPayment(t *testing.T) {
	t.Helper()
	f.toDelegatesReview(t)
	for i := 0; i < 11; i++ {
		_, err := f.st.ReviewWork(&tx.ReviewWorkTx{Pool: fxPool, Proposal: 1, Positive: true, Comment: []byte("looks good")}, f.delegates[i], false)
		require.NoError(t, err)
	}
}

func TestFullWorkflow(t *testing.T) {
	f := newFixture(t)

	p := f.proposal(t)
	require.Equal(t, worker_types.ProposalStateTspecApp, p.State)
	require.Equal(t, uint64(1500), f.fund(t, fxPool))

	res := f.selectTspec(t)
	require.NotNil(t, res.Chosen)
	require.NotNil(t, res.Fund)
	require.NotNil(t, res.Proposal)
	require.Equal(t, uint64(1200), res.Fund.Quantity)

	p = f.proposal(t)
	require.Equal(t, worker_types.ProposalStateTspecCreate, p.State)
	require.True(t, p.TspecChosen)
	require.Equal(t, uint64(1), p.ChosenTspec)
	require.Equal(t, fxPool, p.FundOwner)
	require.Equal(t, uint64(300), p.Deposit)
	require.Equal(t, uint64(1200), f.fund(t, fxPool))

	_, err := f.st.PublishTspec(&tx.PublishTspecTx{Pool: fxPool, Proposal: 1, Data: []byte("final tspec")}, fxTspec, false)
	require.NoError(t, err)
	_, err = f.st.StartWork(&tx.StartWorkTx{Pool: fxPool, Proposal: 1, Worker: fxWorker}, fxTspec, false)
	require.NoError(t, err)

	p = f.proposal(t)
	require.Equal(t, worker_types.ProposalStateWork, p.State)
	require.Equal(t, fxWorker, p.Worker)

	sres, err := f.st.PostStatus(&tx.PostStatusTx{Pool: fxPool, Proposal: 1, Kind: uint64(worker_types.StatusKindProgress), Data: []byte("halfway")}, fxWorker, false)
	require.NoError(t, err)
	require.Nil(t, sres.Proposal)
	require.Equal(t, worker_types.ProposalStateWork, f.proposal(t).State)

	sres, err = f.st.PostStatus(&tx.PostStatusTx{Pool: fxPool, Proposal: 1, Kind: uint64(worker_types.StatusKindFinal), Data: []byte("done")}, fxWorker, false)
	require.NoError(t, err)
	require.NotNil(t, sres.Proposal)
	require.Equal(t, worker_types.ProposalStateTspecAuthorReview, f.proposal(t).State)

	_, err = f.st.AcceptWork(&tx.AcceptWorkTx{Pool: fxPool, Proposal: 1}, fxTspec, false)
	require.NoError(t, err)
	require.Equal(t, worker_types.ProposalStateDelegatesReview, f.proposal(t).State)

	for i := 0; i < 11; i++ {
		rres, err := f.st.ReviewWork(&tx.ReviewWorkTx{Pool: fxPool, Proposal: 1, Positive: true, Comment: []byte("approved")}, f.delegates[i], false)
		require.NoError(t, err)
		if i < 10 {
			require.Nil(t, rres.Proposal)
		} else {
			require.NotNil(t, rres.Proposal)
		}
	}
	require.Equal(t, worker_types.ProposalStatePayment, f.proposal(t).State)

	wres, err := f.st.Withdraw(&tx.WithdrawTx{Pool: fxPool, Proposal: 1}, fxWorker, false)
	require.NoError(t, err)
	require.Equal(t, uint64(150), wres.Withdraw.Amount)
	require.Equal(t, uint64(1), wres.Withdraw.PaymentsDone)
	require.Nil(t, wres.Proposal)
	require.Equal(t, worker_types.ProposalStatePayment, f.proposal(t).State)

	wres, err = f.st.Withdraw(&tx.WithdrawTx{Pool: fxPool, Proposal: 1}, fxWorker, false)
	require.NoError(t, err)
	require.Equal(t, uint64(150), wres.Withdraw.Amount)
	require.Equal(t, uint64(2), wres.Withdraw.PaymentsDone)
	require.NotNil(t, wres.Proposal)
	require.NotNil(t, wres.Snapshot)
	require.Equal(t, worker_types.ProposalStateClosed, wres.Snapshot.State)

	p = f.proposal(t)
	require.Equal(t, worker_types.ProposalStateClosed, p.State)
	require.False(t, p.Rejected)
	require.Equal(t, uint64(0), p.Deposit)
	require.Equal(t, uint64(2), p.WorkerPaymentsCount)
	require.Equal(t, uint64(1200), f.fund(t, fxPool))

	_, err = f.st.Withdraw(&tx.WithdrawTx{Pool: fxPool, Proposal: 1}, fxWorker, false)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestVoteTspecRequiresDelegate(t *testing.T) {
	f := newFixture(t)
	_, err := f.st.VoteTspec(&tx.VoteTspecTx{Pool: fxPool, Proposal: 1, Tspec: 1, Positive: true}, fxAuthor, false)
	require.ErrorIs(t, err, ErrTxNotDelegate)
}

func TestVoteTspecOverwrite(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		_, err := f.st.VoteTspec(&tx.VoteTspecTx{Pool: fxPool, Proposal: 1, Tspec: 1, Positive: true}, f.delegates[0], false)
		require.NoError(t, err)
	}
	p := f.proposal(t)
	require.Len(t, p.Tspec(1).Approvals, 1)
	require.Equal(t, uint64(1), worker_types.CountPositive(p.Tspec(1).Approvals))

	_, err := f.st.VoteTspec(&tx.VoteTspecTx{Pool: fxPool, Proposal: 1, Tspec: 1, Positive: false}, f.delegates[0], false)
	require.NoError(t, err)
	p = f.proposal(t)
	require.Len(t, p.Tspec(1).Approvals, 1)
	require.Equal(t, uint64(0), worker_types.CountPositive(p.Tspec(1).Approvals))
}

func TestVoteTspecInsufficientFund(t *testing.T) {
	st := newTestState(t)
	addMember(t, st, fxPool, false)
	addMember(t, st, fxAuthor, false)
	addMember(t, st, fxTspec, false)
	addMember(t, st, "delegate.01", true)

	_, err := st.CreatePool(&tx.CreatePoolTx{Name: fxPool, TokenSymbol: "APP"}, fxPool, false)
	require.NoError(t, err)
	_, err = st.Deposit(&tx.DepositTx{Pool: fxPool, Amount: 100}, fxPool, false)
	require.NoError(t, err)
	_, err = st.AddProposal(&tx.AddProposalTx{Pool: fxPool, Title: "t"}, fxAuthor, false)
	require.NoError(t, err)
	_, err = st.AddTspec(&tx.AddTspecTx{
		Pool:     fxPool,
		Proposal: 1,
		Terms:    tx.TspecTerms{SpecCost: 100, DevCost: 200, PaymentsCount: 2},
	}, fxTspec, false)
	require.NoError(t, err)

	// single-delegate roster, so this vote would select
	_, err = st.VoteTspec(&tx.VoteTspecTx{Pool: fxPool, Proposal: 1, Tspec: 1, Positive: true}, "delegate.01", false)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	// nothing was debited and no selection happened
	p, err := st.getProposal(fxPool, 1)
	require.NoError(t, err)
	require.False(t, p.TspecChosen)
	require.Equal(t, worker_types.ProposalStateTspecApp, p.State)
	fund, err := st.getFund(fxPool, fxPool)
	require.NoError(t, err)
	require.Equal(t, uint64(100), fund.Quantity)
}

func TestLateVoteAfterSelectionIsNoop(t *testing.T) {
	f := newFixture(t)
	f.selectTspec(t)
	res, err := f.st.VoteTspec(&tx.VoteTspecTx{Pool: fxPool, Proposal: 1, Tspec: 1, Positive: false}, f.delegates[11], false)
	require.NoError(t, err)
	require.Nil(t, res.Vote)
	require.Nil(t, res.Chosen)
	p := f.proposal(t)
	require.Equal(t, worker_types.ProposalStateTspecCreate, p.State)
	require.Len(t, p.Tspec(1).Approvals, 11)
}

func TestEditProposalGuards(t *testing.T) {
	f := newFixture(t)

	_, err := f.st.EditProposal(&tx.EditProposalTx{Pool: fxPool, Proposal: 1, Title: "new"}, fxTspec, false)
	require.ErrorIs(t, err, ErrTxUnauthorized)

	_, err = f.st.EditProposal(&tx.EditProposalTx{Pool: fxPool, Proposal: 1, Title: "new", Data: []byte("body")}, fxAuthor, false)
	require.NoError(t, err)
	require.Equal(t, "new", f.proposal(t).Title)

	f.selectTspec(t)
	_, err = f.st.EditProposal(&tx.EditProposalTx{Pool: fxPool, Proposal: 1, Title: "late"}, fxAuthor, false)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestDelProposalOnlyBeforeSelection(t *testing.T) {
	f := newFixture(t)
	f.selectTspec(t)
	_, err := f.st.DelProposal(&tx.DelProposalTx{Pool: fxPool, Proposal: 1}, fxAuthor, false)
	require.ErrorIs(t, err, ErrInvalidState)

	_, err = f.st.AddProposal(&tx.AddProposalTx{Pool: fxPool, Title: "second"}, fxAuthor, false)
	require.NoError(t, err)
	_, err = f.st.DelProposal(&tx.DelProposalTx{Pool: fxPool, Proposal: 2}, fxAuthor, false)
	require.NoError(t, err)
	_, err = f.st.getProposal(fxPool, 2)
	require.ErrorIs(t, err, ErrProposalNoexists)
}

func TestDelTspec(t *testing.T) {
	f := newFixture(t)

	_, err := f.st.DelTspec(&tx.DelTspecTx{Pool: fxPool, Proposal: 1, Tspec: 1}, fxAuthor, false)
	require.ErrorIs(t, err, ErrTxUnauthorized)

	_, err = f.st.DelTspec(&tx.DelTspecTx{Pool: fxPool, Proposal: 1, Tspec: 2}, fxTspec, false)
	require.ErrorIs(t, err, ErrTspecNoexists)

	ev, err := f.st.DelTspec(&tx.DelTspecTx{Pool: fxPool, Proposal: 1, Tspec: 1}, fxTspec, false)
	require.NoError(t, err)
	require.True(t, ev.Deleted)
	require.Equal(t, fxTspec, ev.Author)

	p := f.proposal(t)
	require.Nil(t, p.Tspec(1))
	require.Empty(t, p.Tspecs)

	// indexes are not reused after a deletion
	_, err = f.st.AddTspec(&tx.AddTspecTx{
		Pool:     fxPool,
		Proposal: 1,
		Terms:    tx.TspecTerms{SpecCost: 1, DevCost: 1, PaymentsCount: 1},
	}, fxTspec, false)
	require.NoError(t, err)
	require.NotNil(t, f.proposal(t).Tspec(2))
}

func TestDelTspecAfterSelection(t *testing.T) {
	f := newFixture(t)
	f.selectTspec(t)
	_, err := f.st.DelTspec(&tx.DelTspecTx{Pool: fxPool, Proposal: 1, Tspec: 1}, fxTspec, false)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestEditTspecTermsFrozenAfterSelection(t *testing.T) {
	f := newFixture(t)
	f.selectTspec(t)

	// text-only change passes
	_, err := f.st.EditTspec(&tx.EditTspecTx{
		Pool:     fxPool,
		Proposal: 1,
		Tspec:    1,
		Data:     []byte("refined text"),
		Terms:    tx.TspecTerms{SpecCost: 100, SpecEta: 3600, DevCost: 200, DevEta: 7200, PaymentsCount: 2},
	}, fxTspec, false)
	require.NoError(t, err)

	// cost change is rejected
	_, err = f.st.EditTspec(&tx.EditTspecTx{
		Pool:     fxPool,
		Proposal: 1,
		Tspec:    1,
		Data:     []byte("greedy"),
		Terms:    tx.TspecTerms{SpecCost: 500, SpecEta: 3600, DevCost: 200, DevEta: 7200, PaymentsCount: 2},
	}, fxTspec, false)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestRejectWorkRequiresComment(t *testing.T) {
	f := newFixture(t)
	f.toAuthorReview(t)

	_, err := f.st.RejectWork(&tx.RejectWorkTx{Pool: fxPool, Proposal: 1}, fxTspec, false)
	require.ErrorIs(t, err, ErrCommentRequired)

	res, err := f.st.RejectWork(&tx.RejectWorkTx{Pool: fxPool, Proposal: 1, Comment: []byte("needs rework")}, fxTspec, false)
	require.NoError(t, err)
	require.NotNil(t, res.Comment)
	require.Equal(t, worker_types.ProposalStateWork, f.proposal(t).State)
}

func TestReviewWorkRejectionRefunds(t *testing.T) {
	f := newFixture(t)
	f.toDelegatesReview(t)
	require.Equal(t, uint64(1200), f.fund(t, fxPool))

	for i := 0; i < 11; i++ {
		res, err := f.st.ReviewWork(&tx.ReviewWorkTx{Pool: fxPool, Proposal: 1, Positive: false, Comment: []byte("not acceptable")}, f.delegates[i], false)
		require.NoError(t, err)
		if i == 10 {
			require.NotNil(t, res.Fund)
			require.Equal(t, uint64(1500), res.Fund.Quantity)
		}
	}

	p := f.proposal(t)
	require.Equal(t, worker_types.ProposalStateClosed, p.State)
	require.True(t, p.Rejected)
	require.Equal(t, uint64(0), p.Deposit)
	require.Equal(t, uint64(1500), f.fund(t, fxPool))
}

func TestReviewWorkRequiresComment(t *testing.T) {
	f := newFixture(t)
	f.toDelegatesReview(t)
	_, err := f.st.ReviewWork(&tx.ReviewWorkTx{Pool: fxPool, Proposal: 1, Positive: true}, f.delegates[0], false)
	require.ErrorIs(t, err, ErrCommentRequired)
}

func TestCancelWorkRefundsAndCloses(t *testing.T) {
	f := newFixture(t)
	f.toWork(t)

	_, err := f.st.CancelWork(&tx.CancelWorkTx{Pool: fxPool, Proposal: 1}, fxAuthor, false)
	require.ErrorIs(t, err, ErrTxUnauthorized)

	res, err := f.st.CancelWork(&tx.CancelWorkTx{Pool: fxPool, Proposal: 1}, fxWorker, false)
	require.NoError(t, err)
	require.Equal(t, uint64(1500), res.Fund.Quantity)

	p := f.proposal(t)
	require.Equal(t, worker_types.ProposalStateClosed, p.State)
	require.True(t, p.Rejected)
	require.Equal(t, uint64(0), p.Deposit)
}

func TestWithdrawOnlyWorker(t *testing.T) {
	f := newFixture(t)
	f.toPayment(t)
	_, err := f.st.Withdraw(&tx.WithdrawTx{Pool: fxPool, Proposal: 1}, fxTspec, false)
	require.ErrorIs(t, err, ErrTxUnauthorized)
}

func TestSetFundPledge(t *testing.T) {
	f := newFixture(t)
	addMember(t, f.st, "sponsor.x", false)
	_, err := f.st.Deposit(&tx.DepositTx{Pool: fxPool, Amount: 400}, "sponsor.x", false)
	require.NoError(t, err)

	// only the tspec author may bind a sponsor
	_, err = f.st.SetFund(&tx.SetFundTx{Pool: fxPool, Proposal: 1, Tspec: 1, Sponsor: "sponsor.x", Amount: 300}, fxAuthor, false)
	require.ErrorIs(t, err, ErrTxUnauthorized)

	// pledge above the sponsor's fund fails
	_, err = f.st.SetFund(&tx.SetFundTx{Pool: fxPool, Proposal: 1, Tspec: 1, Sponsor: "sponsor.x", Amount: 500}, fxTspec, false)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = f.st.SetFund(&tx.SetFundTx{Pool: fxPool, Proposal: 1, Tspec: 1, Sponsor: "sponsor.x", Amount: 300}, fxTspec, false)
	require.NoError(t, err)

	// selection now debits the sponsor, not the pool
	f.selectTspec(t)
	p := f.proposal(t)
	require.Equal(t, "sponsor.x", p.FundOwner)
	require.Equal(t, uint64(100), f.fund(t, "sponsor.x"))
	require.Equal(t, uint64(1500), f.fund(t, fxPool))
}

func TestCommentLifecycle(t *testing.T) {
	f := newFixture(t)

	ev, err := f.st.AddComment(&tx.AddCommentTx{Pool: fxPool, Proposal: 1, Data: []byte("first")}, fxAuthor, false)
	require.NoError(t, err)
	require.Equal(t, uint64(1), ev.Comment)

	_, err = f.st.EditComment(&tx.EditCommentTx{Pool: fxPool, Proposal: 1, Comment: 1, Data: []byte("edited")}, fxTspec, false)
	require.ErrorIs(t, err, ErrTxUnauthorized)

	_, err = f.st.EditComment(&tx.EditCommentTx{Pool: fxPool, Proposal: 1, Comment: 1, Data: []byte("edited")}, fxAuthor, false)
	require.NoError(t, err)
	require.Equal(t, []byte("edited"), f.proposal(t).Comment(1).Data)

	_, err = f.st.DelComment(&tx.DelCommentTx{Pool: fxPool, Proposal: 1, Comment: 1}, fxAuthor, false)
	require.NoError(t, err)
	require.True(t, f.proposal(t).Comment(1).Deleted)

	_, err = f.st.EditComment(&tx.EditCommentTx{Pool: fxPool, Proposal: 1, Comment: 1, Data: []byte("again")}, fxAuthor, false)
	require.ErrorIs(t, err, ErrCommentNoexists)
}

func TestVoteProposalDelegateOnly(t *testing.T) {
	f := newFixture(t)
	_, err := f.st.VoteProposal(&tx.VoteProposalTx{Pool: fxPool, Proposal: 1, Positive: true}, fxAuthor, false)
	require.ErrorIs(t, err, ErrTxNotDelegate)

	ev, err := f.st.VoteProposal(&tx.VoteProposalTx{Pool: fxPool, Proposal: 1, Positive: true}, f.delegates[0], false)
	require.NoError(t, err)
	require.Equal(t, worker_types.VoteSubjectProposal, ev.Subject)
	require.Len(t, f.proposal(t).Votes, 1)
}

func TestCreatePoolGuards(t *testing.T) {
	st := newTestState(t)
	addMember(t, st, fxPool, false)
	addMember(t, st, fxAuthor, false)

	_, err := st.CreatePool(&tx.CreatePoolTx{Name: fxPool, TokenSymbol: "APP"}, fxAuthor, false)
	require.ErrorIs(t, err, ErrTxUnauthorized)

	// the existence probe's sentinel must not leak into the result
	ev, err := st.CreatePool(&tx.CreatePoolTx{Name: fxPool, TokenSymbol: "APP"}, fxPool, false)
	require.NoError(t, err)
	require.NotNil(t, ev)
	require.Equal(t, fxPool, ev.Pool)

	pool, err := st.getPool(fxPool)
	require.NoError(t, err)
	require.Equal(t, "APP", pool.TokenSymbol)
	fund, err := st.getFund(fxPool, fxPool)
	require.NoError(t, err)
	require.NotNil(t, fund)
	require.Equal(t, uint64(0), fund.Quantity)

	_, err = st.CreatePool(&tx.CreatePoolTx{Name: fxPool, TokenSymbol: "APP"}, fxPool, false)
	require.ErrorIs(t, err, ErrPoolAlreadyExists)
}

func TestCreatePoolCheckOnly(t *testing.T) {
	st := newTestState(t)
	addMember(t, st, fxPool, false)

	ev, err := st.CreatePool(&tx.CreatePoolTx{Name: fxPool, TokenSymbol: "APP"}, fxPool, true)
	require.NoError(t, err)
	require.Nil(t, ev)

	_, err = st.getPool(fxPool)
	require.ErrorIs(t, err, ErrPoolNoexists)
}

func TestInstallmentRemainder(t *testing.T) {
	cases := []struct {
		budget, count, done, want uint64
	}{
		{300, 2, 0, 150},
		{300, 2, 1, 150},
		{100, 3, 0, 33},
		{100, 3, 1, 33},
		{100, 3, 2, 34},
		{301, 2, 0, 150},
		{301, 2, 1, 151},
		{5, 1, 0, 5},
	}
	for _, c := range cases {
		require.Equal(t, c.want, installment(c.budget, c.count, c.done),
			"budget=%v count=%v done=%v", c.budget, c.count, c.done)
	}
}

func TestWithdrawOddBudgetRemainder(t *testing.T) {
	st := newTestState(t)
	addMember(t, st, fxPool, false)
	addMember(t, st, fxAuthor, false)
	addMember(t, st, fxTspec, false)
	addMember(t, st, fxWorker, false)
	addMember(t, st, "delegate.01", true)

	_, err := st.CreatePool(&tx.CreatePoolTx{Name: fxPool, TokenSymbol: "APP"}, fxPool, false)
	require.NoError(t, err)
	_, err = st.Deposit(&tx.DepositTx{Pool: fxPool, Amount: 400}, fxPool, false)
	require.NoError(t, err)
	_, err = st.AddProposal(&tx.AddProposalTx{Pool: fxPool, Title: "odd budget"}, fxAuthor, false)
	require.NoError(t, err)
	_, err = st.AddTspec(&tx.AddTspecTx{
		Pool:     fxPool,
		Proposal: 1,
		Terms:    tx.TspecTerms{SpecCost: 100, DevCost: 201, PaymentsCount: 2},
	}, fxTspec, false)
	require.NoError(t, err)
	_, err = st.VoteTspec(&tx.VoteTspecTx{Pool: fxPool, Proposal: 1, Tspec: 1, Positive: true}, "delegate.01", false)
	require.NoError(t, err)
	_, err = st.PublishTspec(&tx.PublishTspecTx{Pool: fxPool, Proposal: 1, Data: []byte("final")}, fxTspec, false)
	require.NoError(t, err)
	_, err = st.StartWork(&tx.StartWorkTx{Pool: fxPool, Proposal: 1, Worker: fxWorker}, fxTspec, false)
	require.NoError(t, err)
	_, err = st.PostStatus(&tx.PostStatusTx{Pool: fxPool, Proposal: 1, Kind: uint64(worker_types.StatusKindFinal), Data: []byte("done")}, fxWorker, false)
	require.NoError(t, err)
	_, err = st.AcceptWork(&tx.AcceptWorkTx{Pool: fxPool, Proposal: 1}, fxTspec, false)
	require.NoError(t, err)
	_, err = st.ReviewWork(&tx.ReviewWorkTx{Pool: fxPool, Proposal: 1, Positive: true, Comment: []byte("ok")}, "delegate.01", false)
	require.NoError(t, err)

	// budget 301 over 2 installments: 150 then 151, the remainder rides last
	res, err := st.Withdraw(&tx.WithdrawTx{Pool: fxPool, Proposal: 1}, fxWorker, false)
	require.NoError(t, err)
	require.Equal(t, uint64(150), res.Withdraw.Amount)
	require.Nil(t, res.Proposal)

	res, err = st.Withdraw(&tx.WithdrawTx{Pool: fxPool, Proposal: 1}, fxWorker, false)
	require.NoError(t, err)
	require.Equal(t, uint64(151), res.Withdraw.Amount)
	require.NotNil(t, res.Proposal)
	require.Equal(t, worker_types.ProposalStateClosed, res.Snapshot.State)
	require.Equal(t, uint64(0), res.Snapshot.Deposit)
}

func TestCheckOnlyLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)

	_, err := f.st.Deposit(&tx.DepositTx{Pool: fxPool, Amount: 99}, fxAuthor, true)
	require.NoError(t, err)
	require.Equal(t, uint64(0), f.fund(t, fxAuthor))

	_, err = f.st.AddComment(&tx.AddCommentTx{Pool: fxPool, Proposal: 1, Data: []byte("check")}, fxAuthor, true)
	require.NoError(t, err)
	require.Empty(t, f.proposal(t).Comments)
}

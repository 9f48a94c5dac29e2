package state

import (
	"errors"

	"github.com/calehh/worker-app/tx"
	worker_types "github.com/calehh/worker-app/types"
)

func termsFromTx(t tx.TspecTerms) worker_types.TspecData {
	return worker_types.TspecData{
		SpecCost:      t.SpecCost,
		SpecEta:       t.SpecEta,
		DevCost:       t.DevCost,
		DevEta:        t.DevEta,
		PaymentsCount: t.PaymentsCount,
	}
}

// AddTspec submits a competing technical specification application
// while the proposal is still collecting them.
func (s *State) AddTspec(wtx *tx.AddTspecTx, signerName string, checkOnly bool) (event *worker_types.EventTspec, err error) {
	s.logger.Debug("apply add tspec", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State != worker_types.ProposalStateTspecApp {
		return nil, ErrInvalidState
	}
	if wtx.Terms.PaymentsCount == 0 {
		return nil, errors.New("tspec payments count is zero")
	}
	if !checkOnly {
		idx := proposal.NextTspecIndex
		proposal.NextTspecIndex += 1
		proposal.Tspecs = append(proposal.Tspecs, worker_types.Tspec{
			Index:  idx,
			Author: a.Name,
			Data:   wtx.Data,
			Terms:  termsFromTx(wtx.Terms),
			Height: s.header.Height,
		})
		s.setProposal(proposal)

		s.touch(a)

		event = &worker_types.EventTspec{
			Pool:     proposal.Pool,
			Proposal: proposal.Index,
			Tspec:    idx,
			Author:   a.Name,
		}
	}
	return
}

// EditTspec amends an application. While the proposal still sits in
// TSPEC_APP the author may change everything; once this tspec is chosen
// only the text may change, the costs are frozen.
func (s *State) EditTspec(wtx *tx.EditTspecTx, signerName string, checkOnly bool) (event *worker_types.EventTspec, err error) {
	s.logger.Debug("apply edit tspec", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "tspec", wtx.Tspec, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	tspec := proposal.Tspec(wtx.Tspec)
	if tspec == nil {
		return nil, ErrTspecNoexists
	}
	if tspec.Author != a.Name {
		return nil, ErrTxUnauthorized
	}
	terms := termsFromTx(wtx.Terms)
	switch proposal.State {
	case worker_types.ProposalStateTspecApp:
		if terms.PaymentsCount == 0 {
			return nil, errors.New("tspec payments count is zero")
		}
	case worker_types.ProposalStateTspecCreate:
		if !proposal.TspecChosen || proposal.ChosenTspec != tspec.Index {
			return nil, ErrInvalidState
		}
		if terms != tspec.Terms {
			return nil, ErrInvalidState
		}
	default:
		return nil, ErrInvalidState
	}
	if !checkOnly {
		tspec.Data = wtx.Data
		tspec.Terms = terms
		tspec.Modified = s.header.Height
		s.setProposal(proposal)

		s.touch(a)

		event = &worker_types.EventTspec{
			Pool:      proposal.Pool,
			Proposal:  proposal.Index,
			Tspec:     tspec.Index,
			Author:    tspec.Author,
			Published: tspec.Published,
		}
	}
	return
}

// DelTspec withdraws an application that was never chosen; author only,
// TSPEC_APP only.
func (s *State) DelTspec(wtx *tx.DelTspecTx, signerName string, checkOnly bool) (event *worker_types.EventTspec, err error) {
	s.logger.Debug("apply del tspec", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "tspec", wtx.Tspec, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State != worker_types.ProposalStateTspecApp || proposal.TspecChosen {
		return nil, ErrInvalidState
	}
	tspec := proposal.Tspec(wtx.Tspec)
	if tspec == nil {
		return nil, ErrTspecNoexists
	}
	if tspec.Author != a.Name {
		return nil, ErrTxUnauthorized
	}
	if !checkOnly {
		author := tspec.Author
		for i := range proposal.Tspecs {
			if proposal.Tspecs[i].Index == wtx.Tspec {
				proposal.Tspecs = append(proposal.Tspecs[:i], proposal.Tspecs[i+1:]...)
				break
			}
		}
		s.setProposal(proposal)

		s.touch(a)

		event = &worker_types.EventTspec{
			Pool:     proposal.Pool,
			Proposal: proposal.Index,
			Tspec:    wtx.Tspec,
			Author:   author,
			Deleted:  true,
		}
	}
	return
}

// VoteTspecResult bundles everything a crossing selection vote changes:
// the vote itself, and on majority the chosen tspec, the debited fund
// and the proposal transition.
type VoteTspecResult struct {
	Vote     *worker_types.EventVote
	Chosen   *worker_types.EventTspec
	Fund     *worker_types.EventFund
	Proposal *worker_types.EventProposal
}

// VoteTspec records a delegate's selection vote. The first tspec whose
// approvals reach the majority threshold wins: its budget moves from
// the backing fund into the proposal's deposit and the proposal enters
// TSPEC_CREATE. Once a tspec is chosen further selection votes are
// accepted as no-ops. A crossing vote fails whole when the fund cannot
// cover the budget.
func (s *State) VoteTspec(wtx *tx.VoteTspecTx, signerName string, checkOnly bool) (res *VoteTspecResult, err error) {
	s.logger.Debug("apply vote tspec", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "tspec", wtx.Tspec, "height", s.header.Height)
	a, err := s.signer(signerName, true)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State != worker_types.ProposalStateTspecApp {
		if proposal.TspecChosen {
			// late votes after selection are tolerated
			if !checkOnly {
				s.touch(a)
			}
			return &VoteTspecResult{}, nil
		}
		return nil, ErrInvalidState
	}
	tspec := proposal.Tspec(wtx.Tspec)
	if tspec == nil {
		return nil, ErrTspecNoexists
	}

	approvals := worker_types.CastVote(append([]worker_types.Vote(nil), tspec.Approvals...), worker_types.Vote{
		Voter:    a.Name,
		Positive: wtx.Positive,
	})
	selected := worker_types.CountPositive(approvals) >= worker_types.MajorityThreshold(s.header.Delegates)

	fundOwner := tspec.Fund
	if fundOwner == "" {
		fundOwner = proposal.Pool
	}
	budget := tspec.Terms.Budget()
	if selected {
		fund, err1 := s.getFund(proposal.Pool, fundOwner)
		if err1 != nil {
			return nil, err1
		}
		if fund == nil || fund.Quantity < budget {
			return nil, ErrInsufficientFunds
		}
	}

	if !checkOnly {
		var commentIdx uint64
		if len(wtx.Comment) != 0 {
			commentIdx = s.appendComment(proposal, a.Name, wtx.Comment)
		}
		tspec.Approvals = worker_types.CastVote(tspec.Approvals, worker_types.Vote{
			Voter:    a.Name,
			Positive: wtx.Positive,
			Comment:  commentIdx,
			Height:   s.header.Height,
		})
		res = &VoteTspecResult{
			Vote: &worker_types.EventVote{
				Pool:     proposal.Pool,
				Proposal: proposal.Index,
				Subject:  worker_types.VoteSubjectTspec,
				Tspec:    tspec.Index,
				Voter:    a.Name,
				Positive: wtx.Positive,
			},
		}
		if selected {
			fund, err1 := s.debitFund(proposal.Pool, fundOwner, budget)
			if err1 != nil {
				return nil, err1
			}
			proposal.TspecChosen = true
			proposal.ChosenTspec = tspec.Index
			proposal.FundOwner = fundOwner
			proposal.Deposit = budget
			proposal.State = worker_types.ProposalStateTspecCreate
			res.Chosen = &worker_types.EventTspec{
				Pool:     proposal.Pool,
				Proposal: proposal.Index,
				Tspec:    tspec.Index,
				Author:   tspec.Author,
				Chosen:   true,
			}
			res.Fund = &worker_types.EventFund{
				Pool:     proposal.Pool,
				Owner:    fundOwner,
				Quantity: fund.Quantity,
			}
			res.Proposal = &worker_types.EventProposal{
				Pool:     proposal.Pool,
				Proposal: proposal.Index,
				Author:   proposal.Author,
				State:    uint64(proposal.State),
				Deposit:  proposal.Deposit,
			}
		}
		s.setProposal(proposal)

		s.touch(a)
	}
	return
}

// PublishTspec freezes the chosen specification's final text.
func (s *State) PublishTspec(wtx *tx.PublishTspecTx, signerName string, checkOnly bool) (event *worker_types.EventTspec, err error) {
	s.logger.Debug("apply publish tspec", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State != worker_types.ProposalStateTspecCreate || !proposal.TspecChosen {
		return nil, ErrInvalidState
	}
	tspec := proposal.Tspec(proposal.ChosenTspec)
	if tspec == nil {
		return nil, ErrTspecNoexists
	}
	if tspec.Author != a.Name {
		return nil, ErrTxUnauthorized
	}
	if tspec.Published {
		return nil, errors.New("tspec already published")
	}
	if !checkOnly {
		tspec.Data = wtx.Data
		tspec.Published = true
		tspec.Modified = s.header.Height
		s.setProposal(proposal)

		s.touch(a)

		event = &worker_types.EventTspec{
			Pool:      proposal.Pool,
			Proposal:  proposal.Index,
			Tspec:     tspec.Index,
			Author:    tspec.Author,
			Published: true,
			Chosen:    true,
		}
	}
	return
}

// StartWork assigns the worker and moves the proposal into WORK. Only
// the chosen tspec's author may assign, and only after publication.
func (s *State) StartWork(wtx *tx.StartWorkTx, signerName string, checkOnly bool) (event *worker_types.EventProposal, err error) {
	s.logger.Debug("apply start work", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "worker", wtx.Worker, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State != worker_types.ProposalStateTspecCreate || !proposal.TspecChosen {
		return nil, ErrInvalidState
	}
	tspec := proposal.Tspec(proposal.ChosenTspec)
	if tspec == nil {
		return nil, ErrTspecNoexists
	}
	if tspec.Author != a.Name {
		return nil, ErrTxUnauthorized
	}
	if !tspec.Published {
		return nil, ErrInvalidState
	}
	worker, err := s.FindAccount(wtx.Worker)
	if err != nil {
		return nil, err
	}
	if worker == nil {
		return nil, ErrAccountNoexists
	}
	if !checkOnly {
		proposal.Worker = worker.Name
		proposal.State = worker_types.ProposalStateWork
		s.setProposal(proposal)

		s.touch(a)

		event = &worker_types.EventProposal{
			Pool:     proposal.Pool,
			Proposal: proposal.Index,
			Author:   proposal.Author,
			State:    uint64(proposal.State),
			Deposit:  proposal.Deposit,
		}
	}
	return
}

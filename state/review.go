package state

import (
	"github.com/calehh/worker-app/tx"
	worker_types "github.com/calehh/worker-app/types"
)

type PostStatusResult struct {
	Status   *worker_types.EventStatus
	Proposal *worker_types.EventProposal
}

// PostStatus appends a worker status report. A final status moves the
// proposal from WORK into the author review stage.
func (s *State) PostStatus(wtx *tx.PostStatusTx, signerName string, checkOnly bool) (res *PostStatusResult, err error) {
	s.logger.Debug("apply post status", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "kind", wtx.Kind, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State != worker_types.ProposalStateWork {
		return nil, ErrInvalidState
	}
	if proposal.Worker != a.Name {
		return nil, ErrTxUnauthorized
	}
	kind := worker_types.StatusKind(wtx.Kind)
	if kind != worker_types.StatusKindProgress && kind != worker_types.StatusKindFinal {
		return nil, ErrInvalidState
	}
	if len(wtx.Data) == 0 {
		return nil, ErrCommentRequired
	}
	if !checkOnly {
		s.appendComment(proposal, a.Name, wtx.Data)
		res = &PostStatusResult{
			Status: &worker_types.EventStatus{
				Pool:     proposal.Pool,
				Proposal: proposal.Index,
				Worker:   a.Name,
				Kind:     wtx.Kind,
				Data:     wtx.Data,
			},
		}
		if kind == worker_types.StatusKindFinal {
			proposal.State = worker_types.ProposalStateTspecAuthorReview
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

type AuthorReviewResult struct {
	Comment  *worker_types.EventComment
	Proposal *worker_types.EventProposal
}

func (s *State) chosenTspecAuthorGuard(proposal *worker_types.Proposal, a *Account) error {
	if !proposal.TspecChosen {
		return ErrInvalidState
	}
	tspec := proposal.Tspec(proposal.ChosenTspec)
	if tspec == nil {
		return ErrTspecNoexists
	}
	if tspec.Author != a.Name {
		return ErrTxUnauthorized
	}
	return nil
}

// AcceptWork is the tspec author's sign-off on the delivered work,
// forwarding the proposal to the delegate review stage.
func (s *State) AcceptWork(wtx *tx.AcceptWorkTx, signerName string, checkOnly bool) (res *AuthorReviewResult, err error) {
	s.logger.Debug("apply accept work", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State != worker_types.ProposalStateTspecAuthorReview {
		return nil, ErrInvalidState
	}
	if err = s.chosenTspecAuthorGuard(proposal, a); err != nil {
		return nil, err
	}
	if !checkOnly {
		res = &AuthorReviewResult{}
		if len(wtx.Comment) != 0 {
			idx := s.appendComment(proposal, a.Name, wtx.Comment)
			res.Comment = &worker_types.EventComment{
				Pool:     proposal.Pool,
				Proposal: proposal.Index,
				Comment:  idx,
				Author:   a.Name,
				Data:     wtx.Comment,
			}
		}
		proposal.State = worker_types.ProposalStateDelegatesReview
		s.setProposal(proposal)

		s.touch(a)

		res.Proposal = &worker_types.EventProposal{
			Pool:     proposal.Pool,
			Proposal: proposal.Index,
			Author:   proposal.Author,
			State:    uint64(proposal.State),
			Deposit:  proposal.Deposit,
		}
	}
	return
}

// RejectWork sends the proposal back to WORK for another round.
func (s *State) RejectWork(wtx *tx.RejectWorkTx, signerName string, checkOnly bool) (res *AuthorReviewResult, err error) {
	s.logger.Debug("apply reject work", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State != worker_types.ProposalStateTspecAuthorReview {
		return nil, ErrInvalidState
	}
	if err = s.chosenTspecAuthorGuard(proposal, a); err != nil {
		return nil, err
	}
	if len(wtx.Comment) == 0 {
		return nil, ErrCommentRequired
	}
	if !checkOnly {
		res = &AuthorReviewResult{}
		idx := s.appendComment(proposal, a.Name, wtx.Comment)
		res.Comment = &worker_types.EventComment{
			Pool:     proposal.Pool,
			Proposal: proposal.Index,
			Comment:  idx,
			Author:   a.Name,
			Data:     wtx.Comment,
		}
		proposal.State = worker_types.ProposalStateWork
		s.setProposal(proposal)

		s.touch(a)

		res.Proposal = &worker_types.EventProposal{
			Pool:     proposal.Pool,
			Proposal: proposal.Index,
			Author:   proposal.Author,
			State:    uint64(proposal.State),
			Deposit:  proposal.Deposit,
		}
	}
	return
}

type CancelWorkResult struct {
	Proposal *worker_types.EventProposal
	Fund     *worker_types.EventFund
}

// CancelWork aborts a running engagement. The worker or the chosen
// tspec author may cancel; the escrowed deposit flows back to the fund
// and the proposal closes rejected.
func (s *State) CancelWork(wtx *tx.CancelWorkTx, signerName string, checkOnly bool) (res *CancelWorkResult, err error) {
	s.logger.Debug("apply cancel work", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State != worker_types.ProposalStateWork {
		return nil, ErrInvalidState
	}
	tspec := proposal.Tspec(proposal.ChosenTspec)
	if tspec == nil {
		return nil, ErrTspecNoexists
	}
	if a.Name != proposal.Worker && a.Name != tspec.Author {
		return nil, ErrTxUnauthorized
	}
	if !checkOnly {
		fund, err1 := s.creditFund(proposal.Pool, proposal.FundOwner, proposal.Deposit)
		if err1 != nil {
			return nil, err1
		}
		proposal.Deposit = 0
		proposal.State = worker_types.ProposalStateClosed
		proposal.Rejected = true
		s.setProposal(proposal)

		s.touch(a)

		res = &CancelWorkResult{
			Proposal: &worker_types.EventProposal{
				Pool:     proposal.Pool,
				Proposal: proposal.Index,
				Author:   proposal.Author,
				State:    uint64(proposal.State),
				Rejected: true,
			},
			Fund: &worker_types.EventFund{
				Pool:     proposal.Pool,
				Owner:    fund.Owner,
				Quantity: fund.Quantity,
			},
		}
	}
	return
}

type ReviewWorkResult struct {
	Vote     *worker_types.EventVote
	Proposal *worker_types.EventProposal
	Fund     *worker_types.EventFund
}

// ReviewWork records a delegate's verdict on the delivered work, with a
// mandatory comment. A majority of approvals opens PAYMENT; a majority
// of rejections refunds the deposit and closes the proposal rejected.
func (s *State) ReviewWork(wtx *tx.ReviewWorkTx, signerName string, checkOnly bool) (res *ReviewWorkResult, err error) {
	s.logger.Debug("apply review work", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "height", s.header.Height)
	a, err := s.signer(signerName, true)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State != worker_types.ProposalStateDelegatesReview {
		return nil, ErrInvalidState
	}
	if len(wtx.Comment) == 0 {
		return nil, ErrCommentRequired
	}
	if !checkOnly {
		commentIdx := s.appendComment(proposal, a.Name, wtx.Comment)
		proposal.ReviewVotes = worker_types.CastVote(proposal.ReviewVotes, worker_types.Vote{
			Voter:    a.Name,
			Positive: wtx.Positive,
			Comment:  commentIdx,
			Height:   s.header.Height,
		})
		res = &ReviewWorkResult{
			Vote: &worker_types.EventVote{
				Pool:     proposal.Pool,
				Proposal: proposal.Index,
				Subject:  worker_types.VoteSubjectReview,
				Voter:    a.Name,
				Positive: wtx.Positive,
			},
		}
		threshold := worker_types.MajorityThreshold(s.header.Delegates)
		if worker_types.CountPositive(proposal.ReviewVotes) >= threshold {
			proposal.State = worker_types.ProposalStatePayment
			res.Proposal = &worker_types.EventProposal{
				Pool:     proposal.Pool,
				Proposal: proposal.Index,
				Author:   proposal.Author,
				State:    uint64(proposal.State),
				Deposit:  proposal.Deposit,
			}
		} else if worker_types.CountNegative(proposal.ReviewVotes) >= threshold {
			fund, err1 := s.creditFund(proposal.Pool, proposal.FundOwner, proposal.Deposit)
			if err1 != nil {
				return nil, err1
			}
			proposal.Deposit = 0
			proposal.State = worker_types.ProposalStateClosed
			proposal.Rejected = true
			res.Proposal = &worker_types.EventProposal{
				Pool:     proposal.Pool,
				Proposal: proposal.Index,
				Author:   proposal.Author,
				State:    uint64(proposal.State),
				Rejected: true,
			}
			res.Fund = &worker_types.EventFund{
				Pool:     proposal.Pool,
				Owner:    fund.Owner,
				Quantity: fund.Quantity,
			}
		}
		s.setProposal(proposal)

		s.touch(a)
	}
	return
}

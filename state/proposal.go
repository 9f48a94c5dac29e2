package state

import (
	"errors"

	"github.com/calehh/worker-app/tx"
	worker_types "github.com/calehh/worker-app/types"
)

// AddProposal opens a new proposal in the pool, starting in TSPEC_APP.
func (s *State) AddProposal(wtx *tx.AddProposalTx, signerName string, checkOnly bool) (event *worker_types.EventProposal, err error) {
	s.logger.Debug("apply add proposal", "signer", signerName, "pool", wtx.Pool, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	if _, err = s.getPool(wtx.Pool); err != nil {
		return nil, err
	}
	if wtx.Title == "" {
		return nil, errors.New("proposal title is empty")
	}
	max, err := s.getProposalMax(wtx.Pool)
	if err != nil {
		return nil, err
	}
	if !checkOnly {
		idx := max + 1
		s.setProposalMax(wtx.Pool, idx)
		proposal := &worker_types.Proposal{
			Index:            idx,
			Pool:             wtx.Pool,
			Author:           a.Name,
			Title:            wtx.Title,
			Data:             wtx.Data,
			State:            worker_types.ProposalStateTspecApp,
			NextTspecIndex:   1,
			NextCommentIndex: 1,
			Height:           s.header.Height,
		}
		s.setProposal(proposal)

		s.touch(a)

		event = &worker_types.EventProposal{
			Pool:     proposal.Pool,
			Proposal: proposal.Index,
			Author:   proposal.Author,
			State:    uint64(proposal.State),
		}
	}
	return
}

// EditProposal overwrites title and body; author only, TSPEC_APP only.
func (s *State) EditProposal(wtx *tx.EditProposalTx, signerName string, checkOnly bool) (event *worker_types.EventProposal, err error) {
	s.logger.Debug("apply edit proposal", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.Author != a.Name {
		return nil, ErrTxUnauthorized
	}
	if proposal.State != worker_types.ProposalStateTspecApp {
		return nil, ErrInvalidState
	}
	if wtx.Title == "" {
		return nil, errors.New("proposal title is empty")
	}
	if !checkOnly {
		proposal.Title = wtx.Title
		proposal.Data = wtx.Data
		s.setProposal(proposal)

		s.touch(a)

		event = &worker_types.EventProposal{
			Pool:     proposal.Pool,
			Proposal: proposal.Index,
			Author:   proposal.Author,
			State:    uint64(proposal.State),
		}
	}
	return
}

// DelProposal removes a proposal that never left TSPEC_APP and has no
// chosen tspec; author only.
func (s *State) DelProposal(wtx *tx.DelProposalTx, signerName string, checkOnly bool) (event *worker_types.EventProposal, err error) {
	s.logger.Debug("apply del proposal", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.Author != a.Name {
		return nil, ErrTxUnauthorized
	}
	if proposal.State != worker_types.ProposalStateTspecApp || proposal.TspecChosen {
		return nil, ErrInvalidState
	}
	if !checkOnly {
		s.removeProposal(proposal)

		s.touch(a)

		event = &worker_types.EventProposal{
			Pool:     proposal.Pool,
			Proposal: proposal.Index,
			Author:   proposal.Author,
			State:    uint64(worker_types.ProposalStateClosed),
			Rejected: true,
		}
	}
	return
}

// VoteProposal records a delegate's acceptance vote on the proposal
// itself. No transition follows; leaving TSPEC_APP is driven by tspec
// selection.
func (s *State) VoteProposal(wtx *tx.VoteProposalTx, signerName string, checkOnly bool) (event *worker_types.EventVote, err error) {
	s.logger.Debug("apply vote proposal", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "height", s.header.Height)
	a, err := s.signer(signerName, true)
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
	if !checkOnly {
		proposal.Votes = worker_types.CastVote(proposal.Votes, worker_types.Vote{
			Voter:    a.Name,
			Positive: wtx.Positive,
			Height:   s.header.Height,
		})
		s.setProposal(proposal)

		s.touch(a)

		event = &worker_types.EventVote{
			Pool:     proposal.Pool,
			Proposal: proposal.Index,
			Subject:  worker_types.VoteSubjectProposal,
			Voter:    a.Name,
			Positive: wtx.Positive,
		}
	}
	return
}

// appendComment attaches a new comment to the proposal thread and
// returns its index. Callers persist the proposal themselves.
func (s *State) appendComment(proposal *worker_types.Proposal, author string, data []byte) uint64 {
	idx := proposal.NextCommentIndex
	proposal.NextCommentIndex += 1
	proposal.Comments = append(proposal.Comments, worker_types.Comment{
		Index:  idx,
		Author: author,
		Data:   data,
		Height: s.header.Height,
	})
	return idx
}

func (s *State) AddComment(wtx *tx.AddCommentTx, signerName string, checkOnly bool) (event *worker_types.EventComment, err error) {
	s.logger.Debug("apply add comment", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State == worker_types.ProposalStateClosed {
		return nil, ErrInvalidState
	}
	if len(wtx.Data) == 0 {
		return nil, ErrCommentRequired
	}
	if !checkOnly {
		idx := s.appendComment(proposal, a.Name, wtx.Data)
		s.setProposal(proposal)

		s.touch(a)

		event = &worker_types.EventComment{
			Pool:     proposal.Pool,
			Proposal: proposal.Index,
			Comment:  idx,
			Author:   a.Name,
			Data:     wtx.Data,
		}
	}
	return
}

func (s *State) EditComment(wtx *tx.EditCommentTx, signerName string, checkOnly bool) (event *worker_types.EventComment, err error) {
	s.logger.Debug("apply edit comment", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "comment", wtx.Comment, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State == worker_types.ProposalStateClosed {
		return nil, ErrInvalidState
	}
	comment := proposal.Comment(wtx.Comment)
	if comment == nil || comment.Deleted {
		return nil, ErrCommentNoexists
	}
	if comment.Author != a.Name {
		return nil, ErrTxUnauthorized
	}
	if len(wtx.Data) == 0 {
		return nil, ErrCommentRequired
	}
	if !checkOnly {
		comment.Data = wtx.Data
		comment.Modified = s.header.Height
		s.setProposal(proposal)

		s.touch(a)

		event = &worker_types.EventComment{
			Pool:     proposal.Pool,
			Proposal: proposal.Index,
			Comment:  comment.Index,
			Author:   a.Name,
			Data:     wtx.Data,
		}
	}
	return
}

func (s *State) DelComment(wtx *tx.DelCommentTx, signerName string, checkOnly bool) (event *worker_types.EventComment, err error) {
	s.logger.Debug("apply del comment", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "comment", wtx.Comment, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State == worker_types.ProposalStateClosed {
		return nil, ErrInvalidState
	}
	comment := proposal.Comment(wtx.Comment)
	if comment == nil || comment.Deleted {
		return nil, ErrCommentNoexists
	}
	if comment.Author != a.Name {
		return nil, ErrTxUnauthorized
	}
	if !checkOnly {
		comment.Data = nil
		comment.Deleted = true
		comment.Modified = s.header.Height
		s.setProposal(proposal)

		s.touch(a)

		event = &worker_types.EventComment{
			Pool:     proposal.Pool,
			Proposal: proposal.Index,
			Comment:  comment.Index,
			Author:   a.Name,
			Deleted:  true,
		}
	}
	return
}

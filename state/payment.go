package state

import (
	"github.com/calehh/worker-app/tx"
	worker_types "github.com/calehh/worker-app/types"
)

type WithdrawResult struct {
	Withdraw *worker_types.EventWithdraw
	Proposal *worker_types.EventProposal
	// Snapshot is the proposal after the installment, returned in the
	// tx result so callers need no follow-up query to decide whether to
	// withdraw again.
	Snapshot *worker_types.Proposal
}

// installment returns the amount the next withdraw releases. The budget
// splits into equal base installments of budget/count; the division
// remainder rides on the final installment.
func installment(budget, count, done uint64) uint64 {
	base := budget / count
	if done+1 == count {
		return budget - base*(count-1)
	}
	return base
}

// Withdraw releases the next installment of the escrowed budget to the
// worker. The final installment closes the proposal and reconciles any
// residual deposit back to the fund.
func (s *State) Withdraw(wtx *tx.WithdrawTx, signerName string, checkOnly bool) (res *WithdrawResult, err error) {
	s.logger.Debug("apply withdraw", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	proposal, err := s.getProposal(wtx.Pool, wtx.Proposal)
	if err != nil {
		return nil, err
	}
	if proposal.State != worker_types.ProposalStatePayment {
		return nil, ErrInvalidState
	}
	if proposal.Worker != a.Name {
		return nil, ErrTxUnauthorized
	}
	tspec := proposal.Tspec(proposal.ChosenTspec)
	if tspec == nil {
		return nil, ErrTspecNoexists
	}
	count := tspec.Terms.PaymentsCount
	if proposal.WorkerPaymentsCount >= count {
		return nil, ErrInvalidState
	}
	amount := installment(tspec.Terms.Budget(), count, proposal.WorkerPaymentsCount)
	if proposal.Deposit < amount {
		return nil, ErrInsufficientFunds
	}
	if !checkOnly {
		proposal.Deposit -= amount
		proposal.WorkerPaymentsCount += 1
		res = &WithdrawResult{
			Withdraw: &worker_types.EventWithdraw{
				Pool:          proposal.Pool,
				Proposal:      proposal.Index,
				Worker:        a.Name,
				Amount:        amount,
				PaymentsDone:  proposal.WorkerPaymentsCount,
				PaymentsTotal: count,
			},
		}
		if proposal.WorkerPaymentsCount == count {
			if proposal.Deposit > 0 {
				if _, err1 := s.creditFund(proposal.Pool, proposal.FundOwner, proposal.Deposit); err1 != nil {
					return nil, err1
				}
				proposal.Deposit = 0
			}
			proposal.State = worker_types.ProposalStateClosed
			res.Proposal = &worker_types.EventProposal{
				Pool:     proposal.Pool,
				Proposal: proposal.Index,
				Author:   proposal.Author,
				State:    uint64(proposal.State),
			}
		}
		res.Withdraw.State = uint64(proposal.State)
		s.setProposal(proposal)

		s.touch(a)

		res.Snapshot = cloneProposal(proposal)
	}
	return
}

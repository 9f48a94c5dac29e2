package state

import (
	"errors"

	"github.com/calehh/worker-app/tx"
	worker_types "github.com/calehh/worker-app/types"
)

// CreatePool registers a new pool with a zero-balance common fund. The
// signer must be the account the pool is named after.
func (s *State) CreatePool(wtx *tx.CreatePoolTx, signerName string, checkOnly bool) (event *worker_types.EventPool, err error) {
	s.logger.Debug("apply create pool", "signer", signerName, "pool", wtx.Name, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	if wtx.Name == "" {
		return nil, errors.New("pool name is empty")
	}
	if wtx.TokenSymbol == "" {
		return nil, errors.New("pool token symbol is empty")
	}
	if a.Name != wtx.Name {
		return nil, ErrTxUnauthorized
	}
	_, err = s.getPool(wtx.Name)
	if err == nil {
		return nil, ErrPoolAlreadyExists
	}
	if err != ErrPoolNoexists {
		return nil, err
	}
	err = nil
	if !checkOnly {
		s.setPool(&worker_types.Pool{
			Name:        wtx.Name,
			TokenSymbol: wtx.TokenSymbol,
			Height:      s.header.Height,
		})
		s.setFund(&worker_types.Fund{Pool: wtx.Name, Owner: wtx.Name})

		s.touch(a)

		event = &worker_types.EventPool{
			Pool:        wtx.Name,
			TokenSymbol: wtx.TokenSymbol,
		}
	}
	return
}

// Deposit credits the signer's fund inside the pool. It stands in for
// the external token-transfer notification and is the only action that
// increases a fund.
func (s *State) Deposit(wtx *tx.DepositTx, signerName string, checkOnly bool) (event *worker_types.EventFund, err error) {
	s.logger.Debug("apply deposit", "signer", signerName, "pool", wtx.Pool, "amount", wtx.Amount, "height", s.header.Height)
	a, err := s.signer(signerName, false)
	if err != nil {
		return nil, err
	}
	if _, err = s.getPool(wtx.Pool); err != nil {
		return nil, err
	}
	if wtx.Amount == 0 {
		return nil, errors.New("deposit amount is zero")
	}
	if !checkOnly {
		fund, err1 := s.creditFund(wtx.Pool, a.Name, wtx.Amount)
		if err1 != nil {
			return nil, err1
		}

		s.touch(a)

		event = &worker_types.EventFund{
			Pool:     wtx.Pool,
			Owner:    a.Name,
			Amount:   wtx.Amount,
			Quantity: fund.Quantity,
		}
	}
	return
}

// SetFund pledges a sponsor's escrowed balance to a tspec application.
// Signed by the tspec author; the sponsor's fund must already cover the
// pledge.
func (s *State) SetFund(wtx *tx.SetFundTx, signerName string, checkOnly bool) (event *worker_types.EventTspec, err error) {
	s.logger.Debug("apply set fund", "signer", signerName, "pool", wtx.Pool, "proposal", wtx.Proposal, "height", s.header.Height)
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
	tspec := proposal.Tspec(wtx.Tspec)
	if tspec == nil {
		return nil, ErrTspecNoexists
	}
	if tspec.Author != a.Name {
		return nil, ErrTxUnauthorized
	}
	sponsor, err := s.FindAccount(wtx.Sponsor)
	if err != nil {
		return nil, err
	}
	if sponsor == nil {
		return nil, ErrAccountNoexists
	}
	fund, err := s.getFund(wtx.Pool, wtx.Sponsor)
	if err != nil {
		return nil, err
	}
	if fund == nil || fund.Quantity < wtx.Amount {
		return nil, ErrInsufficientFunds
	}
	if !checkOnly {
		tspec.Fund = wtx.Sponsor
		tspec.Deposit = wtx.Amount
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

package tx

import (
	"encoding/json"
)

// WorkerTx is the signed envelope every engine action travels in. Signer
// is the account name the action is authorized as; Sig carries the
// ed25519 signature over SigData with the chain id as the ext slot.
type WorkerTx struct {
	Version uint8        `json:"version"`
	Type    WorkerTxType `json:"type"`
	Nonce   uint64       `json:"nonce"`
	Signer  string       `json:"signer"`
	Tx      any          `json:"tx"`
	Sig     [][]byte     `json:"sig"`
}

type CreatePoolTx struct {
	Name        string `json:"name"`
	TokenSymbol string `json:"tokenSymbol"`
}

// DepositTx is the token-transfer credit notification: it increases the
// signer's fund inside the pool. The only action that makes a fund grow.
type DepositTx struct {
	Pool   string `json:"pool"`
	Amount uint64 `json:"amount"`
}

type AddProposalTx struct {
	Pool  string `json:"pool"`
	Title string `json:"title"`
	Data  []byte `json:"data"`
}

type EditProposalTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Title    string `json:"title"`
	Data     []byte `json:"data"`
}

type DelProposalTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
}

// SetFundTx pledges a sponsor's escrowed balance to a tspec application.
// Signed by the tspec author; the sponsor's fund must already hold the
// amount.
type SetFundTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Tspec    uint64 `json:"tspec"`
	Sponsor  string `json:"sponsor"`
	Amount   uint64 `json:"amount"`
}

type VoteProposalTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Positive bool   `json:"positive"`
}

type AddCommentTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Data     []byte `json:"data"`
}

type EditCommentTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Comment  uint64 `json:"comment"`
	Data     []byte `json:"data"`
}

type DelCommentTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Comment  uint64 `json:"comment"`
}

type TspecTerms struct {
	SpecCost      uint64 `json:"specCost"`
	SpecEta       uint64 `json:"specEta"`
	DevCost       uint64 `json:"devCost"`
	DevEta        uint64 `json:"devEta"`
	PaymentsCount uint64 `json:"paymentsCount"`
}

type AddTspecTx struct {
	Pool     string     `json:"pool"`
	Proposal uint64     `json:"proposal"`
	Data     []byte     `json:"data"`
	Terms    TspecTerms `json:"terms"`
}

type EditTspecTx struct {
	Pool     string     `json:"pool"`
	Proposal uint64     `json:"proposal"`
	Tspec    uint64     `json:"tspec"`
	Data     []byte     `json:"data"`
	Terms    TspecTerms `json:"terms"`
}

type DelTspecTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Tspec    uint64 `json:"tspec"`
}

type VoteTspecTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Tspec    uint64 `json:"tspec"`
	Positive bool   `json:"positive"`
	Comment  []byte `json:"comment"`
}

type PublishTspecTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Data     []byte `json:"data"`
}

type StartWorkTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Worker   string `json:"worker"`
}

type CancelWorkTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
}

type PostStatusTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Kind     uint64 `json:"kind"`
	Data     []byte `json:"data"`
}

type AcceptWorkTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Comment  []byte `json:"comment"`
}

type RejectWorkTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Comment  []byte `json:"comment"`
}

type ReviewWorkTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Positive bool   `json:"positive"`
	Comment  []byte `json:"comment"`
}

type WithdrawTx struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
}

type workerTxTmpl[Tx any] struct {
	Version uint8        `json:"version"`
	Type    WorkerTxType `json:"type"`
	Nonce   uint64       `json:"nonce"`
	Signer  string       `json:"signer"`
	Tx      Tx           `json:"tx"`
	Sig     [][]byte     `json:"sig"`
}

func (tx *WorkerTx) SigData(ext []byte) (dat []byte, err error) {
	ntx := *tx
	ntx.Sig = [][]byte{ext}
	dat, err = json.Marshal(ntx)
	return
}

func parseWorkerTxType(dat []byte) WorkerTxType {
	var tx struct {
		Type WorkerTxType `json:"type"`
	}
	err := json.Unmarshal(dat, &tx)
	if err != nil {
		return WorkerTxTypeUnknown
	}
	return tx.Type
}

func unmarshalWorkerTx[Tx any](dat []byte) (btx *WorkerTx, err error) {
	var txt workerTxTmpl[Tx]
	err = json.Unmarshal(dat, &txt)
	if err != nil {
		return
	}
	btx = new(WorkerTx)
	btx.Version = txt.Version
	btx.Type = txt.Type
	btx.Nonce = txt.Nonce
	btx.Signer = txt.Signer
	btx.Tx = &txt.Tx
	btx.Sig = txt.Sig
	return
}

func UnmarshalWorkerTx(dat []byte) (btx *WorkerTx, err error) {
	tp := parseWorkerTxType(dat)
	switch tp {
	case WorkerTxTypeCreatePool:
		return unmarshalWorkerTx[CreatePoolTx](dat)
	case WorkerTxTypeDeposit:
		return unmarshalWorkerTx[DepositTx](dat)
	case WorkerTxTypeAddProposal:
		return unmarshalWorkerTx[AddProposalTx](dat)
	case WorkerTxTypeEditProposal:
		return unmarshalWorkerTx[EditProposalTx](dat)
	case WorkerTxTypeDelProposal:
		return unmarshalWorkerTx[DelProposalTx](dat)
	case WorkerTxTypeSetFund:
		return unmarshalWorkerTx[SetFundTx](dat)
	case WorkerTxTypeVoteProposal:
		return unmarshalWorkerTx[VoteProposalTx](dat)
	case WorkerTxTypeAddComment:
		return unmarshalWorkerTx[AddCommentTx](dat)
	case WorkerTxTypeEditComment:
		return unmarshalWorkerTx[EditCommentTx](dat)
	case WorkerTxTypeDelComment:
		return unmarshalWorkerTx[DelCommentTx](dat)
	case WorkerTxTypeAddTspec:
		return unmarshalWorkerTx[AddTspecTx](dat)
	case WorkerTxTypeEditTspec:
		return unmarshalWorkerTx[EditTspecTx](dat)
	case WorkerTxTypeDelTspec:
		return unmarshalWorkerTx[DelTspecTx](dat)
	case WorkerTxTypeVoteTspec:
		return unmarshalWorkerTx[VoteTspecTx](dat)
	case WorkerTxTypePublishTspec:
		return unmarshalWorkerTx[PublishTspecTx](dat)
	case WorkerTxTypeStartWork:
		return unmarshalWorkerTx[StartWorkTx](dat)
	case WorkerTxTypeCancelWork:
		return unmarshalWorkerTx[CancelWorkTx](dat)
	case WorkerTxTypePostStatus:
		return unmarshalWorkerTx[PostStatusTx](dat)
	case WorkerTxTypeAcceptWork:
		return unmarshalWorkerTx[AcceptWorkTx](dat)
	case WorkerTxTypeRejectWork:
		return unmarshalWorkerTx[RejectWorkTx](dat)
	case WorkerTxTypeReviewWork:
		return unmarshalWorkerTx[ReviewWorkTx](dat)
	case WorkerTxTypeWithdraw:
		return unmarshalWorkerTx[WithdrawTx](dat)
	default:
		err = ErrUnsupportedTxType
	}
	return
}

func MarshalWorkerTx(btx *WorkerTx) (dat []byte, err error) {
	return json.Marshal(btx)
}

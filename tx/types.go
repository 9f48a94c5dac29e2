package tx

import (
	"errors"
)

type WorkerTxType uint8

const (
	WorkerTxTypeUnknown      WorkerTxType = 0
	WorkerTxTypeCreatePool   WorkerTxType = 1
	WorkerTxTypeDeposit      WorkerTxType = 2
	WorkerTxTypeAddProposal  WorkerTxType = 3
	WorkerTxTypeEditProposal WorkerTxType = 4
	WorkerTxTypeDelProposal  WorkerTxType = 5
	WorkerTxTypeSetFund      WorkerTxType = 6
	WorkerTxTypeVoteProposal WorkerTxType = 7
	WorkerTxTypeAddComment   WorkerTxType = 8
	WorkerTxTypeEditComment  WorkerTxType = 9
	WorkerTxTypeDelComment   WorkerTxType = 10
	WorkerTxTypeAddTspec     WorkerTxType = 11
	WorkerTxTypeEditTspec    WorkerTxType = 12
	WorkerTxTypeVoteTspec    WorkerTxType = 13
	WorkerTxTypePublishTspec WorkerTxType = 14
	WorkerTxTypeStartWork    WorkerTxType = 15
	WorkerTxTypeCancelWork   WorkerTxType = 16
	WorkerTxTypePostStatus   WorkerTxType = 17
	WorkerTxTypeAcceptWork   WorkerTxType = 18
	WorkerTxTypeRejectWork   WorkerTxType = 19
	WorkerTxTypeReviewWork   WorkerTxType = 20
	WorkerTxTypeWithdraw     WorkerTxType = 21
	WorkerTxTypeDelTspec     WorkerTxType = 22
)

const (
	WorkerTxVersion1 uint8 = 1
)

var (
	ErrUnsupportedTxType = errors.New("unsupported tx type")
)

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventProposalRoundTrip(t *testing.T) {
	ev := &EventProposal{
		Pool:     "app.sample",
		Proposal: 7,
		Author:   "user.a",
		State:    uint64(ProposalStatePayment),
		Rejected: false,
		Deposit:  300,
	}
	got := DecodeEventProposal(EncodeEventProposal(ev))
	require.Equal(t, ev, got)
}

func TestEventTspecRoundTrip(t *testing.T) {
	ev := &EventTspec{
		Pool:     "app.sample",
		Proposal: 1,
		Tspec:    3,
		Author:   "user.t",
		Deleted:  true,
	}
	got := DecodeEventTspec(EncodeEventTspec(ev))
	require.Equal(t, ev, got)
}

func TestEventWithdrawRoundTrip(t *testing.T) {
	ev := &EventWithdraw{
		Pool:          "app.sample",
		Proposal:      1,
		Worker:        "user.w",
		Amount:        150,
		PaymentsDone:  2,
		PaymentsTotal: 2,
		State:         uint64(ProposalStateClosed),
	}
	got := DecodeEventWithdraw(EncodeEventWithdraw(ev))
	require.Equal(t, ev, got)
}

func TestDecodeEventVoteBadNumber(t *testing.T) {
	ev := EncodeEventVote(&EventVote{Pool: "p", Proposal: 1, Subject: VoteSubjectTspec, Tspec: 1, Voter: "user.d"})
	ev.Attributes[1].Value = "not-a-number"
	require.Nil(t, DecodeEventVote(ev))
}

package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCastVoteOverwrites(t *testing.T) {
	var tally []Vote
	tally = CastVote(tally, Vote{Voter: "user.a", Positive: true, Height: 1})
	tally = CastVote(tally, Vote{Voter: "user.b", Positive: false, Height: 1})
	tally = CastVote(tally, Vote{Voter: "user.a", Positive: false, Height: 2})

	require.Len(t, tally, 2)
	require.Equal(t, uint64(0), CountPositive(tally))
	require.Equal(t, uint64(2), CountNegative(tally))
	require.Equal(t, uint64(2), tally[0].Height)
}

func TestMajorityThreshold(t *testing.T) {
	cases := []struct {
		delegates uint64
		want      uint64
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{21, 11},
	}
	for _, c := range cases {
		require.Equal(t, c.want, MajorityThreshold(c.delegates), "delegates=%v", c.delegates)
	}
}

func TestTspecBudget(t *testing.T) {
	d := TspecData{SpecCost: 100, DevCost: 200, PaymentsCount: 2}
	require.Equal(t, uint64(300), d.Budget())
}

func TestProposalLookups(t *testing.T) {
	p := &Proposal{
		Tspecs:   []Tspec{{Index: 1, Author: "user.t"}, {Index: 2, Author: "user.u"}},
		Comments: []Comment{{Index: 1, Author: "user.a"}},
	}
	require.Equal(t, "user.u", p.Tspec(2).Author)
	require.Nil(t, p.Tspec(3))
	require.Equal(t, "user.a", p.Comment(1).Author)
	require.Nil(t, p.Comment(2))

	// lookups return addressable entries
	p.Tspec(1).Published = true
	require.True(t, p.Tspecs[0].Published)
}

func TestProposalStateString(t *testing.T) {
	require.Equal(t, "tspec_app", ProposalStateTspecApp.String())
	require.Equal(t, "payment", ProposalStatePayment.String())
	require.Equal(t, "closed", ProposalStateClosed.String())
	require.Equal(t, "unknown", ProposalState(42).String())
}

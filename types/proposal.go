package types

type ProposalState uint64

const (
	ProposalStateTspecApp          ProposalState = 1
	ProposalStateTspecCreate       ProposalState = 2
	ProposalStateWork              ProposalState = 3
	ProposalStateTspecAuthorReview ProposalState = 4
	ProposalStateDelegatesReview   ProposalState = 5
	ProposalStatePayment           ProposalState = 6
	ProposalStateClosed            ProposalState = 7
)

func (s ProposalState) String() string {
	switch s {
	case ProposalStateTspecApp:
		return "tspec_app"
	case ProposalStateTspecCreate:
		return "tspec_create"
	case ProposalStateWork:
		return "work"
	case ProposalStateTspecAuthorReview:
		return "tspec_author_review"
	case ProposalStateDelegatesReview:
		return "delegates_review"
	case ProposalStatePayment:
		return "payment"
	case ProposalStateClosed:
		return "closed"
	}
	return "unknown"
}

type StatusKind uint64

const (
	StatusKindProgress StatusKind = 1
	StatusKindFinal    StatusKind = 2
)

// Pool is a named scope holding proposals and the funds escrowed for
// them, all denominated in a single token symbol.
type Pool struct {
	Name        string `json:"name"`
	TokenSymbol string `json:"token_symbol"`
	Height      uint64 `json:"height"`
}

// Fund is an earmarked balance inside a pool, keyed by (pool, owner).
// The sponsor named as a proposal's fund owner pays that proposal's
// escrow out of this balance. Quantity never goes negative.
type Fund struct {
	Pool     string `json:"pool"`
	Owner    string `json:"owner"`
	Quantity uint64 `json:"quantity"`
}

type TspecData struct {
	SpecCost      uint64 `json:"spec_cost"`
	SpecEta       uint64 `json:"spec_eta"`
	DevCost       uint64 `json:"dev_cost"`
	DevEta        uint64 `json:"dev_eta"`
	PaymentsCount uint64 `json:"payments_count"`
}

// Budget is the total the chosen tspec escrows: specification plus
// development cost.
func (d TspecData) Budget() uint64 {
	return d.SpecCost + d.DevCost
}

// Tspec is one competing technical specification application on a
// proposal. Fund/Deposit name an optional sponsor pledge; when unset the
// pool's own fund pays the escrow. Approvals holds delegate selection
// votes, one entry per voter, latest vote wins.
type Tspec struct {
	Index     uint64    `json:"index"`
	Author    string    `json:"author"`
	Data      []byte    `json:"data"`
	Terms     TspecData `json:"terms"`
	Fund      string    `json:"fund,omitempty"`
	Deposit   uint64    `json:"deposit,omitempty"`
	Published bool      `json:"published"`
	Approvals []Vote    `json:"approvals"`
	Height    uint64    `json:"height"`
	Modified  uint64    `json:"modified"`
}

type Comment struct {
	Index    uint64 `json:"index"`
	Author   string `json:"author"`
	Data     []byte `json:"data"`
	Height   uint64 `json:"height"`
	Modified uint64 `json:"modified"`
	Deleted  bool   `json:"deleted"`
}

// Vote is one account's current stance on a subject. A voter keeps at
// most one entry per subject; re-voting overwrites it in place.
type Vote struct {
	Voter    string `json:"voter"`
	Positive bool   `json:"positive"`
	Comment  uint64 `json:"comment,omitempty"`
	Height   uint64 `json:"height"`
}

// Proposal is the aggregate the engine guards. It exclusively owns its
// tspec applications, comments and vote tallies; at most one tspec is
// ever chosen, and the chosen budget sits in Deposit until it is paid
// out to the worker or refunded to the fund.
type Proposal struct {
	Index               uint64        `json:"index"`
	Pool                string        `json:"pool"`
	Author              string        `json:"author"`
	Title               string        `json:"title"`
	Data                []byte        `json:"data"`
	State               ProposalState `json:"state"`
	Rejected            bool          `json:"rejected"`
	FundOwner           string        `json:"fund_owner"`
	Deposit             uint64        `json:"deposit"`
	TspecChosen         bool          `json:"tspec_chosen"`
	ChosenTspec         uint64        `json:"chosen_tspec"`
	Worker              string        `json:"worker"`
	WorkerPaymentsCount uint64        `json:"worker_payments_count"`
	NextTspecIndex      uint64        `json:"next_tspec_index"`
	NextCommentIndex    uint64        `json:"next_comment_index"`
	Tspecs              []Tspec       `json:"tspecs"`
	Comments            []Comment     `json:"comments"`
	Votes               []Vote        `json:"votes"`
	ReviewVotes         []Vote        `json:"review_votes"`
	Height              uint64        `json:"height"`
	Modified            uint64        `json:"modified"`
}

func (p *Proposal) Tspec(index uint64) *Tspec {
	for i := range p.Tspecs {
		if p.Tspecs[i].Index == index {
			return &p.Tspecs[i]
		}
	}
	return nil
}

func (p *Proposal) Comment(index uint64) *Comment {
	for i := range p.Comments {
		if p.Comments[i].Index == index {
			return &p.Comments[i]
		}
	}
	return nil
}

// CastVote records the voter's stance in the tally, replacing any prior
// entry so no voter is ever counted twice.
func CastVote(tally []Vote, vote Vote) []Vote {
	for i := range tally {
		if tally[i].Voter == vote.Voter {
			tally[i] = vote
			return tally
		}
	}
	return append(tally, vote)
}

func CountPositive(tally []Vote) uint64 {
	var n uint64
	for i := range tally {
		if tally[i].Positive {
			n++
		}
	}
	return n
}

func CountNegative(tally []Vote) uint64 {
	var n uint64
	for i := range tally {
		if !tally[i].Positive {
			n++
		}
	}
	return n
}

// MajorityThreshold is strictly more than half of the delegate roster.
func MajorityThreshold(delegates uint64) uint64 {
	return delegates/2 + 1
}

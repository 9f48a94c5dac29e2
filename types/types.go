package types

import (
	"fmt"
	"strconv"

	abci "github.com/cometbft/cometbft/abci/types"
)

const (
	EventPoolType     = "pool"
	EventFundType     = "fund"
	EventProposalType = "proposal"
	EventCommentType  = "comment"
	EventTspecType    = "tspec"
	EventVoteType     = "vote"
	EventStatusType   = "status"
	EventWithdrawType = "withdraw"
)

const (
	VoteSubjectProposal = "proposal"
	VoteSubjectTspec    = "tspec"
	VoteSubjectReview   = "review"
)

type EventPool struct {
	Pool        string `json:"pool"`
	TokenSymbol string `json:"tokenSymbol"`
}

func EncodeEventPool(event *EventPool) abci.Event {
	return abci.Event{
		Type: EventPoolType,
		Attributes: []abci.EventAttribute{
			{Key: "pool", Value: event.Pool, Index: true},
			{Key: "tokenSymbol", Value: event.TokenSymbol, Index: false},
		},
	}
}

func DecodeEventPool(originEvent abci.Event) *EventPool {
	event := &EventPool{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "pool":
			event.Pool = v.Value
		case "tokenSymbol":
			event.TokenSymbol = v.Value
		}
	}
	return event
}

type EventFund struct {
	Pool     string `json:"pool"`
	Owner    string `json:"owner"`
	Amount   uint64 `json:"amount"`
	Quantity uint64 `json:"quantity"`
}

func EncodeEventFund(event *EventFund) abci.Event {
	return abci.Event{
		Type: EventFundType,
		Attributes: []abci.EventAttribute{
			{Key: "pool", Value: event.Pool, Index: true},
			{Key: "owner", Value: event.Owner, Index: true},
			{Key: "amount", Value: fmt.Sprintf("%v", event.Amount), Index: false},
			{Key: "quantity", Value: fmt.Sprintf("%v", event.Quantity), Index: false},
		},
	}
}

func DecodeEventFund(originEvent abci.Event) *EventFund {
	event := &EventFund{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "pool":
			event.Pool = v.Value
		case "owner":
			event.Owner = v.Value
		case "amount":
			amount, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Amount = amount
		case "quantity":
			quantity, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Quantity = quantity
		}
	}
	return event
}

type EventProposal struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Author   string `json:"author"`
	State    uint64 `json:"state"`
	Rejected bool   `json:"rejected"`
	Deposit  uint64 `json:"deposit"`
}

func EncodeEventProposal(event *EventProposal) abci.Event {
	return abci.Event{
		Type: EventProposalType,
		Attributes: []abci.EventAttribute{
			{Key: "pool", Value: event.Pool, Index: true},
			{Key: "proposal", Value: fmt.Sprintf("%v", event.Proposal), Index: true},
			{Key: "author", Value: event.Author, Index: true},
			{Key: "state", Value: fmt.Sprintf("%v", event.State), Index: false},
			{Key: "rejected", Value: fmt.Sprintf("%v", event.Rejected), Index: false},
			{Key: "deposit", Value: fmt.Sprintf("%v", event.Deposit), Index: false},
		},
	}
}

func DecodeEventProposal(originEvent abci.Event) *EventProposal {
	event := &EventProposal{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "pool":
			event.Pool = v.Value
		case "proposal":
			proposal, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Proposal = proposal
		case "author":
			event.Author = v.Value
		case "state":
			state, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.State = state
		case "rejected":
			rejected, err := strconv.ParseBool(v.Value)
			if err != nil {
				return nil
			}
			event.Rejected = rejected
		case "deposit":
			deposit, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Deposit = deposit
		}
	}
	return event
}

type EventComment struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Comment  uint64 `json:"comment"`
	Author   string `json:"author"`
	Data     []byte `json:"data"`
	Deleted  bool   `json:"deleted"`
}

func EncodeEventComment(event *EventComment) abci.Event {
	return abci.Event{
		Type: EventCommentType,
		Attributes: []abci.EventAttribute{
			{Key: "pool", Value: event.Pool, Index: true},
			{Key: "proposal", Value: fmt.Sprintf("%v", event.Proposal), Index: true},
			{Key: "comment", Value: fmt.Sprintf("%v", event.Comment), Index: false},
			{Key: "author", Value: event.Author, Index: true},
			{Key: "data", Value: string(event.Data), Index: false},
			{Key: "deleted", Value: fmt.Sprintf("%v", event.Deleted), Index: false},
		},
	}
}

func DecodeEventComment(originEvent abci.Event) *EventComment {
	event := &EventComment{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "pool":
			event.Pool = v.Value
		case "proposal":
			proposal, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Proposal = proposal
		case "comment":
			comment, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Comment = comment
		case "author":
			event.Author = v.Value
		case "data":
			event.Data = []byte(v.Value)
		case "deleted":
			deleted, err := strconv.ParseBool(v.Value)
			if err != nil {
				return nil
			}
			event.Deleted = deleted
		}
	}
	return event
}

type EventTspec struct {
	Pool      string `json:"pool"`
	Proposal  uint64 `json:"proposal"`
	Tspec     uint64 `json:"tspec"`
	Author    string `json:"author"`
	Published bool   `json:"published"`
	Chosen    bool   `json:"chosen"`
	Deleted   bool   `json:"deleted"`
}

func EncodeEventTspec(event *EventTspec) abci.Event {
	return abci.Event{
		Type: EventTspecType,
		Attributes: []abci.EventAttribute{
			{Key: "pool", Value: event.Pool, Index: true},
			{Key: "proposal", Value: fmt.Sprintf("%v", event.Proposal), Index: true},
			{Key: "tspec", Value: fmt.Sprintf("%v", event.Tspec), Index: false},
			{Key: "author", Value: event.Author, Index: true},
			{Key: "published", Value: fmt.Sprintf("%v", event.Published), Index: false},
			{Key: "chosen", Value: fmt.Sprintf("%v", event.Chosen), Index: false},
			{Key: "deleted", Value: fmt.Sprintf("%v", event.Deleted), Index: false},
		},
	}
}

func DecodeEventTspec(originEvent abci.Event) *EventTspec {
	event := &EventTspec{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "pool":
			event.Pool = v.Value
		case "proposal":
			proposal, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Proposal = proposal
		case "tspec":
			tspec, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Tspec = tspec
		case "author":
			event.Author = v.Value
		case "published":
			published, err := strconv.ParseBool(v.Value)
			if err != nil {
				return nil
			}
			event.Published = published
		case "chosen":
			chosen, err := strconv.ParseBool(v.Value)
			if err != nil {
				return nil
			}
			event.Chosen = chosen
		case "deleted":
			deleted, err := strconv.ParseBool(v.Value)
			if err != nil {
				return nil
			}
			event.Deleted = deleted
		}
	}
	return event
}

type EventVote struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Subject  string `json:"subject"`
	Tspec    uint64 `json:"tspec"`
	Voter    string `json:"voter"`
	Positive bool   `json:"positive"`
}

func EncodeEventVote(event *EventVote) abci.Event {
	return abci.Event{
		Type: EventVoteType,
		Attributes: []abci.EventAttribute{
			{Key: "pool", Value: event.Pool, Index: true},
			{Key: "proposal", Value: fmt.Sprintf("%v", event.Proposal), Index: true},
			{Key: "subject", Value: event.Subject, Index: false},
			{Key: "tspec", Value: fmt.Sprintf("%v", event.Tspec), Index: false},
			{Key: "voter", Value: event.Voter, Index: true},
			{Key: "positive", Value: fmt.Sprintf("%v", event.Positive), Index: false},
		},
	}
}

func DecodeEventVote(originEvent abci.Event) *EventVote {
	event := &EventVote{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "pool":
			event.Pool = v.Value
		case "proposal":
			proposal, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Proposal = proposal
		case "subject":
			event.Subject = v.Value
		case "tspec":
			tspec, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Tspec = tspec
		case "voter":
			event.Voter = v.Value
		case "positive":
			positive, err := strconv.ParseBool(v.Value)
			if err != nil {
				return nil
			}
			event.Positive = positive
		}
	}
	return event
}

type EventStatus struct {
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Worker   string `json:"worker"`
	Kind     uint64 `json:"kind"`
	Data     []byte `json:"data"`
}

func EncodeEventStatus(event *EventStatus) abci.Event {
	return abci.Event{
		Type: EventStatusType,
		Attributes: []abci.EventAttribute{
			{Key: "pool", Value: event.Pool, Index: true},
			{Key: "proposal", Value: fmt.Sprintf("%v", event.Proposal), Index: true},
			{Key: "worker", Value: event.Worker, Index: true},
			{Key: "kind", Value: fmt.Sprintf("%v", event.Kind), Index: false},
			{Key: "data", Value: string(event.Data), Index: false},
		},
	}
}

func DecodeEventStatus(originEvent abci.Event) *EventStatus {
	event := &EventStatus{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "pool":
			event.Pool = v.Value
		case "proposal":
			proposal, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Proposal = proposal
		case "worker":
			event.Worker = v.Value
		case "kind":
			kind, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Kind = kind
		case "data":
			event.Data = []byte(v.Value)
		}
	}
	return event
}

type EventWithdraw struct {
	Pool          string `json:"pool"`
	Proposal      uint64 `json:"proposal"`
	Worker        string `json:"worker"`
	Amount        uint64 `json:"amount"`
	PaymentsDone  uint64 `json:"paymentsDone"`
	PaymentsTotal uint64 `json:"paymentsTotal"`
	State         uint64 `json:"state"`
}

func EncodeEventWithdraw(event *EventWithdraw) abci.Event {
	return abci.Event{
		Type: EventWithdrawType,
		Attributes: []abci.EventAttribute{
			{Key: "pool", Value: event.Pool, Index: true},
			{Key: "proposal", Value: fmt.Sprintf("%v", event.Proposal), Index: true},
			{Key: "worker", Value: event.Worker, Index: true},
			{Key: "amount", Value: fmt.Sprintf("%v", event.Amount), Index: false},
			{Key: "paymentsDone", Value: fmt.Sprintf("%v", event.PaymentsDone), Index: false},
			{Key: "paymentsTotal", Value: fmt.Sprintf("%v", event.PaymentsTotal), Index: false},
			{Key: "state", Value: fmt.Sprintf("%v", event.State), Index: false},
		},
	}
}

func DecodeEventWithdraw(originEvent abci.Event) *EventWithdraw {
	event := &EventWithdraw{}
	for _, v := range originEvent.Attributes {
		switch v.Key {
		case "pool":
			event.Pool = v.Value
		case "proposal":
			proposal, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Proposal = proposal
		case "worker":
			event.Worker = v.Value
		case "amount":
			amount, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.Amount = amount
		case "paymentsDone":
			done, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.PaymentsDone = done
		case "paymentsTotal":
			total, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.PaymentsTotal = total
		case "state":
			state, err := strconv.ParseUint(v.Value, 10, 64)
			if err != nil {
				return nil
			}
			event.State = state
		}
	}
	return event
}

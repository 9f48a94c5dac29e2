package agent

import (
	"context"
	"errors"
	"time"

	"github.com/calehh/worker-app/types"
	abci "github.com/cometbft/cometbft/abci/types"
	cmtlog "github.com/cometbft/cometbft/libs/log"
	comethttp "github.com/cometbft/cometbft/rpc/client/http"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

type ChainIndexer struct {
	logger        cmtlog.Logger
	Url           string
	Height        int64
	db            *gorm.DB
	cli           *comethttp.HTTP
	eventHandlers map[string]eventHandler
	ChainId       string
}

func NewChainIndexer(logger cmtlog.Logger, dbPath string, chainUrl string) (*ChainIndexer, error) {
	logger.Info("NewChainIndexer", "dbPath", dbPath, "url", chainUrl)
	cli, err := comethttp.New(chainUrl, "/websocket")
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Height{}, &Pool{}, &Fund{}, &Proposal{}, &Comment{}, &Tspec{}, &Vote{}, &Status{}, &Withdrawal{}).Error; err != nil {
		return nil, err
	}
	h := Height{Id: 1}
	if err = db.First(&h).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	ctx := context.Background()
	gres, err := cli.Genesis(ctx)
	if err != nil {
		logger.Error("get genesis fail", "err", err)
		return nil, err
	}
	chainId := gres.Genesis.ChainID

	c := ChainIndexer{
		logger:        logger.With("module", "indexer"),
		Url:           chainUrl,
		Height:        int64(h.Height + 1),
		db:            db,
		cli:           cli,
		eventHandlers: map[string]eventHandler{},
		ChainId:       chainId,
	}

	c.eventHandlers = map[string]eventHandler{
		types.EventPoolType:     c.handleEventPool,
		types.EventFundType:     c.handleEventFund,
		types.EventProposalType: c.handleEventProposal,
		types.EventCommentType:  c.handleEventComment,
		types.EventTspecType:    c.handleEventTspec,
		types.EventVoteType:     c.handleEventVote,
		types.EventStatusType:   c.handleEventStatus,
		types.EventWithdrawType: c.handleEventWithdraw,
	}
	return &c, nil
}

type eventHandler func(ctx context.Context, event abci.Event, height int64)

func (c *ChainIndexer) handleEvent(ctx context.Context, event abci.Event, height int64) {
	if h, ok := c.eventHandlers[event.Type]; ok {
		h(ctx, event, height)
	}
}

func (c *ChainIndexer) handleEventPool(ctx context.Context, event abci.Event, height int64) {
	ev := types.DecodeEventPool(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	pool := Pool{
		Name:            ev.Pool,
		TokenSymbol:     ev.TokenSymbol,
		Height:          uint64(height),
		CreateTimestamp: time.Now().Unix(),
	}
	if err := c.db.Save(&pool).Error; err != nil {
		c.logger.Error("save pool fail", "err", err)
	}
}

func (c *ChainIndexer) handleEventFund(ctx context.Context, event abci.Event, height int64) {
	ev := types.DecodeEventFund(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	fund := Fund{}
	if err := c.db.Where("pool = ? AND owner = ?", ev.Pool, ev.Owner).First(&fund).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.logger.Error("get fund fail", "err", err)
			return
		}
		fund.Pool = ev.Pool
		fund.Owner = ev.Owner
	}
	fund.Quantity = ev.Quantity
	fund.Height = uint64(height)
	if err := c.db.Save(&fund).Error; err != nil {
		c.logger.Error("save fund fail", "err", err)
	}
}

func (c *ChainIndexer) handleEventProposal(ctx context.Context, event abci.Event, height int64) {
	ev := types.DecodeEventProposal(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	proposal := Proposal{}
	if err := c.db.Where("pool = ? AND proposal_index = ?", ev.Pool, ev.Proposal).First(&proposal).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.logger.Error("get proposal fail", "err", err)
			return
		}
		proposal.Pool = ev.Pool
		proposal.ProposalIndex = ev.Proposal
		proposal.NewHeight = uint64(height)
		proposal.CreateTimestamp = time.Now().Unix()
	}
	if len(ev.Author) > 0 {
		proposal.Author = ev.Author
	}
	proposal.State = ev.State
	proposal.Rejected = ev.Rejected
	proposal.Deposit = ev.Deposit
	if types.ProposalState(ev.State) == types.ProposalStateClosed {
		proposal.CloseHeight = uint64(height)
	}
	if err := c.db.Save(&proposal).Error; err != nil {
		c.logger.Error("save proposal fail", "err", err)
	}
}

func (c *ChainIndexer) handleEventComment(ctx context.Context, event abci.Event, height int64) {
	ev := types.DecodeEventComment(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	comment := Comment{}
	if err := c.db.Where("pool = ? AND proposal = ? AND comment_index = ?", ev.Pool, ev.Proposal, ev.Comment).First(&comment).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.logger.Error("get comment fail", "err", err)
			return
		}
		comment.Pool = ev.Pool
		comment.Proposal = ev.Proposal
		comment.CommentIndex = ev.Comment
	}
	comment.Author = ev.Author
	comment.Data = string(ev.Data)
	comment.Deleted = ev.Deleted
	comment.Height = uint64(height)
	if err := c.db.Save(&comment).Error; err != nil {
		c.logger.Error("save comment fail", "err", err)
	}
}

func (c *ChainIndexer) handleEventTspec(ctx context.Context, event abci.Event, height int64) {
	ev := types.DecodeEventTspec(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	tspec := Tspec{}
	if err := c.db.Where("pool = ? AND proposal = ? AND tspec_index = ?", ev.Pool, ev.Proposal, ev.Tspec).First(&tspec).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.logger.Error("get tspec fail", "err", err)
			return
		}
		tspec.Pool = ev.Pool
		tspec.Proposal = ev.Proposal
		tspec.TspecIndex = ev.Tspec
	}
	tspec.Author = ev.Author
	tspec.Published = ev.Published
	tspec.Chosen = ev.Chosen
	tspec.Deleted = ev.Deleted
	tspec.Height = uint64(height)
	if err := c.db.Save(&tspec).Error; err != nil {
		c.logger.Error("save tspec fail", "err", err)
	}
}

func (c *ChainIndexer) handleEventVote(ctx context.Context, event abci.Event, height int64) {
	ev := types.DecodeEventVote(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	// one row per voter per subject, a revote overwrites
	vote := Vote{}
	if err := c.db.Where("pool = ? AND proposal = ? AND subject = ? AND tspec = ? AND voter = ?",
		ev.Pool, ev.Proposal, ev.Subject, ev.Tspec, ev.Voter).First(&vote).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.logger.Error("get vote fail", "err", err)
			return
		}
		vote.Pool = ev.Pool
		vote.Proposal = ev.Proposal
		vote.Subject = ev.Subject
		vote.Tspec = ev.Tspec
		vote.Voter = ev.Voter
	}
	vote.Positive = ev.Positive
	vote.Height = uint64(height)
	if err := c.db.Save(&vote).Error; err != nil {
		c.logger.Error("save vote fail", "err", err)
	}
}

func (c *ChainIndexer) handleEventStatus(ctx context.Context, event abci.Event, height int64) {
	ev := types.DecodeEventStatus(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	status := Status{
		Pool:     ev.Pool,
		Proposal: ev.Proposal,
		Worker:   ev.Worker,
		Kind:     ev.Kind,
		Data:     string(ev.Data),
		Height:   uint64(height),
	}
	if err := c.db.Create(&status).Error; err != nil {
		c.logger.Error("save status fail", "err", err)
	}
}

func (c *ChainIndexer) handleEventWithdraw(ctx context.Context, event abci.Event, height int64) {
	ev := types.DecodeEventWithdraw(event)
	if ev == nil {
		c.logger.Error("decode event fail", "event", event)
		return
	}
	withdrawal := Withdrawal{
		Pool:          ev.Pool,
		Proposal:      ev.Proposal,
		Worker:        ev.Worker,
		Amount:        ev.Amount,
		PaymentsDone:  ev.PaymentsDone,
		PaymentsTotal: ev.PaymentsTotal,
		State:         ev.State,
		Height:        uint64(height),
	}
	if err := c.db.Create(&withdrawal).Error; err != nil {
		c.logger.Error("save withdrawal fail", "err", err)
	}
}

func (c *ChainIndexer) Start(ctx context.Context) {
	var err error
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.cli == nil {
				c.cli, err = comethttp.New(c.Url, "/websocket")
				if err != nil {
					c.logger.Error("connect fail", "err", err)
					continue
				}
			}
			b, err := c.cli.Status(context.TODO())
			if err != nil {
				c.logger.Error("get status fail", "err", err)
				if !c.cli.IsRunning() {
					c.cli.Stop()
					c.cli, err = comethttp.New(c.Url, "/websocket")
					if err != nil {
						c.logger.Error("reconnect fail", "err", err)
						continue
					}
				}
				continue
			}
			for b.SyncInfo.LatestBlockHeight > c.Height {
				time.Sleep(time.Millisecond * 100)
				c.logger.Info("indexer syncing", "height", c.Height)
				events, err := c.cli.BlockResults(ctx, &c.Height)
				if err != nil {
					c.logger.Error("get block results fail", "err", err)
					if !c.cli.IsRunning() {
						c.cli.Stop()
						c.cli, err = comethttp.New(c.Url, "/websocket")
						if err != nil {
							c.logger.Error("reconnect fail", "err", err)
							continue
						}
					}
					break
				}
				for _, res := range events.TxsResults {
					for _, event := range res.Events {
						c.handleEvent(ctx, event, c.Height)
					}
				}
				if err := c.db.Save(Height{
					Id:     1,
					Height: uint64(c.Height),
				}).Error; err != nil {
					c.logger.Error("save height fail", "err", err)
					break
				}
				c.Height++
			}
		}
	}
}

func (c *ChainIndexer) getPools(page int, pageSize int) ([]Pool, uint64, error) {
	var pools []Pool
	err := c.db.Order("height desc").Offset(page * pageSize).Limit(pageSize).Find(&pools).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&Pool{}).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return pools, total, nil
}

func (c *ChainIndexer) getPoolByName(name string) (Pool, error) {
	var pool Pool
	err := c.db.Where("name = ?", name).First(&pool).Error
	if err != nil {
		return Pool{}, err
	}
	return pool, nil
}

func (c *ChainIndexer) getFundsByPool(pool string, page int, pageSize int) ([]Fund, uint64, error) {
	var funds []Fund
	err := c.db.Where("pool = ?", pool).Order("quantity desc").Offset(page * pageSize).Limit(pageSize).Find(&funds).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&Fund{}).Where("pool = ?", pool).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return funds, total, nil
}

func (c *ChainIndexer) getFundByOwner(pool string, owner string) (Fund, error) {
	var fund Fund
	err := c.db.Where("pool = ? AND owner = ?", pool, owner).First(&fund).Error
	if err != nil {
		return Fund{}, err
	}
	return fund, nil
}

func (c *ChainIndexer) getProposals(pool string, page int, pageSize int) ([]Proposal, uint64, error) {
	var proposals []Proposal
	q := c.db.Model(&Proposal{})
	if len(pool) > 0 {
		q = q.Where("pool = ?", pool)
	}
	err := q.Order("proposal_index desc").Offset(page * pageSize).Limit(pageSize).Find(&proposals).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = q.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return proposals, total, nil
}

func (c *ChainIndexer) getProposalsByState(pool string, state uint64, page int, pageSize int) ([]Proposal, uint64, error) {
	var proposals []Proposal
	q := c.db.Model(&Proposal{}).Where("state = ?", state)
	if len(pool) > 0 {
		q = q.Where("pool = ?", pool)
	}
	err := q.Order("proposal_index desc").Offset(page * pageSize).Limit(pageSize).Find(&proposals).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = q.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return proposals, total, nil
}

func (c *ChainIndexer) getProposalsByAuthor(author string, page int, pageSize int) ([]Proposal, uint64, error) {
	var proposals []Proposal
	err := c.db.Where("author = ?", author).Order("proposal_index desc").Offset(page * pageSize).Limit(pageSize).Find(&proposals).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&Proposal{}).Where("author = ?", author).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return proposals, total, nil
}

func (c *ChainIndexer) getProposal(pool string, proposal uint64) (Proposal, error) {
	var p Proposal
	err := c.db.Where("pool = ? AND proposal_index = ?", pool, proposal).First(&p).Error
	if err != nil {
		return Proposal{}, err
	}
	return p, nil
}

func (c *ChainIndexer) getCommentsByProposal(pool string, proposal uint64, page int, pageSize int) ([]Comment, uint64, error) {
	var comments []Comment
	err := c.db.Where("pool = ? AND proposal = ? AND deleted = ?", pool, proposal, false).
		Order("comment_index asc").Offset(page * pageSize).Limit(pageSize).Find(&comments).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&Comment{}).Where("pool = ? AND proposal = ? AND deleted = ?", pool, proposal, false).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (c *ChainIndexer) getTspecsByProposal(pool string, proposal uint64) ([]Tspec, error) {
	var tspecs []Tspec
	err := c.db.Where("pool = ? AND proposal = ? AND deleted = ?", pool, proposal, false).Order("tspec_index asc").Find(&tspecs).Error
	if err != nil {
		return nil, err
	}
	return tspecs, nil
}

func (c *ChainIndexer) getVotes(pool string, proposal uint64, subject string) ([]Vote, error) {
	var votes []Vote
	q := c.db.Where("pool = ? AND proposal = ?", pool, proposal)
	if len(subject) > 0 {
		q = q.Where("subject = ?", subject)
	}
	err := q.Order("height asc").Find(&votes).Error
	if err != nil {
		return nil, err
	}
	return votes, nil
}

func (c *ChainIndexer) getStatusesByProposal(pool string, proposal uint64, page int, pageSize int) ([]Status, uint64, error) {
	var statuses []Status
	err := c.db.Where("pool = ? AND proposal = ?", pool, proposal).
		Order("height asc").Offset(page * pageSize).Limit(pageSize).Find(&statuses).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&Status{}).Where("pool = ? AND proposal = ?", pool, proposal).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return statuses, total, nil
}

func (c *ChainIndexer) getWithdrawalsByProposal(pool string, proposal uint64) ([]Withdrawal, error) {
	var withdrawals []Withdrawal
	err := c.db.Where("pool = ? AND proposal = ?", pool, proposal).Order("height asc").Find(&withdrawals).Error
	if err != nil {
		return nil, err
	}
	return withdrawals, nil
}

func (c *ChainIndexer) getWithdrawalsByWorker(worker string, page int, pageSize int) ([]Withdrawal, uint64, error) {
	var withdrawals []Withdrawal
	err := c.db.Where("worker = ?", worker).Order("height desc").Offset(page * pageSize).Limit(pageSize).Find(&withdrawals).Error
	if err != nil {
		return nil, 0, err
	}
	var total uint64
	err = c.db.Model(&Withdrawal{}).Where("worker = ?", worker).Count(&total).Error
	if err != nil {
		return nil, 0, err
	}
	return withdrawals, total, nil
}

package agent

import (
	"net/http"

	"github.com/calehh/worker-app/types"
	"github.com/gin-gonic/gin"
)

type Service struct {
	engine     *gin.Engine
	indexer    *ChainIndexer
	listenAddr string
}

func NewService(ListenAddr string, indexer *ChainIndexer) *Service {
	r := gin.Default()
	s := &Service{
		engine:     r,
		indexer:    indexer,
		listenAddr: ListenAddr,
	}
	s.engine.POST("/getPools", s.handleGetPools)
	s.engine.POST("/getFunds", s.handleGetFunds)
	s.engine.POST("/getProposals", s.handleGetProposals)
	s.engine.POST("/getComments", s.handleGetComments)
	s.engine.POST("/getStatuses", s.handleGetStatuses)
	s.engine.POST("/getWithdrawals", s.handleGetWithdrawals)
	return s
}

func (s *Service) Start() {
	s.engine.Run(s.listenAddr)
}

type GetPoolsReq struct {
	Name     string `json:"name"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

type GetPoolsResponse struct {
	Pools []Pool `json:"pools"`
	Total uint64 `json:"total"`
}

func (s *Service) handleGetPools(c *gin.Context) {
	var response GetPoolsResponse
	response.Pools = make([]Pool, 0)
	var requestData GetPoolsReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if requestData.Name != "" {
		pool, err := s.indexer.getPoolByName(requestData.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		response.Pools = append(response.Pools, pool)
		response.Total = 1
		c.JSON(http.StatusOK, response)
		return
	}
	pools, total, err := s.indexer.getPools(requestData.Page, requestData.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	response.Pools = pools
	response.Total = total
	c.JSON(http.StatusOK, response)
}

type GetFundsReq struct {
	Pool     string `json:"pool"`
	Owner    string `json:"owner"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

type GetFundsResponse struct {
	Funds []Fund `json:"funds"`
	Total uint64 `json:"total"`
}

func (s *Service) handleGetFunds(c *gin.Context) {
	var response GetFundsResponse
	response.Funds = make([]Fund, 0)
	var requestData GetFundsReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if requestData.Pool == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pool is required"})
		return
	}
	if requestData.Owner != "" {
		fund, err := s.indexer.getFundByOwner(requestData.Pool, requestData.Owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		response.Funds = append(response.Funds, fund)
		response.Total = 1
		c.JSON(http.StatusOK, response)
		return
	}
	funds, total, err := s.indexer.getFundsByPool(requestData.Pool, requestData.Page, requestData.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	response.Funds = funds
	response.Total = total
	c.JSON(http.StatusOK, response)
}

type VoteInfo struct {
	Subject  string `json:"subject"`
	Tspec    uint64 `json:"tspec"`
	Voter    string `json:"voter"`
	Positive bool   `json:"positive"`
	Height   uint64 `json:"height"`
}

type TspecInfo struct {
	Tspec Tspec      `json:"tspec"`
	Votes []VoteInfo `json:"votes"`
}

type ProposalInfo struct {
	Proposal    Proposal     `json:"proposal"`
	CommentCnt  uint64       `json:"commentCnt"`
	Tspecs      []TspecInfo  `json:"tspecs"`
	ReviewVotes []VoteInfo   `json:"reviewVotes"`
	Withdrawals []Withdrawal `json:"withdrawals"`
}

type GetProposalsReq struct {
	Pool       string `json:"pool"`
	ProposalId uint64 `json:"proposalId"`
	Author     string `json:"author"`
	State      uint64 `json:"state"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
}

type GetProposalResponse struct {
	Proposals []ProposalInfo `json:"proposals"`
	Total     uint64         `json:"total"`
}

func (s *Service) handleGetProposals(c *gin.Context) {
	var response GetProposalResponse
	response.Proposals = make([]ProposalInfo, 0)
	var err error
	var requestData GetProposalsReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if requestData.ProposalId != 0 && requestData.Pool != "" {
		proposalInfo, err := s.getProposalInfo(requestData.Pool, requestData.ProposalId)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		response.Proposals = append(response.Proposals, proposalInfo)
		response.Total = 1
		c.JSON(http.StatusOK, response)
		return
	}

	proposalTotal := uint64(0)
	proposals := make([]Proposal, 0)
	switch {
	case requestData.Author != "":
		proposals, proposalTotal, err = s.indexer.getProposalsByAuthor(requestData.Author, requestData.Page, requestData.PageSize)
	case requestData.State != 0:
		proposals, proposalTotal, err = s.indexer.getProposalsByState(requestData.Pool, requestData.State, requestData.Page, requestData.PageSize)
	default:
		proposals, proposalTotal, err = s.indexer.getProposals(requestData.Pool, requestData.Page, requestData.PageSize)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response.Total = proposalTotal
	for _, proposal := range proposals {
		proposalInfo, err := s.getProposalInfo(proposal.Pool, proposal.ProposalIndex)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		response.Proposals = append(response.Proposals, proposalInfo)
	}
	c.JSON(http.StatusOK, response)
}

func (s *Service) getProposalInfo(pool string, proposalId uint64) (ProposalInfo, error) {
	proposal, err := s.indexer.getProposal(pool, proposalId)
	if err != nil {
		return ProposalInfo{}, err
	}
	_, commentCnt, err := s.indexer.getCommentsByProposal(pool, proposalId, 0, 1)
	if err != nil {
		return ProposalInfo{}, err
	}
	tspecs, err := s.indexer.getTspecsByProposal(pool, proposalId)
	if err != nil {
		return ProposalInfo{}, err
	}
	votes, err := s.indexer.getVotes(pool, proposalId, "")
	if err != nil {
		return ProposalInfo{}, err
	}
	withdrawals, err := s.indexer.getWithdrawalsByProposal(pool, proposalId)
	if err != nil {
		return ProposalInfo{}, err
	}

	tspecVotes := make(map[uint64][]VoteInfo)
	reviewVotes := make([]VoteInfo, 0)
	for _, v := range votes {
		info := VoteInfo{
			Subject:  v.Subject,
			Tspec:    v.Tspec,
			Voter:    v.Voter,
			Positive: v.Positive,
			Height:   v.Height,
		}
		switch v.Subject {
		case types.VoteSubjectTspec:
			tspecVotes[v.Tspec] = append(tspecVotes[v.Tspec], info)
		case types.VoteSubjectReview:
			reviewVotes = append(reviewVotes, info)
		}
	}

	tspecInfos := make([]TspecInfo, 0, len(tspecs))
	for _, t := range tspecs {
		tspecInfos = append(tspecInfos, TspecInfo{
			Tspec: t,
			Votes: tspecVotes[t.TspecIndex],
		})
	}

	return ProposalInfo{
		Proposal:    proposal,
		CommentCnt:  commentCnt,
		Tspecs:      tspecInfos,
		ReviewVotes: reviewVotes,
		Withdrawals: withdrawals,
	}, nil
}

type GetCommentsReq struct {
	Pool       string `json:"pool"`
	ProposalId uint64 `json:"proposalId"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
}

type GetCommentsResponse struct {
	Comments []Comment `json:"comments"`
	Total    uint64    `json:"total"`
}

func (s *Service) handleGetComments(c *gin.Context) {
	var response GetCommentsResponse
	response.Comments = make([]Comment, 0)
	var requestData GetCommentsReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if requestData.ProposalId == 0 || requestData.Pool == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pool and proposalId are required"})
		return
	}
	comments, total, err := s.indexer.getCommentsByProposal(requestData.Pool, requestData.ProposalId, requestData.Page, requestData.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	response.Comments = comments
	response.Total = total
	c.JSON(http.StatusOK, response)
}

type GetStatusesReq struct {
	Pool       string `json:"pool"`
	ProposalId uint64 `json:"proposalId"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
}

type GetStatusesResponse struct {
	Statuses []Status `json:"statuses"`
	Total    uint64   `json:"total"`
}

func (s *Service) handleGetStatuses(c *gin.Context) {
	var response GetStatusesResponse
	response.Statuses = make([]Status, 0)
	var requestData GetStatusesReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if requestData.ProposalId == 0 || requestData.Pool == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pool and proposalId are required"})
		return
	}
	statuses, total, err := s.indexer.getStatusesByProposal(requestData.Pool, requestData.ProposalId, requestData.Page, requestData.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	response.Statuses = statuses
	response.Total = total
	c.JSON(http.StatusOK, response)
}

type GetWithdrawalsReq struct {
	Worker   string `json:"worker"`
	Page     int    `json:"page"`
	PageSize int    `json:"pageSize"`
}

type GetWithdrawalsResponse struct {
	Withdrawals []Withdrawal `json:"withdrawals"`
	Total       uint64       `json:"total"`
}

func (s *Service) handleGetWithdrawals(c *gin.Context) {
	var response GetWithdrawalsResponse
	response.Withdrawals = make([]Withdrawal, 0)
	var requestData GetWithdrawalsReq
	if err := c.ShouldBindJSON(&requestData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if requestData.Worker == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "worker is required"})
		return
	}
	withdrawals, total, err := s.indexer.getWithdrawalsByWorker(requestData.Worker, requestData.Page, requestData.PageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	response.Withdrawals = withdrawals
	response.Total = total
	c.JSON(http.StatusOK, response)
}

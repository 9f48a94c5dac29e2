package agent

// sqlite models

type Height struct {
	Id     uint64 `gorm:"primaryKey" json:"id"`
	Height uint64 `json:"height"`
}

type Pool struct {
	Name            string `gorm:"primaryKey" json:"name"`
	TokenSymbol     string `json:"token_symbol"`
	Height          uint64 `json:"height"`
	CreateTimestamp int64  `json:"create_timestamp"`
}

type Fund struct {
	Id       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Pool     string `gorm:"index:idx_fund_pool_owner" json:"pool"`
	Owner    string `gorm:"index:idx_fund_pool_owner" json:"owner"`
	Quantity uint64 `json:"quantity"`
	Height   uint64 `json:"height"`
}

type Proposal struct {
	Id              uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Pool            string `gorm:"index:idx_proposal_pool_index" json:"pool"`
	ProposalIndex   uint64 `gorm:"index:idx_proposal_pool_index" json:"proposal_index"`
	Author          string `json:"author"`
	State           uint64 `json:"state"`
	Rejected        bool   `json:"rejected"`
	Deposit         uint64 `json:"deposit"`
	NewHeight       uint64 `json:"new_height"`
	CloseHeight     uint64 `json:"close_height"`
	CreateTimestamp int64  `json:"create_timestamp"`
}

type Comment struct {
	Id           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Pool         string `json:"pool"`
	Proposal     uint64 `json:"proposal"`
	CommentIndex uint64 `json:"comment_index"`
	Author       string `json:"author"`
	Data         string `json:"data"`
	Deleted      bool   `json:"deleted"`
	Height       uint64 `json:"height"`
}

type Tspec struct {
	Id         uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Pool       string `json:"pool"`
	Proposal   uint64 `json:"proposal"`
	TspecIndex uint64 `json:"tspec_index"`
	Author     string `json:"author"`
	Published  bool   `json:"published"`
	Chosen     bool   `json:"chosen"`
	Deleted    bool   `json:"deleted"`
	Height     uint64 `json:"height"`
}

type Vote struct {
	Id       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Subject  string `json:"subject"`
	Tspec    uint64 `json:"tspec"`
	Voter    string `json:"voter"`
	Positive bool   `json:"positive"`
	Height   uint64 `json:"height"`
}

type Status struct {
	Id       uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Pool     string `json:"pool"`
	Proposal uint64 `json:"proposal"`
	Worker   string `json:"worker"`
	Kind     uint64 `json:"kind"`
	Data     string `json:"data"`
	Height   uint64 `json:"height"`
}

type Withdrawal struct {
	Id            uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Pool          string `json:"pool"`
	Proposal      uint64 `json:"proposal"`
	Worker        string `json:"worker"`
	Amount        uint64 `json:"amount"`
	PaymentsDone  uint64 `json:"payments_done"`
	PaymentsTotal uint64 `json:"payments_total"`
	State         uint64 `json:"state"`
	Height        uint64 `json:"height"`
}

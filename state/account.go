package state

import (
	"github.com/cometbft/cometbft/crypto/ed25519"
)

// Account is one registered member. Name is the identity every action
// refers to; Delegate marks the account as part of the voting roster.
type Account struct {
	Index    uint64         `json:"index"`
	Name     string         `json:"name"`
	PubKey   ed25519.PubKey `json:"pubKey"`
	Delegate bool           `json:"delegate"`
	Nonce    uint64         `json:"nonce"`
}

func (a *Account) Clone() *Account {
	n := *a
	n.PubKey = append(ed25519.PubKey(nil), a.PubKey...)
	return &n
}

func (a *Account) SetPubKey(pkey []byte) {
	if a.PubKey == nil {
		a.PubKey = make([]byte, len(pkey))
	}
	copy(a.PubKey, pkey)
}

func (a *Account) AddrBytes() []byte {
	pk := ed25519.PubKey(a.PubKey[:])
	return pk.Address()[:]
}

func (a *Account) Address() string {
	pk := ed25519.PubKey(a.PubKey[:])
	return pk.Address().String()
}

func (a *Account) Verify(msg []byte, sigs [][]byte) (succ bool) {
	if len(sigs) != 1 {
		return false
	}
	pk := ed25519.PubKey(a.PubKey[:])
	return pk.VerifySignature(msg, sigs[0])
}

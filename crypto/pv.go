package crypto

import (
	"fmt"
	"os"

	"github.com/cometbft/cometbft/crypto"
	cmtjson "github.com/cometbft/cometbft/libs/json"
	cmtos "github.com/cometbft/cometbft/libs/os"
	"github.com/cometbft/cometbft/privval"
)

// PV wraps the node's file priv validator key so the CLI can sign action
// payloads with the same ed25519 identity the validator runs under.
type PV struct {
	priv crypto.PrivKey
	pub  crypto.PubKey
}

// LoadFilePV reads a priv_validator_key.json. Exits on a missing or
// malformed file; the CLI has nothing useful to do without a key.
func LoadFilePV(keyFilePath string) *PV {
	dat, err := os.ReadFile(keyFilePath)
	if err != nil {
		cmtos.Exit(err.Error())
	}
	pvKey := privval.FilePVKey{}
	err = cmtjson.Unmarshal(dat, &pvKey)
	if err != nil {
		cmtos.Exit(fmt.Sprintf("Error reading PrivValidator key from %v: %v\n", keyFilePath, err))
	}

	return &PV{
		priv: pvKey.PrivKey,
		pub:  pvKey.PubKey,
	}
}

func (pv *PV) PublicKey() []byte {
	return pv.pub.Bytes()
}

func (pv *PV) Address() string {
	return pv.pub.Address().String()
}

func (pv *PV) Sign(data []byte) ([]byte, error) {
	return pv.priv.Sign(data)
}

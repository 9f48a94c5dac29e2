package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/calehh/worker-app/crypto"
	"github.com/calehh/worker-app/state"
	"github.com/calehh/worker-app/tx"
	"github.com/cometbft/cometbft/rpc/client/http"
)

// txArguments are the flags every signing command shares.
type txArguments struct {
	Url    string
	Signer string
	Nonce  uint64
	Skey   string
	NoSend bool
}

func sendTx(args txArguments, txType tx.WorkerTxType, stx any) {
	cli, err := http.New(args.Url, "/websocket")
	if err != nil {
		fmt.Printf("new client err:%v\n", err)
		return
	}
	ctx := context.Background()
	gres, err := cli.Genesis(ctx)
	if err != nil {
		fmt.Printf("get chain genesis err:%v\n", err)
		return
	}
	chainId := gres.Genesis.ChainID
	nonce := args.Nonce
	if nonce == 0 {
		act, err := queryAccount(args.Url, args.Signer)
		if err != nil {
			return
		}
		nonce = act.Nonce
	}
	btx := tx.WorkerTx{
		Version: tx.WorkerTxVersion1,
		Type:    txType,
		Nonce:   nonce,
		Signer:  args.Signer,
		Tx:      stx,
	}
	dat, err := btx.SigData([]byte(chainId))
	if err != nil {
		fmt.Printf("tx sign data err:%v\n", err)
		return
	}
	pv := crypto.LoadFilePV(args.Skey)
	sig, err := pv.Sign(dat)
	if err != nil {
		fmt.Printf("sign tx err:%v\n", err)
		return
	}
	sigs := [][]byte{sig}
	if args.NoSend {
		fmt.Println("transaction signatures:")
		for _, sig := range sigs {
			fmt.Println(hex.EncodeToString(sig))
		}
		return
	}
	btx.Sig = sigs
	dat, err = tx.MarshalWorkerTx(&btx)
	if err != nil {
		fmt.Printf("marshal tx err:%v\n", err)
		return
	}
	res, err := cli.BroadcastTxSync(ctx, dat)
	if err != nil {
		fmt.Printf("broadcast tx err:%v\n", err)
		return
	}
	dat, _ = json.Marshal(res)
	fmt.Printf("%v\n", string(dat))
}

func queryAccount(url string, name string) (*state.Account, error) {
	cli, err := http.New(url, "/websocket")
	if err != nil {
		fmt.Printf("new client err:%v\n", err)
		return nil, err
	}
	ctx := context.Background()
	res, err := cli.ABCIQuery(ctx, "/accounts/", []byte(name))
	if err != nil {
		fmt.Printf("request err:%v\n", err)
		return nil, err
	}
	if res.Response.Code != 0 {
		fmt.Printf("%#v\n", res)
		return nil, errors.New("account not found")
	}
	var act state.Account
	err = json.Unmarshal(res.Response.Value, &act)
	if err != nil {
		return nil, err
	}
	return &act, err
}

package main

import (
	"github.com/calehh/worker-app/tx"
	"github.com/spf13/cobra"
)

type createPoolArguments struct {
	txArguments
	Name        string
	TokenSymbol string
}

var createPoolArgs createPoolArguments

var createPoolCmd = &cobra.Command{
	Use:   "createpool",
	Short: "Create a funding pool named after the signer",
	Long:  ``,
	Run:   createPoolRun,
}

func init() {
	txFlags(createPoolCmd, &createPoolArgs.txArguments)
	createPoolCmd.Flags().StringVarP(&createPoolArgs.Name, "pool", "p", "", "pool name, must equal the signer name")
	createPoolCmd.Flags().StringVarP(&createPoolArgs.TokenSymbol, "symbol", "t", "", "token symbol")
}

func createPoolRun(cmd *cobra.Command, args []string) {
	sendTx(createPoolArgs.txArguments, tx.WorkerTxTypeCreatePool, &tx.CreatePoolTx{
		Name:        createPoolArgs.Name,
		TokenSymbol: createPoolArgs.TokenSymbol,
	})
}

type depositArguments struct {
	txArguments
	Pool   string
	Amount uint64
}

var depositArgs depositArguments

var depositCmd = &cobra.Command{
	Use:   "deposit",
	Short: "Credit the signer's fund inside a pool",
	Long:  ``,
	Run:   depositRun,
}

func init() {
	txFlags(depositCmd, &depositArgs.txArguments)
	depositCmd.Flags().StringVarP(&depositArgs.Pool, "pool", "p", "", "pool name")
	depositCmd.Flags().Uint64VarP(&depositArgs.Amount, "amount", "m", 0, "deposit amount")
}

func depositRun(cmd *cobra.Command, args []string) {
	sendTx(depositArgs.txArguments, tx.WorkerTxTypeDeposit, &tx.DepositTx{
		Pool:   depositArgs.Pool,
		Amount: depositArgs.Amount,
	})
}

type setFundArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Tspec    uint64
	Sponsor  string
	Amount   uint64
}

var setFundArgs setFundArguments

var setFundCmd = &cobra.Command{
	Use:   "setfund",
	Short: "Pledge a sponsor's fund to a tspec application",
	Long:  ``,
	Run:   setFundRun,
}

func init() {
	txFlags(setFundCmd, &setFundArgs.txArguments)
	setFundCmd.Flags().StringVarP(&setFundArgs.Pool, "pool", "p", "", "pool name")
	setFundCmd.Flags().Uint64VarP(&setFundArgs.Proposal, "proposal", "i", 0, "proposal id")
	setFundCmd.Flags().Uint64VarP(&setFundArgs.Tspec, "tspec", "t", 0, "tspec id")
	setFundCmd.Flags().StringVarP(&setFundArgs.Sponsor, "sponsor", "f", "", "sponsor account name")
	setFundCmd.Flags().Uint64VarP(&setFundArgs.Amount, "amount", "m", 0, "pledged amount")
}

func setFundRun(cmd *cobra.Command, args []string) {
	sendTx(setFundArgs.txArguments, tx.WorkerTxTypeSetFund, &tx.SetFundTx{
		Pool:     setFundArgs.Pool,
		Proposal: setFundArgs.Proposal,
		Tspec:    setFundArgs.Tspec,
		Sponsor:  setFundArgs.Sponsor,
		Amount:   setFundArgs.Amount,
	})
}

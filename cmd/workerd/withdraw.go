package main

import (
	"github.com/calehh/worker-app/tx"
	"github.com/spf13/cobra"
)

type withdrawArguments struct {
	txArguments
	Pool     string
	Proposal uint64
}

var withdrawArgs withdrawArguments

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Claim the next installment of the escrowed budget",
	Long:  ``,
	Run:   withdrawRun,
}

func init() {
	txFlags(withdrawCmd, &withdrawArgs.txArguments)
	withdrawCmd.Flags().StringVarP(&withdrawArgs.Pool, "pool", "p", "", "pool name")
	withdrawCmd.Flags().Uint64VarP(&withdrawArgs.Proposal, "proposal", "i", 0, "proposal id")
}

func withdrawRun(cmd *cobra.Command, args []string) {
	sendTx(withdrawArgs.txArguments, tx.WorkerTxTypeWithdraw, &tx.WithdrawTx{
		Pool:     withdrawArgs.Pool,
		Proposal: withdrawArgs.Proposal,
	})
}

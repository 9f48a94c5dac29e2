package main

import (
	"github.com/calehh/worker-app/tx"
	"github.com/spf13/cobra"
)

type startWorkArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Worker   string
}

var startWorkArgs startWorkArguments

var startWorkCmd = &cobra.Command{
	Use:   "startwork",
	Short: "Assign the worker and enter the work phase",
	Long:  ``,
	Run:   startWorkRun,
}

func init() {
	txFlags(startWorkCmd, &startWorkArgs.txArguments)
	startWorkCmd.Flags().StringVarP(&startWorkArgs.Pool, "pool", "p", "", "pool name")
	startWorkCmd.Flags().Uint64VarP(&startWorkArgs.Proposal, "proposal", "i", 0, "proposal id")
	startWorkCmd.Flags().StringVarP(&startWorkArgs.Worker, "worker", "w", "", "worker account name")
}

func startWorkRun(cmd *cobra.Command, args []string) {
	sendTx(startWorkArgs.txArguments, tx.WorkerTxTypeStartWork, &tx.StartWorkTx{
		Pool:     startWorkArgs.Pool,
		Proposal: startWorkArgs.Proposal,
		Worker:   startWorkArgs.Worker,
	})
}

type cancelWorkArguments struct {
	txArguments
	Pool     string
	Proposal uint64
}

var cancelWorkArgs cancelWorkArguments

var cancelWorkCmd = &cobra.Command{
	Use:   "cancelwork",
	Short: "Cancel the engagement and refund the escrow",
	Long:  ``,
	Run:   cancelWorkRun,
}

func init() {
	txFlags(cancelWorkCmd, &cancelWorkArgs.txArguments)
	cancelWorkCmd.Flags().StringVarP(&cancelWorkArgs.Pool, "pool", "p", "", "pool name")
	cancelWorkCmd.Flags().Uint64VarP(&cancelWorkArgs.Proposal, "proposal", "i", 0, "proposal id")
}

func cancelWorkRun(cmd *cobra.Command, args []string) {
	sendTx(cancelWorkArgs.txArguments, tx.WorkerTxTypeCancelWork, &tx.CancelWorkTx{
		Pool:     cancelWorkArgs.Pool,
		Proposal: cancelWorkArgs.Proposal,
	})
}

type postStatusArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Kind     uint64
	Data     string
}

var postStatusArgs postStatusArguments

var postStatusCmd = &cobra.Command{
	Use:   "poststatus",
	Short: "Post a work status report, final kind triggers review",
	Long:  ``,
	Run:   postStatusRun,
}

func init() {
	txFlags(postStatusCmd, &postStatusArgs.txArguments)
	postStatusCmd.Flags().StringVarP(&postStatusArgs.Pool, "pool", "p", "", "pool name")
	postStatusCmd.Flags().Uint64VarP(&postStatusArgs.Proposal, "proposal", "i", 0, "proposal id")
	postStatusCmd.Flags().Uint64VarP(&postStatusArgs.Kind, "kind", "k", 1, "1 progress, 2 final")
	postStatusCmd.Flags().StringVarP(&postStatusArgs.Data, "data", "d", "", "status report body")
}

func postStatusRun(cmd *cobra.Command, args []string) {
	sendTx(postStatusArgs.txArguments, tx.WorkerTxTypePostStatus, &tx.PostStatusTx{
		Pool:     postStatusArgs.Pool,
		Proposal: postStatusArgs.Proposal,
		Kind:     postStatusArgs.Kind,
		Data:     []byte(postStatusArgs.Data),
	})
}

type acceptWorkArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Comment  string
}

var acceptWorkArgs acceptWorkArguments

var acceptWorkCmd = &cobra.Command{
	Use:   "acceptwork",
	Short: "Tspec author accepts the delivered work",
	Long:  ``,
	Run:   acceptWorkRun,
}

func init() {
	txFlags(acceptWorkCmd, &acceptWorkArgs.txArguments)
	acceptWorkCmd.Flags().StringVarP(&acceptWorkArgs.Pool, "pool", "p", "", "pool name")
	acceptWorkCmd.Flags().Uint64VarP(&acceptWorkArgs.Proposal, "proposal", "i", 0, "proposal id")
	acceptWorkCmd.Flags().StringVarP(&acceptWorkArgs.Comment, "comment", "c", "", "optional comment")
}

func acceptWorkRun(cmd *cobra.Command, args []string) {
	sendTx(acceptWorkArgs.txArguments, tx.WorkerTxTypeAcceptWork, &tx.AcceptWorkTx{
		Pool:     acceptWorkArgs.Pool,
		Proposal: acceptWorkArgs.Proposal,
		Comment:  []byte(acceptWorkArgs.Comment),
	})
}

type rejectWorkArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Comment  string
}

var rejectWorkArgs rejectWorkArguments

var rejectWorkCmd = &cobra.Command{
	Use:   "rejectwork",
	Short: "Tspec author sends the work back, comment required",
	Long:  ``,
	Run:   rejectWorkRun,
}

func init() {
	txFlags(rejectWorkCmd, &rejectWorkArgs.txArguments)
	rejectWorkCmd.Flags().StringVarP(&rejectWorkArgs.Pool, "pool", "p", "", "pool name")
	rejectWorkCmd.Flags().Uint64VarP(&rejectWorkArgs.Proposal, "proposal", "i", 0, "proposal id")
	rejectWorkCmd.Flags().StringVarP(&rejectWorkArgs.Comment, "comment", "c", "", "rejection comment, required")
}

func rejectWorkRun(cmd *cobra.Command, args []string) {
	sendTx(rejectWorkArgs.txArguments, tx.WorkerTxTypeRejectWork, &tx.RejectWorkTx{
		Pool:     rejectWorkArgs.Pool,
		Proposal: rejectWorkArgs.Proposal,
		Comment:  []byte(rejectWorkArgs.Comment),
	})
}

type reviewWorkArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Positive bool
	Comment  string
}

var reviewWorkArgs reviewWorkArguments

var reviewWorkCmd = &cobra.Command{
	Use:   "reviewwork",
	Short: "Cast a delegate review vote on delivered work",
	Long:  ``,
	Run:   reviewWorkRun,
}

func init() {
	txFlags(reviewWorkCmd, &reviewWorkArgs.txArguments)
	reviewWorkCmd.Flags().StringVarP(&reviewWorkArgs.Pool, "pool", "p", "", "pool name")
	reviewWorkCmd.Flags().Uint64VarP(&reviewWorkArgs.Proposal, "proposal", "i", 0, "proposal id")
	reviewWorkCmd.Flags().BoolVarP(&reviewWorkArgs.Positive, "positive", "y", false, "vote in favor")
	reviewWorkCmd.Flags().StringVarP(&reviewWorkArgs.Comment, "comment", "c", "", "review comment, required")
}

func reviewWorkRun(cmd *cobra.Command, args []string) {
	sendTx(reviewWorkArgs.txArguments, tx.WorkerTxTypeReviewWork, &tx.ReviewWorkTx{
		Pool:     reviewWorkArgs.Pool,
		Proposal: reviewWorkArgs.Proposal,
		Positive: reviewWorkArgs.Positive,
		Comment:  []byte(reviewWorkArgs.Comment),
	})
}

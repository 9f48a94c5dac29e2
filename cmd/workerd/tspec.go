package main

import (
	"github.com/calehh/worker-app/tx"
	"github.com/spf13/cobra"
)

func termsFlags(cmd *cobra.Command, terms *tx.TspecTerms) {
	cmd.Flags().Uint64VarP(&terms.SpecCost, "specCost", "", 0, "specification cost")
	cmd.Flags().Uint64VarP(&terms.SpecEta, "specEta", "", 0, "specification eta, seconds")
	cmd.Flags().Uint64VarP(&terms.DevCost, "devCost", "", 0, "development cost")
	cmd.Flags().Uint64VarP(&terms.DevEta, "devEta", "", 0, "development eta, seconds")
	cmd.Flags().Uint64VarP(&terms.PaymentsCount, "payments", "", 1, "number of installments")
}

type addTspecArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Data     string
	Terms    tx.TspecTerms
}

var addTspecArgs addTspecArguments

var addTspecCmd = &cobra.Command{
	Use:   "addtspec",
	Short: "Submit a tspec application for a proposal",
	Long:  ``,
	Run:   addTspecRun,
}

func init() {
	txFlags(addTspecCmd, &addTspecArgs.txArguments)
	addTspecCmd.Flags().StringVarP(&addTspecArgs.Pool, "pool", "p", "", "pool name")
	addTspecCmd.Flags().Uint64VarP(&addTspecArgs.Proposal, "proposal", "i", 0, "proposal id")
	addTspecCmd.Flags().StringVarP(&addTspecArgs.Data, "data", "d", "", "tspec text")
	termsFlags(addTspecCmd, &addTspecArgs.Terms)
}

func addTspecRun(cmd *cobra.Command, args []string) {
	sendTx(addTspecArgs.txArguments, tx.WorkerTxTypeAddTspec, &tx.AddTspecTx{
		Pool:     addTspecArgs.Pool,
		Proposal: addTspecArgs.Proposal,
		Data:     []byte(addTspecArgs.Data),
		Terms:    addTspecArgs.Terms,
	})
}

type editTspecArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Tspec    uint64
	Data     string
	Terms    tx.TspecTerms
}

var editTspecArgs editTspecArguments

var editTspecCmd = &cobra.Command{
	Use:   "edittspec",
	Short: "Revise a tspec application",
	Long:  ``,
	Run:   editTspecRun,
}

func init() {
	txFlags(editTspecCmd, &editTspecArgs.txArguments)
	editTspecCmd.Flags().StringVarP(&editTspecArgs.Pool, "pool", "p", "", "pool name")
	editTspecCmd.Flags().Uint64VarP(&editTspecArgs.Proposal, "proposal", "i", 0, "proposal id")
	editTspecCmd.Flags().Uint64VarP(&editTspecArgs.Tspec, "tspec", "t", 0, "tspec id")
	editTspecCmd.Flags().StringVarP(&editTspecArgs.Data, "data", "d", "", "tspec text")
	termsFlags(editTspecCmd, &editTspecArgs.Terms)
}

func editTspecRun(cmd *cobra.Command, args []string) {
	sendTx(editTspecArgs.txArguments, tx.WorkerTxTypeEditTspec, &tx.EditTspecTx{
		Pool:     editTspecArgs.Pool,
		Proposal: editTspecArgs.Proposal,
		Tspec:    editTspecArgs.Tspec,
		Data:     []byte(editTspecArgs.Data),
		Terms:    editTspecArgs.Terms,
	})
}

type delTspecArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Tspec    uint64
}

var delTspecArgs delTspecArguments

var delTspecCmd = &cobra.Command{
	Use:   "deltspec",
	Short: "Withdraw a tspec application that was never chosen",
	Long:  ``,
	Run:   delTspecRun,
}

func init() {
	txFlags(delTspecCmd, &delTspecArgs.txArguments)
	delTspecCmd.Flags().StringVarP(&delTspecArgs.Pool, "pool", "p", "", "pool name")
	delTspecCmd.Flags().Uint64VarP(&delTspecArgs.Proposal, "proposal", "i", 0, "proposal id")
	delTspecCmd.Flags().Uint64VarP(&delTspecArgs.Tspec, "tspec", "t", 0, "tspec id")
}

func delTspecRun(cmd *cobra.Command, args []string) {
	sendTx(delTspecArgs.txArguments, tx.WorkerTxTypeDelTspec, &tx.DelTspecTx{
		Pool:     delTspecArgs.Pool,
		Proposal: delTspecArgs.Proposal,
		Tspec:    delTspecArgs.Tspec,
	})
}

type voteTspecArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Tspec    uint64
	Positive bool
	Comment  string
}

var voteTspecArgs voteTspecArguments

var voteTspecCmd = &cobra.Command{
	Use:   "votetspec",
	Short: "Cast a delegate vote on a tspec application",
	Long:  ``,
	Run:   voteTspecRun,
}

func init() {
	txFlags(voteTspecCmd, &voteTspecArgs.txArguments)
	voteTspecCmd.Flags().StringVarP(&voteTspecArgs.Pool, "pool", "p", "", "pool name")
	voteTspecCmd.Flags().Uint64VarP(&voteTspecArgs.Proposal, "proposal", "i", 0, "proposal id")
	voteTspecCmd.Flags().Uint64VarP(&voteTspecArgs.Tspec, "tspec", "t", 0, "tspec id")
	voteTspecCmd.Flags().BoolVarP(&voteTspecArgs.Positive, "positive", "y", false, "vote in favor")
	voteTspecCmd.Flags().StringVarP(&voteTspecArgs.Comment, "comment", "c", "", "optional vote comment")
}

func voteTspecRun(cmd *cobra.Command, args []string) {
	sendTx(voteTspecArgs.txArguments, tx.WorkerTxTypeVoteTspec, &tx.VoteTspecTx{
		Pool:     voteTspecArgs.Pool,
		Proposal: voteTspecArgs.Proposal,
		Tspec:    voteTspecArgs.Tspec,
		Positive: voteTspecArgs.Positive,
		Comment:  []byte(voteTspecArgs.Comment),
	})
}

type publishTspecArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Data     string
}

var publishTspecArgs publishTspecArguments

var publishTspecCmd = &cobra.Command{
	Use:   "publishtspec",
	Short: "Publish the final technical specification text",
	Long:  ``,
	Run:   publishTspecRun,
}

func init() {
	txFlags(publishTspecCmd, &publishTspecArgs.txArguments)
	publishTspecCmd.Flags().StringVarP(&publishTspecArgs.Pool, "pool", "p", "", "pool name")
	publishTspecCmd.Flags().Uint64VarP(&publishTspecArgs.Proposal, "proposal", "i", 0, "proposal id")
	publishTspecCmd.Flags().StringVarP(&publishTspecArgs.Data, "data", "d", "", "final tspec text")
}

func publishTspecRun(cmd *cobra.Command, args []string) {
	sendTx(publishTspecArgs.txArguments, tx.WorkerTxTypePublishTspec, &tx.PublishTspecTx{
		Pool:     publishTspecArgs.Pool,
		Proposal: publishTspecArgs.Proposal,
		Data:     []byte(publishTspecArgs.Data),
	})
}

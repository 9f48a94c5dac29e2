package main

import (
	"github.com/calehh/worker-app/tx"
	"github.com/spf13/cobra"
)

type addProposalArguments struct {
	txArguments
	Pool  string
	Title string
	Data  string
}

var addProposalArgs addProposalArguments

var addProposalCmd = &cobra.Command{
	Use:   "addproposal",
	Short: "Submit a new work proposal",
	Long:  ``,
	Run:   addProposalRun,
}

func init() {
	txFlags(addProposalCmd, &addProposalArgs.txArguments)
	addProposalCmd.Flags().StringVarP(&addProposalArgs.Pool, "pool", "p", "", "pool name")
	addProposalCmd.Flags().StringVarP(&addProposalArgs.Title, "title", "t", "", "proposal title")
	addProposalCmd.Flags().StringVarP(&addProposalArgs.Data, "data", "d", "", "proposal body")
}

func addProposalRun(cmd *cobra.Command, args []string) {
	sendTx(addProposalArgs.txArguments, tx.WorkerTxTypeAddProposal, &tx.AddProposalTx{
		Pool:  addProposalArgs.Pool,
		Title: addProposalArgs.Title,
		Data:  []byte(addProposalArgs.Data),
	})
}

type editProposalArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Title    string
	Data     string
}

var editProposalArgs editProposalArguments

var editProposalCmd = &cobra.Command{
	Use:   "editproposal",
	Short: "Replace a proposal's title and body",
	Long:  ``,
	Run:   editProposalRun,
}

func init() {
	txFlags(editProposalCmd, &editProposalArgs.txArguments)
	editProposalCmd.Flags().StringVarP(&editProposalArgs.Pool, "pool", "p", "", "pool name")
	editProposalCmd.Flags().Uint64VarP(&editProposalArgs.Proposal, "proposal", "i", 0, "proposal id")
	editProposalCmd.Flags().StringVarP(&editProposalArgs.Title, "title", "t", "", "proposal title")
	editProposalCmd.Flags().StringVarP(&editProposalArgs.Data, "data", "d", "", "proposal body")
}

func editProposalRun(cmd *cobra.Command, args []string) {
	sendTx(editProposalArgs.txArguments, tx.WorkerTxTypeEditProposal, &tx.EditProposalTx{
		Pool:     editProposalArgs.Pool,
		Proposal: editProposalArgs.Proposal,
		Title:    editProposalArgs.Title,
		Data:     []byte(editProposalArgs.Data),
	})
}

type delProposalArguments struct {
	txArguments
	Pool     string
	Proposal uint64
}

var delProposalArgs delProposalArguments

var delProposalCmd = &cobra.Command{
	Use:   "delproposal",
	Short: "Delete a proposal still in tspec application",
	Long:  ``,
	Run:   delProposalRun,
}

func init() {
	txFlags(delProposalCmd, &delProposalArgs.txArguments)
	delProposalCmd.Flags().StringVarP(&delProposalArgs.Pool, "pool", "p", "", "pool name")
	delProposalCmd.Flags().Uint64VarP(&delProposalArgs.Proposal, "proposal", "i", 0, "proposal id")
}

func delProposalRun(cmd *cobra.Command, args []string) {
	sendTx(delProposalArgs.txArguments, tx.WorkerTxTypeDelProposal, &tx.DelProposalTx{
		Pool:     delProposalArgs.Pool,
		Proposal: delProposalArgs.Proposal,
	})
}

type voteProposalArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Positive bool
}

var voteProposalArgs voteProposalArguments

var voteProposalCmd = &cobra.Command{
	Use:   "voteproposal",
	Short: "Cast a delegate vote on a proposal",
	Long:  ``,
	Run:   voteProposalRun,
}

func init() {
	txFlags(voteProposalCmd, &voteProposalArgs.txArguments)
	voteProposalCmd.Flags().StringVarP(&voteProposalArgs.Pool, "pool", "p", "", "pool name")
	voteProposalCmd.Flags().Uint64VarP(&voteProposalArgs.Proposal, "proposal", "i", 0, "proposal id")
	voteProposalCmd.Flags().BoolVarP(&voteProposalArgs.Positive, "positive", "y", false, "vote in favor")
}

func voteProposalRun(cmd *cobra.Command, args []string) {
	sendTx(voteProposalArgs.txArguments, tx.WorkerTxTypeVoteProposal, &tx.VoteProposalTx{
		Pool:     voteProposalArgs.Pool,
		Proposal: voteProposalArgs.Proposal,
		Positive: voteProposalArgs.Positive,
	})
}

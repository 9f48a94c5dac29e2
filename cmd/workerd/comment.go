package main

import (
	"github.com/calehh/worker-app/tx"
	"github.com/spf13/cobra"
)

type addCommentArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Data     string
}

var addCommentArgs addCommentArguments

var addCommentCmd = &cobra.Command{
	Use:   "addcomment",
	Short: "Attach a comment to a proposal",
	Long:  ``,
	Run:   addCommentRun,
}

func init() {
	txFlags(addCommentCmd, &addCommentArgs.txArguments)
	addCommentCmd.Flags().StringVarP(&addCommentArgs.Pool, "pool", "p", "", "pool name")
	addCommentCmd.Flags().Uint64VarP(&addCommentArgs.Proposal, "proposal", "i", 0, "proposal id")
	addCommentCmd.Flags().StringVarP(&addCommentArgs.Data, "data", "d", "", "comment body")
}

func addCommentRun(cmd *cobra.Command, args []string) {
	sendTx(addCommentArgs.txArguments, tx.WorkerTxTypeAddComment, &tx.AddCommentTx{
		Pool:     addCommentArgs.Pool,
		Proposal: addCommentArgs.Proposal,
		Data:     []byte(addCommentArgs.Data),
	})
}

type editCommentArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Comment  uint64
	Data     string
}

var editCommentArgs editCommentArguments

var editCommentCmd = &cobra.Command{
	Use:   "editcomment",
	Short: "Replace a comment's body",
	Long:  ``,
	Run:   editCommentRun,
}

func init() {
	txFlags(editCommentCmd, &editCommentArgs.txArguments)
	editCommentCmd.Flags().StringVarP(&editCommentArgs.Pool, "pool", "p", "", "pool name")
	editCommentCmd.Flags().Uint64VarP(&editCommentArgs.Proposal, "proposal", "i", 0, "proposal id")
	editCommentCmd.Flags().Uint64VarP(&editCommentArgs.Comment, "comment", "c", 0, "comment id")
	editCommentCmd.Flags().StringVarP(&editCommentArgs.Data, "data", "d", "", "comment body")
}

func editCommentRun(cmd *cobra.Command, args []string) {
	sendTx(editCommentArgs.txArguments, tx.WorkerTxTypeEditComment, &tx.EditCommentTx{
		Pool:     editCommentArgs.Pool,
		Proposal: editCommentArgs.Proposal,
		Comment:  editCommentArgs.Comment,
		Data:     []byte(editCommentArgs.Data),
	})
}

type delCommentArguments struct {
	txArguments
	Pool     string
	Proposal uint64
	Comment  uint64
}

var delCommentArgs delCommentArguments

var delCommentCmd = &cobra.Command{
	Use:   "delcomment",
	Short: "Delete a comment",
	Long:  ``,
	Run:   delCommentRun,
}

func init() {
	txFlags(delCommentCmd, &delCommentArgs.txArguments)
	delCommentCmd.Flags().StringVarP(&delCommentArgs.Pool, "pool", "p", "", "pool name")
	delCommentCmd.Flags().Uint64VarP(&delCommentArgs.Proposal, "proposal", "i", 0, "proposal id")
	delCommentCmd.Flags().Uint64VarP(&delCommentArgs.Comment, "comment", "c", 0, "comment id")
}

func delCommentRun(cmd *cobra.Command, args []string) {
	sendTx(delCommentArgs.txArguments, tx.WorkerTxTypeDelComment, &tx.DelCommentTx{
		Pool:     delCommentArgs.Pool,
		Proposal: delCommentArgs.Proposal,
		Comment:  delCommentArgs.Comment,
	})
}

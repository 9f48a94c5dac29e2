package main

import (
	"fmt"
	"os"
)

func main() {
	clCmd.AddCommand(accountCmd)
	clCmd.AddCommand(initCmd)
	clCmd.AddCommand(versionCmd)
	clCmd.AddCommand(pubkeyCmd)
	clCmd.AddCommand(signCmd)
	clCmd.AddCommand(createPoolCmd)
	clCmd.AddCommand(depositCmd)
	clCmd.AddCommand(setFundCmd)
	clCmd.AddCommand(addProposalCmd)
	clCmd.AddCommand(editProposalCmd)
	clCmd.AddCommand(delProposalCmd)
	clCmd.AddCommand(voteProposalCmd)
	clCmd.AddCommand(addCommentCmd)
	clCmd.AddCommand(editCommentCmd)
	clCmd.AddCommand(delCommentCmd)
	clCmd.AddCommand(addTspecCmd)
	clCmd.AddCommand(editTspecCmd)
	clCmd.AddCommand(delTspecCmd)
	clCmd.AddCommand(voteTspecCmd)
	clCmd.AddCommand(publishTspecCmd)
	clCmd.AddCommand(startWorkCmd)
	clCmd.AddCommand(cancelWorkCmd)
	clCmd.AddCommand(postStatusCmd)
	clCmd.AddCommand(acceptWorkCmd)
	clCmd.AddCommand(rejectWorkCmd)
	clCmd.AddCommand(reviewWorkCmd)
	clCmd.AddCommand(withdrawCmd)
	if err := clCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

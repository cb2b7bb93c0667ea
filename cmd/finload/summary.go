package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"finload/app/financial"
)

var summaryFlags struct {
	sep      string
	encoding string
}

var summaryCmd = &cobra.Command{
	Use:   "summary <fec-file>",
	Short: "Print the trial balance of an FEC export",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func init() {
	f := summaryCmd.Flags()
	f.StringVarP(&summaryFlags.sep, "sep", "s", "", "field separator (default |)")
	f.StringVarP(&summaryFlags.encoding, "encoding", "e", "", "text encoding (default latin1)")
}

func runSummary(cmd *cobra.Command, args []string) error {
	loader, err := newLoader(summaryFlags.sep, summaryFlags.encoding, false)
	if err != nil {
		return err
	}

	result, err := loader.LoadFile(args[0], financial.FEC)
	if err != nil {
		return err
	}
	ledger := result.(*financial.Ledger)

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CompteNum\tEntries\tCredit\tDebit\tSolde\t")
	for _, b := range ledger.BalancesByAccount() {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t\n", b.CompteNum, b.Entries,
			b.Credit.StringFixed(2), b.Debit.StringFixed(2), b.Solde.StringFixed(2))
	}
	total := ledger.Totals()
	fmt.Fprintf(tw, "Total\t%d\t%s\t%s\t%s\t\n", total.Entries,
		total.Credit.StringFixed(2), total.Debit.StringFixed(2), total.Solde.StringFixed(2))
	return tw.Flush()
}

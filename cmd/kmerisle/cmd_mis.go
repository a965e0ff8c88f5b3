package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sequtil/kmerisle/centers"
	"github.com/sequtil/kmerisle/mis"
)

func newMISCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "mis k d",
		Short: "greedy maximal independent set of the k-mer edit graph",
		Long: `mis greedily picks k-mers pairwise farther than edit distance d apart
until no key of the space is left uncovered. The output is a center list
in the format the partition subcommands read.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("k must be an integer: %q", args[0])
			}
			d, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("d must be an integer: %q", args[1])
			}

			set, err := mis.Greedy(k, d)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"k": k, "d": d, "size": len(set)}).
				Info("independent set found")

			return writeOutput(out, func(w io.Writer) error {
				return centers.Write(w, set, k)
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file (- for stdout)")
	return cmd
}

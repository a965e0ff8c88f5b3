package main

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sequtil/kmerisle/lshest"
)

func newLSHCmd() *cobra.Command {
	var samples int
	var seed int64
	cmd := &cobra.Command{
		Use:   "lsh k list_file",
		Short: "estimate center-list collision rates by sampling",
		Long: `lsh loads a per-key center listing and samples random key pairs at each
edit distance up to k/2+1, reporting how often a pair shares a center.
Randomized and statistical; fix --seed to reproduce a report.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("k must be an integer: %q", args[0])
			}

			lists, err := lshest.Load(args[1], k)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"k": k, "samples": samples, "seed": seed}).
				Info("sampling collision rates")

			rates, err := lists.Estimate(k/2+1, samples, lshest.NewRNG(seed))
			if err != nil {
				return err
			}

			fmt.Println("dist share%")
			for i, rate := range rates {
				fmt.Printf("%d %.2f%%\n", i+1, rate*100)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 100000, "sampled pairs per distance")
	cmd.Flags().Int64Var(&seed, "seed", 0, "rng seed (0 = fixed default)")
	return cmd
}

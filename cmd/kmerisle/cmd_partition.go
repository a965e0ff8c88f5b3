package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sequtil/kmerisle/assign"
	"github.com/sequtil/kmerisle/centers"
	"github.com/sequtil/kmerisle/island"
)

// partitionArgs are the positional arguments shared by every partition
// subcommand: k p q centers_file.
type partitionArgs struct {
	k, p, q     int
	centersFile string
}

// parsePartitionArgs validates the four positional arguments. cobra has
// already enforced the argument count; this only parses the integers.
func parsePartitionArgs(args []string) (partitionArgs, error) {
	var pa partitionArgs
	var err error
	if pa.k, err = strconv.Atoi(args[0]); err != nil {
		return pa, fmt.Errorf("k must be an integer: %q", args[0])
	}
	if pa.p, err = strconv.Atoi(args[1]); err != nil {
		return pa, fmt.Errorf("p must be an integer: %q", args[1])
	}
	if pa.q, err = strconv.Atoi(args[2]); err != nil {
		return pa, fmt.Errorf("q must be an integer: %q", args[2])
	}
	pa.centersFile = args[3]
	return pa, nil
}

// retryingTables is the deployment allocation policy for unattended batch
// runs: exponential backoff with no elapsed-time limit, so a table of
// hundreds of MB to tens of GB waits for memory instead of failing the
// run.
func retryingTables(length int) (*assign.Table, error) {
	return assign.NewRetry(length, nil, assign.NeverStop(time.Second, 30*time.Second), log)
}

// writeOutput writes fn's output to the given path (or stdout for "-").
func writeOutput(path string, fn func(io.Writer) error) error {
	if path == "-" {
		return fn(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func newLayersCmd() *cobra.Command {
	var check string
	var out string
	cmd := &cobra.Command{
		Use:   "layers k p q centers_file",
		Short: "partition from a center list, one island per center",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pa, err := parsePartitionArgs(args)
			if err != nil {
				return err
			}

			strategy := island.CheckByCenters
			suffix := "v2"
			switch check {
			case "centers":
			case "neighbors":
				strategy = island.CheckByNeighbors
				suffix = "v3"
			default:
				return fmt.Errorf("unknown conflict check %q (want centers or neighbors)", check)
			}

			cs, err := centers.Load(pa.centersFile, pa.k)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"k": pa.k, "p": pa.p, "q": pa.q,
				"centers": len(cs), "check": check,
			}).Info("partitioning by layers")

			res, err := island.Partition(pa.k, pa.p, pa.q, cs,
				island.WithStrategy(strategy),
				island.WithTableFactory(retryingTables))
			if err != nil {
				return err
			}

			if out == "" {
				out = island.OutputFilename(pa.k, pa.p, pa.q, pa.centersFile, suffix)
			}
			if err := writeOutput(out, res.WriteHash); err != nil {
				return err
			}
			log.WithField("output", out).Info("hash written")
			return nil
		},
	}
	cmd.Flags().StringVar(&check, "check", "centers", "conflict test: centers or neighbors")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default h{k}-{p}-{q}-{tag}.hash-*, - for stdout)")
	return cmd
}

func newCliquesCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "cliques k p q cliques_file",
		Short: "partition from clique groups of co-seeded centers",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pa, err := parsePartitionArgs(args)
			if err != nil {
				return err
			}
			cls, err := centers.LoadCliques(pa.centersFile, pa.k)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"k": pa.k, "p": pa.p, "q": pa.q, "cliques": len(cls),
			}).Info("partitioning by cliques")

			res, err := island.PartitionCliques(pa.k, pa.p, pa.q, cls,
				island.WithTableFactory(retryingTables))
			if err != nil {
				return err
			}

			if out == "" {
				out = island.OutputFilename(pa.k, pa.p, pa.q, pa.centersFile, "c")
			}
			if err := writeOutput(out, res.WriteHash); err != nil {
				return err
			}
			log.WithField("output", out).Info("hash written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default h{k}-{p}-{q}-{tag}.hash-c, - for stdout)")
	return cmd
}

func newMultiCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "multi k p q centers_file",
		Short: "partition the (k-1)-, k- and (k+1)-length spaces together",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			pa, err := parsePartitionArgs(args)
			if err != nil {
				return err
			}
			cs, err := centers.Load(pa.centersFile, pa.k)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"k": pa.k, "p": pa.p, "q": pa.q, "centers": len(cs),
			}).Info("partitioning three length buckets")

			res, err := island.PartitionMultiLength(pa.k, pa.p, pa.q, cs,
				island.WithTableFactory(retryingTables))
			if err != nil {
				return err
			}

			if out == "" {
				out = island.OutputFilename(pa.k, pa.p, pa.q, pa.centersFile, "v4")
			}
			if err := writeOutput(out, res.WriteHash); err != nil {
				return err
			}
			log.WithField("output", out).Info("hash written")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default h{k}-{p}-{q}-{tag}.hash-v4, - for stdout)")
	return cmd
}

// Command kmerisle partitions the k-mer space into center-anchored
// islands and writes the resulting hashing function to a file.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log = logrus.New()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kmerisle",
		Short: "locality-sensitive partitioning of the k-mer space",
		Long: `kmerisle groups the 4^k strings over {A,C,G,T} into islands anchored at
given center k-mers, so that keys within edit distance p share an island
and keys farther than q never do. Each subcommand runs one partition
strategy and writes one line per assigned key: the decoded string and its
island id, or -1 for the gray area.`,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	root.AddCommand(newLayersCmd(), newCliquesCmd(), newMultiCmd(), newMISCmd(), newLSHCmd())
	return root
}

func main() {
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: false})

	root := newRootCmd()
	cobra.OnInitialize(func() {
		if v, _ := root.PersistentFlags().GetBool("verbose"); v {
			log.SetLevel(logrus.DebugLevel)
		}
	})

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("run failed")
		os.Exit(1)
	}
}

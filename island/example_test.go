package island_test

import (
	"fmt"
	"os"

	"github.com/sequtil/kmerisle/island"
	"github.com/sequtil/kmerisle/kmer"
)

// ExamplePartition grows a single island of radius 1 around AAA and emits
// the resulting hashing function.
func ExamplePartition() {
	center, err := kmer.Encode("AAA")
	if err != nil {
		fmt.Println("encode:", err)
		return
	}

	res, err := island.Partition(3, 1, 2, []kmer.Kmer{center})
	if err != nil {
		fmt.Println("partition:", err)
		return
	}
	if err := res.WriteHash(os.Stdout); err != nil {
		fmt.Println("write:", err)
	}

	// Output:
	// AAA 0
	// AAC 0
	// AAG 0
	// AAT 0
	// ACA 0
	// AGA 0
	// ATA 0
	// CAA 0
	// GAA 0
	// TAA 0
}

// ExamplePartition_gray shows the gray area between two nearby centers:
// keys whose assignment would break the local-agreement guarantee are
// committed to -1 instead of either id.
func ExamplePartition_gray() {
	aaa, _ := kmer.Encode("AAA")
	ttt, _ := kmer.Encode("TTT")

	res, err := island.Partition(3, 2, 4, []kmer.Kmer{aaa, ttt},
		island.WithStrategy(island.CheckByCenters))
	if err != nil {
		fmt.Println("partition:", err)
		return
	}

	taa, _ := kmer.Encode("TAA")
	fmt.Println("TAA ->", res.Kmers.Get(taa))

	// Output:
	// TAA -> -1
}

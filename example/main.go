// Command example streams zipf-distributed station ids through every
// estimator and compares each result against exact counts computed on
// the side. It also prints the process RSS afterwards: the estimators'
// footprint stays bounded by k, not by the stream length.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/streamkit/heavyhitter/eval"
	"github.com/streamkit/heavyhitter/summary"
)

const (
	k         = 10
	streamLen = 200000
)

func main() {
	mg, err := summary.NewMisraGries[string](k)
	if err != nil {
		log.Fatalf("misra-gries: %v", err)
	}
	lc, err := summary.NewLossyCounting[string](k)
	if err != nil {
		log.Fatalf("lossy counting: %v", err)
	}
	ss, err := summary.NewSpaceSaving[string](k)
	if err != nil {
		log.Fatalf("spacesaving: %v", err)
	}
	hk, err := summary.NewHeavyKeeper(k, 1024, 4, 0.925)
	if err != nil {
		log.Fatalf("heavykeeper: %v", err)
	}

	estimators := []struct {
		name string
		est  summary.Estimator[string]
	}{
		{"misra-gries", mg},
		{"lossy-counting", lc},
		{"spacesaving", ss},
		{"heavykeeper", hk},
	}

	zipf := rand.NewZipf(rand.New(rand.NewSource(42)), 1.5, 4, 10000)
	truth := make(map[string]uint64)
	for i := 0; i < streamLen; i++ {
		key := fmt.Sprintf("station-%d", zipf.Uint64())
		truth[key]++
		for _, e := range estimators {
			e.est.Update(key)
		}
	}

	for _, e := range estimators {
		report := eval.Compare(e.est.Candidates(), truth, k)
		fmt.Printf("%-14s table=%-4d overlap@%d=%d recall=%.2f\n",
			e.name, report.TableSize, k, report.Overlap, report.Recall)
		for _, entry := range e.est.TopK(5) {
			fmt.Printf("  %-14s est=%-7d true=%d\n", entry.Key, entry.Count, truth[entry.Key])
		}
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Fatalf("process: %v", err)
	}
	mem, err := proc.MemoryInfo()
	if err != nil {
		log.Fatalf("memory info: %v", err)
	}
	fmt.Printf("process RSS after %d updates: %d KiB\n", streamLen, mem.RSS/1024)
}

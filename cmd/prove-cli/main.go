// Command prove-cli loads a knowledge base from a YAML file and decides
// whether it entails a query clause.
//
// Usage:
//
//	prove-cli -kb royalty.yaml -query "Evil(John)"
//	prove-cli -kb kb.yaml -query "A|C" -db proofs.db -max-iter 200
//
// Literals in -query are separated by "|". A leading "¬" or "~" negates a
// literal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/cognicore/resolv/pkg/resolv"
	"github.com/cognicore/resolv/pkg/resolv/config"
	"github.com/cognicore/resolv/pkg/resolv/store"
	"github.com/cognicore/resolv/pkg/resolv/store/sqlite"
)

func main() {
	kbPath := flag.String("kb", "", "knowledge base YAML file (required)")
	query := flag.String("query", "", "query clause, literals separated by | (required)")
	dbPath := flag.String("db", "", "optional SQLite database for proof history")
	maxIter := flag.Int("max-iter", 0, "saturation iteration bound (0 = config/default)")
	timeout := flag.Duration("timeout", 30*time.Second, "inference deadline")
	flag.Parse()

	if *kbPath == "" || *query == "" {
		flag.Usage()
		os.Exit(2)
	}

	kbFile, err := config.LoadKnowledgeBase(*kbPath)
	if err != nil {
		log.Fatal("Failed to load knowledge base: ", err)
	}

	iterations := kbFile.MaxIterations
	if *maxIter > 0 {
		iterations = *maxIter
	}

	var st store.Store
	if *dbPath != "" {
		st, err = sqlite.Open(context.Background(), *dbPath)
		if err != nil {
			log.Fatal("Failed to open database: ", err)
		}
	}

	prover := resolv.New(resolv.Options{Store: st, MaxIterations: iterations})
	defer prover.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := prover.LoadKnowledgeBase(ctx, kbFile); err != nil {
		log.Fatal("Failed to load clauses: ", err)
	}

	lits := strings.Split(*query, "|")
	for i := range lits {
		lits[i] = strings.TrimSpace(lits[i])
	}

	res, err := prover.Ask(ctx, lits)
	if err != nil {
		log.Fatal("Inference failed: ", err)
	}

	fmt.Printf("%s: %s (%d iterations, %d clauses derived)\n",
		*query, res.Outcome, res.Iterations, res.Derived)
}

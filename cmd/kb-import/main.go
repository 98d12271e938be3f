// Command kb-import fetches an HTML page, extracts clause candidates from
// its <li>/<code>/<pre> elements, and writes them as a knowledge-base YAML
// file for prove-cli.
//
// Usage:
//
//	kb-import -url https://example.edu/exercise3.html -name exercise3 -out kb.yaml
package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/cognicore/resolv/internal/htmlkb"
	"github.com/cognicore/resolv/pkg/resolv/config"
)

func main() {
	url := flag.String("url", "", "page to fetch (required)")
	name := flag.String("name", "imported", "knowledge base name")
	out := flag.String("out", "kb.yaml", "output YAML file")
	flag.Parse()

	if *url == "" {
		flag.Usage()
		os.Exit(2)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(*url)
	if err != nil {
		log.Fatal("Failed to fetch page: ", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("Unexpected status %s from %s", resp.Status, *url)
	}

	clauses, err := htmlkb.Extract(resp.Body)
	if err != nil {
		log.Fatal("Failed to parse page: ", err)
	}
	if len(clauses) == 0 {
		log.Fatal("No well-formed clauses found on the page")
	}

	kb := &config.KnowledgeBase{Name: *name, Clauses: clauses}
	data, err := kb.Marshal()
	if err != nil {
		log.Fatal("Failed to encode knowledge base: ", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal("Failed to write output: ", err)
	}

	fmt.Printf("Wrote %d clauses to %s\n", len(clauses), *out)
}

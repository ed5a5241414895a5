// batakh-parse resolves a single utterance from the command line and prints
// the protocol JSON, or replays the canonical sample corpus with -corpus.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"batakh/internal/core/langpack"
	"batakh/internal/core/temporal"
)

// corpus is the canonical sample set: durations, clock times, calendar dates
var corpus = []string{
	"दस मिनट का टाइमर",
	"डेढ़ घंटे का टाइमर",
	"आधा घंटा",
	"साढ़े तीन घंटे",
	"पांच बजे अलार्म",
	"कल शाम पांच बजे का अलार्म",
	"सुबह सात बजे",
	"दस एएम",
	"शाम छह बजे तीस मिनट",
	"पंद्रह तारीख को मीटिंग",
	"पच्चीस दिसंबर को पार्टी",
	"नेक्स्ट मंडे दस एएम",
	"अगले शुक्रवार पांच बजे",
	"अगले महीने दस तारीख को",
}

func main() {
	_ = godotenv.Load()

	var (
		text    = flag.String("text", "", "utterance to parse (Devanagari)")
		reftime = flag.String("reftime", "", "reference clock: RFC3339 or epoch milliseconds (default: now IST)")
		runAll  = flag.Bool("corpus", false, "parse the canonical sample corpus instead of -text")
		pretty  = flag.Bool("pretty", false, "indent JSON output")
	)
	flag.Parse()

	if !*runAll && *text == "" {
		log.Fatal("either -text or -corpus is required")
	}

	pack, err := langpack.Load()
	if err != nil {
		log.Fatalf("load pack: %v", err)
	}
	parser := temporal.New(pack)

	ref, err := temporal.ResolveReference(*reftime, parser.Location())
	if err != nil {
		log.Fatalf("bad -reftime: %v", err)
	}

	inputs := []string{*text}
	if *runAll {
		inputs = corpus
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	for _, in := range inputs {
		if *runAll {
			fmt.Fprintf(os.Stdout, "# %s\n", in)
		}
		if err := enc.Encode(parser.Parse(in, ref)); err != nil {
			log.Fatalf("encode: %v", err)
		}
	}
}

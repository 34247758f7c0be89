// d1-normalize reads raw DataONE documents as JSON lines, e.g. from a
// captured feed, and emits normalized documents, processed in parallel.
//
// $ zstdcat dataone-feed-0-2013-06-13.ndjson.zst | d1-normalize > out.jsonl
//
// Records violating the input contract (unparseable XML, missing upload
// date) are skipped and counted, everything else aborts the run.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/segmentio/encoding/json"

	"github.com/csheldonhess/dataone"
	"github.com/csheldonhess/dataone/convert"
	"github.com/csheldonhess/dataone/pproc/record"
	"github.com/csheldonhess/dataone/schema/scrapi"
)

var (
	numWorkers  = flag.Int("w", runtime.NumCPU(), "number of workers")
	source      = flag.String("s", "DataONE", "source name stamped into documents")
	timestamp   = flag.String("t", time.Now().UTC().Format(time.RFC3339), "timestamp stamped into documents")
	strict      = flag.Bool("strict", false, "abort on the first malformed record instead of skipping")
	showVersion = flag.Bool("version", false, "show version")
)

func main() {
	flag.Parse()
	if *showVersion {
		fmt.Println(dataone.Version)
		os.Exit(0)
	}
	var (
		normalizer = convert.NewNormalizer(*source)
		skipped    atomic.Int64
	)
	processor := record.NewProcessor(func(b []byte) ([]byte, error) {
		var raw scrapi.RawDocument
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("unmarshal raw document: %w", err)
		}
		doc, err := normalizer.Normalize(&raw, *timestamp)
		if err != nil {
			var malformed convert.MalformedInput
			if !*strict && errors.As(err, &malformed) {
				log.Printf("skipping %s: %v", raw.DocID, err)
				skipped.Add(1)
				return nil, nil
			}
			return nil, err
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	}, record.WithWorkers(*numWorkers))
	if err := processor.Process(context.Background(), os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
	if n := skipped.Load(); n > 0 {
		log.Printf("skipped %d malformed record(s)", n)
	}
}

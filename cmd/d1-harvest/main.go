// d1-harvest fetches recently modified metadata records from the DataONE
// coordinating node and emits them as JSON lines, normalized by default.
//
// $ d1-harvest -b 3 | head -1 | jq .title
//
// Output goes to stdout or to a file (-o); files ending in .zst or .gz are
// compressed. With -capture, the raw feed for the day is written to the data
// directory instead, idempotently.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/klauspost/pgzip"
	"github.com/segmentio/encoding/json"
	"github.com/sethgrid/pester"
	log "github.com/sirupsen/logrus"

	"github.com/csheldonhess/dataone"
	"github.com/csheldonhess/dataone/config"
	"github.com/csheldonhess/dataone/convert"
	"github.com/csheldonhess/dataone/dateutil"
	"github.com/csheldonhess/dataone/feeds"
	"github.com/csheldonhess/dataone/xflag"
)

const sourceName = "DataONE"

var (
	defaultDataDir = path.Join(xdg.DataHome, dataone.AppName)
	oneHour        = 3600 * time.Second

	dir         = flag.String("d", defaultDataDir, "data directory for captured feeds")
	endpoint    = flag.String("e", "https://cn.dataone.org/cn/v1/query/solr/", "SOLR query endpoint of the coordinating node")
	daysBack    = flag.Int("b", 1, "harvest records modified within the last N days")
	pageSize    = flag.Int("p", feeds.DefaultPageSize, "rows per search request")
	maxRows     = flag.Int("x", 100000, "hard cap on records per run, 0 for no cap")
	maxRetries  = flag.Int("r", 3, "max retries")
	timeout     = flag.Duration("T", oneHour, "connection timeout")
	output      = flag.String("o", "", "output file, stdout if empty; .zst and .gz are compressed")
	rawOutput   = flag.Bool("raw", false, "emit raw documents instead of normalized ones")
	capture     = flag.Bool("capture", false, "write the raw day slice into the feed directory")
	feedPrefix  = flag.String("feed-prefix", "dataone-feed-0-", "prefix for captured feed files, to distinguish runs")
	showVersion = flag.Bool("version", false, "show version")

	since xflag.Date
)

func main() {
	flag.Var(&since, "since", "harvest records modified since a date (YYYY-MM-DD), overrides -b")
	flag.Parse()
	if *showVersion {
		fmt.Println(dataone.Version)
		os.Exit(0)
	}
	cfg := &config.Config{
		DataDir:    *dir,
		FeedDir:    path.Join(*dir, "feeds"),
		Endpoint:   *endpoint,
		Source:     sourceName,
		DaysBack:   *daysBack,
		PageSize:   *pageSize,
		MaxRows:    *maxRows,
		MaxRetries: *maxRetries,
		Timeout:    *timeout,
		UserAgent:  dataone.UserAgent,
	}
	if !since.IsZero() {
		cfg.DaysBack = dateutil.DaysBack(since.Time)
	}
	client := pester.New()
	client.Backoff = pester.ExponentialBackoff
	client.MaxRetries = cfg.MaxRetries
	client.RetryOnHTTP429 = true
	client.Timeout = cfg.Timeout
	harvester := &feeds.DataoneHarvester{
		Client:    client,
		Endpoint:  cfg.Endpoint,
		Source:    cfg.Source,
		UserAgent: cfg.UserAgent,
		PageSize:  cfg.PageSize,
		MaxRows:   cfg.MaxRows,
	}
	runID := uuid.NewString()[:8]
	log.Printf("harvest run %s: %s, last %d day(s)", runID, cfg.Endpoint, cfg.DaysBack)
	if *capture {
		if err := os.MkdirAll(cfg.FeedDir, 0755); err != nil {
			log.Fatal(err)
		}
		if err := harvester.WriteDaySlice(time.Now(), cfg.FeedDir, *feedPrefix); err != nil {
			log.Fatalf("capture: %v", err)
		}
		return
	}
	w, closeAll, err := openOutput(*output)
	if err != nil {
		log.Fatal(err)
	}
	records, err := harvester.Consume(cfg.DaysBack)
	if err != nil {
		log.Fatalf("harvest: %v", err)
	}
	var (
		normalizer = convert.NewNormalizer(cfg.Source)
		timestamp  = time.Now().UTC().Format(time.RFC3339)
		written    int
		skipped    int
	)
	for i := range records {
		var v interface{} = &records[i]
		if !*rawOutput {
			nd, err := normalizer.Normalize(&records[i], timestamp)
			if err != nil {
				var malformed convert.MalformedInput
				if errors.As(err, &malformed) {
					log.Printf("skipping %s: %v", records[i].DocID, err)
					skipped++
					continue
				}
				log.Fatal(err)
			}
			v = nd
		}
		b, err := json.Marshal(v)
		if err != nil {
			log.Fatal(err)
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			log.Fatal(err)
		}
		written++
	}
	if err := closeAll(); err != nil {
		log.Fatal(err)
	}
	log.Printf("run %s done: written=%d, skipped=%d", runID, written, skipped)
}

// openOutput returns a writer for a path, compressing by extension, and a
// function closing the whole writer stack. An empty path means stdout.
func openOutput(name string) (io.Writer, func() error, error) {
	if name == "" {
		bw := bufio.NewWriter(os.Stdout)
		return bw, bw.Flush, nil
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	switch {
	case strings.HasSuffix(name, ".zst"):
		zw, err := zstd.NewWriter(f)
		if err != nil {
			return nil, nil, err
		}
		return zw, func() error {
			if err := zw.Close(); err != nil {
				return err
			}
			return f.Close()
		}, nil
	case strings.HasSuffix(name, ".gz"):
		zw := pgzip.NewWriter(f)
		return zw, func() error {
			if err := zw.Close(); err != nil {
				return err
			}
			return f.Close()
		}, nil
	default:
		bw := bufio.NewWriter(f)
		return bw, func() error {
			if err := bw.Flush(); err != nil {
				return err
			}
			return f.Close()
		}, nil
	}
}

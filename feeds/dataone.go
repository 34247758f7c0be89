// Package feeds fetches raw bibliographic data from the web, currently only
// from the DataONE coordinating node SOLR search endpoint.
package feeds

import (
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/csheldonhess/dataone/atomicfile"
	"github.com/csheldonhess/dataone/dateutil"
	"github.com/csheldonhess/dataone/schema/scrapi"
	"github.com/csheldonhess/dataone/schema/solr"
	"github.com/jinzhu/now"
	"github.com/klauspost/compress/zstd"
	"github.com/segmentio/encoding/json"
)

// DefaultPageSize bounds a single request; the total result set is fetched in
// chunks of this size instead of one giant response.
const DefaultPageSize = 1000

const xmlDeclaration = "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n"

var bNewline = []byte("\n")

// Doer abstracts https://pkg.go.dev/net/http#Client.Do.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// DataoneHarvester fetches records modified within a trailing day window from
// the DataONE search API, two phases per harvest: a count query, then a full
// rows query. Retries and timeouts live in the injected client.
type DataoneHarvester struct {
	Client    Doer
	Endpoint  string // e.g. https://cn.dataone.org/cn/v1/query/solr/
	Source    string // source name stamped into raw documents
	UserAgent string
	PageSize  int // rows per request, defaults to DefaultPageSize
	MaxRows   int // hard cap on one harvest, 0 means uncapped
}

// query performs one request against the endpoint, with a modification date
// filter going daysBack days into the past.
func (h *DataoneHarvester) query(daysBack, start, rows int) (*solr.Response, error) {
	vs := url.Values{}
	vs.Add("q", fmt.Sprintf("dateModified:[NOW-%dDAY TO *]", daysBack))
	vs.Add("start", strconv.Itoa(start))
	vs.Add("rows", strconv.Itoa(rows))
	link := fmt.Sprintf("%s?%s", h.Endpoint, vs.Encode())
	req, err := http.NewRequest("GET", link, nil)
	if err != nil {
		return nil, err
	}
	if h.UserAgent != "" {
		req.Header.Add("User-Agent", h.UserAgent)
	}
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("dataone: HTTP %d while fetching %s", resp.StatusCode, link)
	}
	var sr solr.Response
	if err := xml.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("dataone: decode failed: %w", err)
	}
	return &sr, nil
}

// Count returns the total number of records modified in the last daysBack
// days, requesting a minimal page.
func (h *DataoneHarvester) Count(daysBack int) (int, error) {
	sr, err := h.query(daysBack, 0, 0)
	if err != nil {
		return 0, err
	}
	return sr.Result.NumFound, nil
}

// FetchAll retrieves up to rows matched records, in service provided order.
// The result set is paged internally, PageSize rows at a time.
func (h *DataoneHarvester) FetchAll(daysBack, rows int) ([]solr.Doc, error) {
	pageSize := h.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	var docs []solr.Doc
	for start := 0; start < rows; start += pageSize {
		n := pageSize
		if rows-start < n {
			n = rows - start
		}
		sr, err := h.query(daysBack, start, n)
		if err != nil {
			return nil, err
		}
		docs = append(docs, sr.Result.Docs...)
		log.Printf("dataone: fetched %d/%d", len(docs), rows)
		if len(sr.Result.Docs) == 0 {
			// endpoint returned fewer records than announced
			break
		}
	}
	return docs, nil
}

// Consume counts the records modified in the last daysBack days, fetches that
// many rows and wraps each matched element as a raw document, using the
// record id field as docID. The whole page is buffered before any record is
// returned; any transport or parse failure aborts the harvest.
func (h *DataoneHarvester) Consume(daysBack int) ([]scrapi.RawDocument, error) {
	total, err := h.Count(daysBack)
	if err != nil {
		return nil, err
	}
	if h.MaxRows > 0 && total > h.MaxRows {
		log.Printf("dataone: numFound=%d exceeds cap, clamping to %d", total, h.MaxRows)
		total = h.MaxRows
	}
	docs, err := h.FetchAll(daysBack, total)
	if err != nil {
		return nil, err
	}
	result := make([]scrapi.RawDocument, 0, len(docs))
	for i := range docs {
		doc := &docs[i]
		result = append(result, scrapi.RawDocument{
			Doc:      xmlDeclaration + doc.XML(),
			Source:   h.Source,
			DocID:    doc.Str("id"),
			FileType: "xml",
		})
	}
	return result, nil
}

// WriteSlice writes the raw documents modified in the last daysBack days as
// JSON lines into a writer.
func (h *DataoneHarvester) WriteSlice(w io.Writer, daysBack int) error {
	records, err := h.Consume(daysBack)
	if err != nil {
		return err
	}
	for _, record := range records {
		b, err := json.Marshal(record)
		if err != nil {
			return err
		}
		b = append(b, bNewline...)
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// WriteDaySlice is a helper to atomically write raw data since a given day to
// a zstd compressed file on disk under dir. Idempotent, once the data has
// been captured.
func (h *DataoneHarvester) WriteDaySlice(t time.Time, dir string, prefix string) error {
	start := now.With(t).BeginningOfDay()
	daysBack := dateutil.DaysBack(t)
	fn := fmt.Sprintf("%s%s.ndjson.zst", prefix, start.Format("2006-01-02"))
	cachePath := path.Join(dir, fn)
	if _, err := os.Stat(cachePath); err == nil {
		return nil
	}
	f, err := atomicfile.New(cachePath)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f)
	if err != nil {
		return err
	}
	if err := h.WriteSlice(enc, daysBack); err != nil {
		f.Abort()
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return f.Close()
}

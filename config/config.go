package config

import "time"

// Config for harvesting tools.
type Config struct {
	// DataDir is the generic data dir for all dataone tools.
	DataDir string
	// FeedDir is the directory for raw data feeds only. Can be anything, but
	// recommended to be a subdirectory of the DataDir.
	FeedDir string
	// Endpoint is the SOLR query URL of the coordinating node.
	Endpoint string
	// Source is the name stamped into every harvested document.
	Source string
	// DaysBack is the size of the trailing modification date window.
	DaysBack int
	// PageSize is the number of rows requested per search request.
	PageSize int
	// MaxRows caps one harvest run, 0 means uncapped.
	MaxRows int
	// MaxRetries is a generic retry count.
	MaxRetries int
	// Timeout is a generic operation timeout.
	Timeout time.Duration
	// UserAgent sent with every request.
	UserAgent string
}

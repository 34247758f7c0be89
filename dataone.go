package dataone

const (
	// AppName is used for cache and data directory names.
	AppName = "dataone"
	// Version of the library and tools.
	Version = "0.1.0"
	// UserAgent sent with requests to the DataONE coordinating node.
	UserAgent = "dataone/" + Version + " (https://github.com/csheldonhess/dataone)"
)

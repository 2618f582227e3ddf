// Package memory provides in-process implementations for the data storage
// interfaces defined in the internal/store package. Data lives only for the
// lifetime of the process; nothing is written to disk.
package memory

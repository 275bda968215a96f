package bench

import (
	"time"

	"github.com/google/uuid"
)

// Request describes a container workload: a mixed sequence of appends,
// positional inserts, and positional erases over uuid-tagged records.
type Request struct {
	Appends     int   `mapstructure:"appends" json:"appends" yaml:"appends"`
	Inserts     int   `mapstructure:"inserts" json:"inserts" yaml:"inserts"`
	Erases      int   `mapstructure:"erases" json:"erases" yaml:"erases"`
	PayloadSize int   `mapstructure:"payload_size" json:"payload_size" yaml:"payload_size"`
	Seed        int64 `mapstructure:"seed" json:"seed" yaml:"seed"`
	Reserve     int   `mapstructure:"reserve" json:"reserve" yaml:"reserve"`
	MaxCapacity int   `mapstructure:"max_capacity" json:"max_capacity" yaml:"max_capacity"`
}

// GrowthEvent records one storage reallocation observed during a workload.
type GrowthEvent struct {
	Operation int `json:"operation" yaml:"operation"`
	FromCap   int `json:"from_cap" yaml:"from_cap"`
	ToCap     int `json:"to_cap" yaml:"to_cap"`
}

// Response summarizes a completed workload run.
type Response struct {
	Operations   int           `json:"operations" yaml:"operations"`
	Appends      int           `json:"appends" yaml:"appends"`
	Inserts      int           `json:"inserts" yaml:"inserts"`
	Erases       int           `json:"erases" yaml:"erases"`
	SkippedOps   int           `json:"skipped_ops" yaml:"skipped_ops"`
	FinalLen     int           `json:"final_len" yaml:"final_len"`
	FinalCap     int           `json:"final_cap" yaml:"final_cap"`
	Growths      []GrowthEvent `json:"growths" yaml:"growths"`
	Elapsed      time.Duration `json:"elapsed" yaml:"elapsed"`
	OpsPerSecond float64       `json:"ops_per_second" yaml:"ops_per_second"`
}

// Record is the workload element type. The payload gives elements real
// weight, and the deep-copy clone hook gives relocation real per-element
// work.
type Record struct {
	ID      uuid.UUID
	Payload []byte
}

// MaxPayloadSize bounds per-record payloads for workload requests.
const MaxPayloadSize = 1 << 20

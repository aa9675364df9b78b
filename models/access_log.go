package models

import "time"

// AccessLogEntry represents a single HTTP request as seen by the service.
// Entries are written once and never modified.
type AccessLogEntry struct {
	RequestType  string    `bson:"request_type" json:"request_type"`
	Route        string    `bson:"route" json:"route"`
	Datetime     time.Time `bson:"datetime" json:"datetime"`
	Duration     float64   `bson:"duration" json:"duration"` // seconds
	ResponseCode int       `bson:"response_code" json:"response_code"`
	Method       string    `bson:"method" json:"method"`
	IPAddress    *string   `bson:"ip_address" json:"ip_address"`
	UserAgent    *string   `bson:"user_agent" json:"user_agent"`
}

package services

import (
	"time"

	"github.com/disgoorg/snowflake/v2"
)

// IDFunc supplies ids for rows inserted inside transactions, where the id
// must be known before the insert.
type IDFunc func() int64

// SnowflakeIDs returns time-ordered snowflake ids.
func SnowflakeIDs() IDFunc {
	return func() int64 {
		return int64(snowflake.New(time.Now()))
	}
}

package datastore

import (
	"time"

	"github.com/uptrace/bun"
)

// ObjectDao is a data access object that maps directly to the 'data_objects' table in PostgreSQL.
// Every collection shares the table; (collection, id) is the primary key.
type ObjectDao struct {
	bun.BaseModel `bun:"table:data_objects,alias:o"`
	Collection    string    `bun:"collection,pk,type:varchar(255)"`
	ID            string    `bun:"id,pk,type:varchar(255)"`
	Object        string    `bun:"object,notnull,type:jsonb"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

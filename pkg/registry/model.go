package registry

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/canton-identity/pkg/participant"
)

// ParticipantDao is a data access object that maps directly to the 'participants' table in PostgreSQL.
type ParticipantDao struct {
	bun.BaseModel `bun:"table:participants,alias:p"`
	Namespace     string    `bun:"namespace,pk,type:varchar(255)"`
	Type          string    `bun:"type,pk,type:varchar(255)"`
	ID            string    `bun:"id,pk,type:varchar(255)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func toParticipantDao(p *participant.Participant) *ParticipantDao {
	return &ParticipantDao{
		Namespace: p.Namespace,
		Type:      p.Type,
		ID:        p.ID,
	}
}

func fromParticipantDao(dao *ParticipantDao) *participant.Participant {
	return participant.New(dao.Namespace, dao.Type, dao.ID)
}

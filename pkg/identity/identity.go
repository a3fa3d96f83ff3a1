// Package identity holds the domain model for user ID to participant mappings.
package identity

// CollectionName is the data collection that stores identity mappings, keyed by user ID.
const CollectionName = "$sysidentities"

// Mapping is the record persisted for a user ID.
type Mapping struct {
	Participant string `json:"participant"`
}

// NewMapping creates the record for a participant's fully-qualified identifier.
func NewMapping(fqi string) *Mapping {
	return &Mapping{Participant: fqi}
}

// AddIdentityMappingRequest is the body of POST /identities.
// Participant is a fully-qualified identifier such as "org.doge.Doge#DOGE_1".
type AddIdentityMappingRequest struct {
	Participant string `json:"participant"`
	UserID      string `json:"user_id"`
}

// IdentityMappingResponse describes a stored mapping.
type IdentityMappingResponse struct {
	UserID      string `json:"user_id"`
	Participant string `json:"participant"`
}

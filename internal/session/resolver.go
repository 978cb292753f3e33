package session

import (
	"context"

	"fitswitch/internal/logger"
)

// ResolutionSource tags how a gym id was determined. The original UI silently
// fell back to a hardcoded gym id when lookups failed; here an unresolvable
// gym is reported as such instead.
type ResolutionSource string

const (
	ResolvedFromMembership ResolutionSource = "membership"
	ResolvedFromGymLookup  ResolutionSource = "gym_lookup"
	Unresolved             ResolutionSource = "unresolved"
)

type GymResolution struct {
	GymID  int64            `json:"gym_id,omitempty"`
	Source ResolutionSource `json:"source"`
}

// GymDirectory answers name lookups; the catalog service implements it.
type GymDirectory interface {
	FindGymByName(ctx context.Context, token, name string) (int64, bool, error)
}

// MembershipRef is what the caller knows about the membership's gym linkage.
// Older backend payloads omit the gym id and only carry the name.
type MembershipRef struct {
	GymID   int64
	GymName string
}

type Resolver struct {
	dir GymDirectory
}

func NewResolver(dir GymDirectory) *Resolver {
	return &Resolver{dir: dir}
}

// ResolveGym tries the membership's own gym id first, then a directory
// lookup by name. Both failing yields Unresolved; there is no default id.
func (r *Resolver) ResolveGym(ctx context.Context, token string, ref MembershipRef) GymResolution {
	if ref.GymID != 0 {
		return GymResolution{GymID: ref.GymID, Source: ResolvedFromMembership}
	}

	if ref.GymName != "" && r.dir != nil {
		id, ok, err := r.dir.FindGymByName(ctx, token, ref.GymName)
		if err != nil {
			logger.Debug("gym name lookup failed", "gym_name", ref.GymName, "error", err.Error())
		} else if ok {
			return GymResolution{GymID: id, Source: ResolvedFromGymLookup}
		}
	}

	return GymResolution{Source: Unresolved}
}

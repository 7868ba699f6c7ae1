package profile

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/voice-engine/internal/types"
)

// Activate marks the target profile active and deactivates every other
// profile in the set. The set is expected to be all profiles for one owner;
// the swap happens in place before returning, so callers never observe a
// state with two or zero active profiles.
func Activate(profiles []*types.BrandVoiceProfile, target uuid.UUID) error {
	found := false
	for _, p := range profiles {
		if p.ID == target {
			found = true
			break
		}
	}
	if !found {
		return &NotFoundError{ProfileID: target}
	}

	now := time.Now().UTC()
	for _, p := range profiles {
		active := p.ID == target
		if p.IsActive != active {
			p.IsActive = active
			p.UpdatedAt = now
		}
	}
	return nil
}

// ActiveProfile returns the active profile in the set, or nil if none is active.
func ActiveProfile(profiles []*types.BrandVoiceProfile) *types.BrandVoiceProfile {
	for _, p := range profiles {
		if p.IsActive {
			return p
		}
	}
	return nil
}

package meta

import "github.com/kaanyalova/draft-advisor/internal/domain"

// StaticProvider serves a bundled meta snapshot. It is the default when no
// database-backed snapshot has been synced yet.
type StaticProvider struct {
	*snapshot
}

// NewStaticProvider builds a provider over the bundled snapshot
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{snapshot: newSnapshot(bundledStats)}
}

// NewProviderFromStats builds a provider over arbitrary entries; used by
// tests and by the store-backed refresh path.
func NewProviderFromStats(entries []Stats) Provider {
	return &StaticProvider{snapshot: newSnapshot(entries)}
}

// BundledStats returns a copy of the snapshot shipped with the binary,
// used to seed the database before the first live sync.
func BundledStats() []Stats {
	out := make([]Stats, len(bundledStats))
	copy(out, bundledStats)
	return out
}

const bundledPatch = "14.18"

// bundledStats mirrors the champions the curated tables care most about.
// The store-backed provider supersedes this once a sync has run.
var bundledStats = []Stats{
	{ChampionID: 141, Role: domain.RoleJungle, Tier: domain.TierSPlus, WinRate: 52.6, PickRate: 12.0, BanRate: 20.3, Patch: bundledPatch},
	{ChampionID: 238, Role: domain.RoleMid, Tier: domain.TierS, WinRate: 50.9, PickRate: 13.5, BanRate: 25.4, Patch: bundledPatch},
	{ChampionID: 412, Role: domain.RoleSupport, Tier: domain.TierSPlus, WinRate: 50.6, PickRate: 14.5, BanRate: 12.5, Patch: bundledPatch},
	{ChampionID: 122, Role: domain.RoleTop, Tier: domain.TierS, WinRate: 52.1, PickRate: 8.5, BanRate: 12.0, Patch: bundledPatch},
	{ChampionID: 64, Role: domain.RoleJungle, Tier: domain.TierSPlus, WinRate: 49.5, PickRate: 14.5, BanRate: 18.2, Patch: bundledPatch},
	{ChampionID: 157, Role: domain.RoleMid, Tier: domain.TierA, WinRate: 49.8, PickRate: 15.0, BanRate: 22.1, Patch: bundledPatch},
	{ChampionID: 67, Role: domain.RoleADC, Tier: domain.TierA, WinRate: 51.5, PickRate: 10.0, BanRate: 13.0, Patch: bundledPatch},
	{ChampionID: 555, Role: domain.RoleSupport, Tier: domain.TierA, WinRate: 49.7, PickRate: 9.0, BanRate: 12.0, Patch: bundledPatch},
	{ChampionID: 350, Role: domain.RoleSupport, Tier: domain.TierB, WinRate: 49.6, PickRate: 6.0, BanRate: 16.4, Patch: bundledPatch},
	{ChampionID: 121, Role: domain.RoleJungle, Tier: domain.TierSPlus, WinRate: 52.7, PickRate: 11.0, BanRate: 15.5, Patch: bundledPatch},
	{ChampionID: 222, Role: domain.RoleADC, Tier: domain.TierSPlus, WinRate: 52.9, PickRate: 18.0, BanRate: 14.1, Patch: bundledPatch},
	{ChampionID: 145, Role: domain.RoleADC, Tier: domain.TierS, WinRate: 50.8, PickRate: 22.0, BanRate: 15.2, Patch: bundledPatch},
	{ChampionID: 154, Role: domain.RoleJungle, Tier: domain.TierS, WinRate: 53.1, PickRate: 7.5, BanRate: 10.5, Patch: bundledPatch},
	{ChampionID: 103, Role: domain.RoleMid, Tier: domain.TierS, WinRate: 52.3, PickRate: 10.5, BanRate: 12.2, Patch: bundledPatch},
	{ChampionID: 89, Role: domain.RoleSupport, Tier: domain.TierS, WinRate: 52.5, PickRate: 11.5, BanRate: 13.1, Patch: bundledPatch},
	{ChampionID: 54, Role: domain.RoleTop, Tier: domain.TierA, WinRate: 52.8, PickRate: 6.5, BanRate: 8.0, Patch: bundledPatch},
	{ChampionID: 266, Role: domain.RoleTop, Tier: domain.TierS, WinRate: 51.2, PickRate: 12.5, BanRate: 18.3, Patch: bundledPatch},
	{ChampionID: 516, Role: domain.RoleTop, Tier: domain.TierS, WinRate: 52.4, PickRate: 5.5, BanRate: 6.5, Patch: bundledPatch},
	{ChampionID: 117, Role: domain.RoleSupport, Tier: domain.TierA, WinRate: 51.9, PickRate: 9.5, BanRate: 8.5, Patch: bundledPatch},
	{ChampionID: 777, Role: domain.RoleMid, Tier: domain.TierA, WinRate: 49.8, PickRate: 12.5, BanRate: 16.0, Patch: bundledPatch},
}

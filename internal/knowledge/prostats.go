package knowledge

import "github.com/kaanyalova/draft-advisor/internal/domain"

// proPlayStats carries pro-play and high-elo statistics for the champions
// with enough competitive presence to curate. Champions missing here fall
// back to their embedded catalog stats.
var proPlayStats = []ProStats{
	// Top
	{ChampionID: 266, Role: domain.RoleTop, Tier: domain.TierS, WinRate: 51.2, PickRate: 12.5, BanRate: 18.3, ProPickRate: 25.4, ProBanRate: 32.1, BlindPickSafe: true},
	{ChampionID: 164, Role: domain.RoleTop, Tier: domain.TierS, WinRate: 50.8, PickRate: 8.2, BanRate: 12.1, ProPickRate: 18.3, ProBanRate: 22.4, BlindPickSafe: false},
	{ChampionID: 122, Role: domain.RoleTop, Tier: domain.TierA, WinRate: 52.1, PickRate: 8.5, BanRate: 12.0, ProPickRate: 8.5, ProBanRate: 10.2, BlindPickSafe: false},
	{ChampionID: 114, Role: domain.RoleTop, Tier: domain.TierA, WinRate: 51.6, PickRate: 6.8, BanRate: 10.2, ProPickRate: 10.1, ProBanRate: 14.8, BlindPickSafe: false},
	{ChampionID: 54, Role: domain.RoleTop, Tier: domain.TierA, WinRate: 52.8, PickRate: 6.5, BanRate: 8.0, ProPickRate: 6.2, ProBanRate: 4.1, BlindPickSafe: true},
	{ChampionID: 516, Role: domain.RoleTop, Tier: domain.TierS, WinRate: 52.4, PickRate: 5.5, BanRate: 6.5, ProPickRate: 21.7, ProBanRate: 12.3, BlindPickSafe: true},
	// Jungle
	{ChampionID: 64, Role: domain.RoleJungle, Tier: domain.TierSPlus, WinRate: 49.5, PickRate: 14.5, BanRate: 18.0, ProPickRate: 38.2, ProBanRate: 28.5, BlindPickSafe: true},
	{ChampionID: 121, Role: domain.RoleJungle, Tier: domain.TierSPlus, WinRate: 52.7, PickRate: 11.0, BanRate: 15.5, ProPickRate: 12.4, ProBanRate: 9.8, BlindPickSafe: true},
	{ChampionID: 154, Role: domain.RoleJungle, Tier: domain.TierS, WinRate: 53.1, PickRate: 7.5, BanRate: 10.5, ProPickRate: 15.3, ProBanRate: 11.0, BlindPickSafe: true},
	{ChampionID: 141, Role: domain.RoleJungle, Tier: domain.TierSPlus, WinRate: 52.6, PickRate: 12.0, BanRate: 20.0, ProPickRate: 6.1, ProBanRate: 4.2, BlindPickSafe: true},
	{ChampionID: 113, Role: domain.RoleJungle, Tier: domain.TierS, WinRate: 52.2, PickRate: 5.0, BanRate: 3.5, ProPickRate: 24.6, ProBanRate: 15.7, BlindPickSafe: true},
	{ChampionID: 59, Role: domain.RoleJungle, Tier: domain.TierA, WinRate: 51.4, PickRate: 6.5, BanRate: 4.0, ProPickRate: 16.8, ProBanRate: 7.5, BlindPickSafe: true},
	// Mid
	{ChampionID: 238, Role: domain.RoleMid, Tier: domain.TierS, WinRate: 50.9, PickRate: 13.5, BanRate: 25.0, ProPickRate: 8.2, ProBanRate: 12.4, BlindPickSafe: false},
	{ChampionID: 157, Role: domain.RoleMid, Tier: domain.TierA, WinRate: 49.8, PickRate: 15.0, BanRate: 22.0, ProPickRate: 4.5, ProBanRate: 6.1, BlindPickSafe: false},
	{ChampionID: 103, Role: domain.RoleMid, Tier: domain.TierS, WinRate: 52.3, PickRate: 10.5, BanRate: 12.0, ProPickRate: 22.1, ProBanRate: 13.6, BlindPickSafe: true},
	{ChampionID: 61, Role: domain.RoleMid, Tier: domain.TierA, WinRate: 51.1, PickRate: 7.0, BanRate: 3.0, ProPickRate: 27.4, ProBanRate: 8.9, BlindPickSafe: true},
	{ChampionID: 90, Role: domain.RoleMid, Tier: domain.TierB, WinRate: 52.0, PickRate: 4.5, BanRate: 5.0, ProPickRate: 2.1, ProBanRate: 1.4, BlindPickSafe: true},
	// ADC
	{ChampionID: 222, Role: domain.RoleADC, Tier: domain.TierSPlus, WinRate: 52.9, PickRate: 18.0, BanRate: 14.0, ProPickRate: 19.5, ProBanRate: 10.3, BlindPickSafe: true},
	{ChampionID: 145, Role: domain.RoleADC, Tier: domain.TierS, WinRate: 50.8, PickRate: 22.0, BanRate: 15.0, ProPickRate: 31.2, ProBanRate: 18.7, BlindPickSafe: true},
	{ChampionID: 51, Role: domain.RoleADC, Tier: domain.TierA, WinRate: 50.2, PickRate: 14.0, BanRate: 12.0, ProPickRate: 15.4, ProBanRate: 9.2, BlindPickSafe: true},
	{ChampionID: 21, Role: domain.RoleADC, Tier: domain.TierA, WinRate: 52.4, PickRate: 12.0, BanRate: 6.0, ProPickRate: 9.8, ProBanRate: 3.5, BlindPickSafe: true},
	{ChampionID: 67, Role: domain.RoleADC, Tier: domain.TierA, WinRate: 51.5, PickRate: 10.0, BanRate: 13.0, ProPickRate: 3.2, ProBanRate: 5.8, BlindPickSafe: false},
	// Support
	{ChampionID: 412, Role: domain.RoleSupport, Tier: domain.TierSPlus, WinRate: 50.6, PickRate: 14.5, BanRate: 12.5, ProPickRate: 26.3, ProBanRate: 14.2, BlindPickSafe: true},
	{ChampionID: 111, Role: domain.RoleSupport, Tier: domain.TierS, WinRate: 51.0, PickRate: 10.0, BanRate: 11.0, ProPickRate: 29.8, ProBanRate: 16.5, BlindPickSafe: true},
	{ChampionID: 89, Role: domain.RoleSupport, Tier: domain.TierS, WinRate: 52.5, PickRate: 11.5, BanRate: 13.0, ProPickRate: 14.2, ProBanRate: 8.8, BlindPickSafe: true},
	{ChampionID: 117, Role: domain.RoleSupport, Tier: domain.TierA, WinRate: 51.9, PickRate: 9.5, BanRate: 8.5, ProPickRate: 12.6, ProBanRate: 5.4, BlindPickSafe: true},
	{ChampionID: 350, Role: domain.RoleSupport, Tier: domain.TierB, WinRate: 49.6, PickRate: 6.0, BanRate: 16.0, ProPickRate: 7.3, ProBanRate: 11.9, BlindPickSafe: true},
}

// Package scoring implements the food-collection score: a running total adjusted by collection
// events and scaled by temporary, additive multiplier bonuses.
//
// A Ledger tracks active bonuses per scope (global or one food category). Bonus expiry is a
// deferred callback on an injected Scheduler, so expiry runs on the same logical thread as score
// mutations and the package needs no locks. An Engine owns the total, applies events through
// the Ledger and notifies an optional WinObserver when the total crosses the win threshold.
package scoring

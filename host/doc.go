// Package host describes what the status writer needs from the game:
// scene-load notifications, play mode (characteristic) selection
// notifications and a snapshot of the level being played.
//
// Sources hand out subscriptions through a generic Bus whose Subscribe
// returns an unsubscribe function, so listeners are detached explicitly
// when the plugin stops. Local is an in-memory Host driven by tests and
// by the bridge package.
package host

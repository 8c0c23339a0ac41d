// Package status keeps a "now playing" text file in sync with the game.
//
// Plugin subscribes to host scene loads on Start. Menu scenes empty the
// status file and listen for play mode selection; any other scene reads
// the level from the host, builds keyword bindings and renders the
// user's template into the status file. The template is read from disk
// on every event so edits apply on the next scene, and it is recreated
// with DefaultTemplate when missing. Stop detaches every listener and
// empties the status file.
package status

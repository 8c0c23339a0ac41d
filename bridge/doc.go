// Package bridge feeds host events into a host.Local from a stream of
// line-delimited JSON, one event per line:
//
//	{"type":"characteristic","name":"One Saber"}
//	{"type":"level","level":{"songName":"Ghost","difficulty":"Expert+"}}
//	{"type":"scene","name":"StandardLevel"}
//	{"type":"level"}
//	{"type":"scene","name":"Menu"}
//
// A scene event may carry the level inline. A level event without a
// level clears it. Bridge.Run applies events and template change
// signals from TemplateWatcher on a single goroutine, so listeners on
// the host never run concurrently.
package bridge

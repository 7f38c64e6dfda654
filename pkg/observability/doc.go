/*
Package observability exposes stepline playback to Prometheus.

Metrics is an EventBus that counts draw and playback events per timeline;
QueueCollector samples an engine's Inspection on every scrape, so queue
depths, checkpoints and playback state are always current.
*/
package observability

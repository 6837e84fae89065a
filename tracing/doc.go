// Package tracing wraps OpenTelemetry so that the patch services can open and
// close spans without importing the SDK. Spans are no-op until Init or
// InitWithExporter installs a provider.
package tracing

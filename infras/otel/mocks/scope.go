package mocks

import "drivent/infras/otel"

// noopScope satisfies otel.Scope for tests that do not inspect spans.
type noopScope struct{}

func (noopScope) AddEvent(string) {}

func (noopScope) End() {}

func (noopScope) SetAttribute(string, any) {}

func (noopScope) SetAttributes(map[string]any) {}

func (noopScope) TraceError(error) {}

func (noopScope) TraceIfError(error) {}

func NewScope() otel.Scope {
	return noopScope{}
}

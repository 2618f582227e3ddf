// Package events provides types and interfaces for an event-driven architecture.
//
// This package defines event types and handler interfaces that allow for loose coupling
// between components in the system. The task service emits a TaskEvent after every
// successful mutation without knowing which handlers (metrics, audit logging) will
// process it.
//
// The primary components are:
// - TaskEvent: Describes a change to a task (created, toggled, deleted)
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events

// Package domain contains the core business entities, value objects, and
// domain logic of the application. It represents the heart of the system,
// independent of any specific infrastructure or delivery mechanism.
//
// The central entity is Task, a to-do item whose effort Tag is derived from
// the word count of its title when the task is created.
package domain

// Package models contains the JSON records that make up a saved data file.
// These records are separate from domain entities to keep the domain layer free
// of serialization concerns.
//
// Key Principles:
// 1. Domain entities carry no JSON tags
// 2. Records mirror the on-disk document field for field
// 3. Mappers convert between domain entities and records
// 4. Records loaded from disk are checked before they become entities
//
// Structure:
// - base.go: Document envelope and schema version
// - catalog.go: Product record
// - partner.go: Customer record
// - trade.go: Order and order item records
package models

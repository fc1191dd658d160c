// Package services implements the application layer for the delivery API.
// Each service owns the use cases of one aggregate and coordinates domain
// objects, cross-aggregate business rules, and transactional persistence
// through the UnitOfWork port.
//
// Services validate input by delegating to domain constructors and setters,
// enforce store-level rules the aggregates cannot see (uniqueness of natural
// keys, activity gates, referential integrity on delete), and translate
// nothing: domain errors flow to the caller unchanged so the transport layer
// can map them to responses.
package services

// Package models defines the entity records served by the academic-records
// backend. Every entity is owned upstream; the gateway only holds
// read-mostly snapshots fetched per page view and discarded afterwards.
package models

// Package database manages the relational connection used by the database
// snapshot backend.
//
// SQLite is the default driver since the snapshot cache is a local concern;
// MySQL is supported for deployments that already run one. The connection is
// optional: when it cannot be established, the application falls back to the
// filesystem snapshot store.
package database

// Package migrations embeds the schema migrations for every supported
// database driver and runs them with goose.
//
// Migration files live in one directory per dialect (postgres/, sqlite/) and
// follow the goose SQL format with "-- +goose Up" and "-- +goose Down"
// sections.
package migrations

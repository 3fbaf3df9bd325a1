// Package seed loads link directory content into the site store from a JSON
// manifest.
//
// Seeding is idempotent: groups and links that already exist are skipped, so
// the same manifest can be applied on every deploy.
package seed

// Package compat answers whether a map archive runs on the Quake 3 demo.
//
// A check is one pass through the pipeline:
//
//  1. Load the reference inventories (demo pak0, full pak0, patches pak1..pak7).
//     The demo and full paks are required; absent patches are skipped with a
//     warning. Built references are cached for check.cache_ttl_seconds.
//  2. Open the map archive and gather the assets it requires (core/deps).
//  3. Classify every asset (core/reconcile) and derive the verdict.
//
// # Output
//
// A Report renders as a human-readable text report (styled when written to a
// terminal), JSON or YAML.
//
// # HTTP Endpoints
//
//   - GET /check?map=<url|s3://bucket/key> : Checks a remote map.
//   - POST /check?name=<file.pk3> : Checks the pk3 sent as request body.
//   - GET /check/references : Sizes of the loaded reference inventories.
//   - GET /check/maps : Lists the map archives in the storage bucket.
//
// Every check endpoint accepts ?format=json|yaml|text (default json).
package compat

// Command catalogpatch applies the catalog's schema and data patches.
//
//	catalogpatch setup:upgrade     # apply pending patches
//	catalogpatch patch:status      # list patches and their batch
//	catalogpatch patch:revert      # revert the last batch
//	catalogpatch seed              # insert demo categories and sources
//
// Configuration comes from config/app.json, .env and the environment, in
// that order. Use --config and --env-file to point elsewhere.
package main

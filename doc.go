// Package dataverse is a typed client for the Dataverse research-data
// repository REST API.
//
// A Client is constructed from a config.Config and hands out per-resource
// accessors; each call returns a Response carrying the raw bytes plus lazy
// typed views over the API's status envelope:
//
//	cfg, err := config.FromEnv()
//	if err != nil { ... }
//	client, err := dataverse.NewClient(cfg)
//	if err != nil { ... }
//
//	resp, err := client.Dataverse("root").View(ctx)
//	if err != nil { ... }
//	dv, err := resp.Data()
//	if err != nil { ... }
//	fmt.Println(dv.Description)
//
// Datasets and files are addressed either by database id or by persistent
// identifier; the Identifier type makes the choice explicit:
//
//	client.Dataset(dataverse.PID("doi:10.5072/FK2/ABCDEF")).Publish(ctx, true)
//	client.Dataset(dataverse.ID(42)).Locks(ctx)
//
// Transient locked-dataset failures (background ingest holds a dataset
// lock for a few seconds) are retried transparently with a fixed delay;
// see config.Config.LockedRetryCount and LockedRetryInterval.
package dataverse

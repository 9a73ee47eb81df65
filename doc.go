// Package cloudbridge exposes a cloud document container and a key-value store
// to a scripting host as the "CloudStore" bridge module.
//
// The package glues the bridge dispatcher, the CloudStore method table and the
// JSON-RPC host surface together:
//
//	srv, _ := cloudbridge.NewService(ctx, &cloudbridge.Config{ContainerURL: "file:///data/container"}, logger)
//	defer srv.Close()
//	log.Fatal(srv.Stdio(ctx).ListenAndServe())
//
// Every method resolves or rejects exactly once; rejections carry a code of
// UNKNOWN_METHOD or HANDLER_ERROR and, for container and key-value failures, a
// stable reason such as ERR_FILE_NOT_EXIST.
package cloudbridge

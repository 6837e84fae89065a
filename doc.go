// Package textpatch applies normal, unified, context and ed diffs to text
// files, forward or in reverse, and generates unified and context diffs.
//
// End-users typically interact with the library via the high-level Service
// façade exposed by the root package:
//
//	srv := textpatch.New(textpatch.WithConfig(cfg))
//	out, err := srv.Apply(ctx, &patch.ApplyInput{Patch: text, File: "hello.c"})
//
// Files are addressed by URL through github.com/viant/afs, so the patched
// file, the output and the backup may live on any supported storage.
package textpatch

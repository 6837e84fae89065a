// Command textpatch applies a normal, unified, context or ed diff to a file.
//
//	textpatch [-R] [-b] [-o out] [-i patch] [file]
//	textpatch -stat -i patch
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/viant/afs"
	"github.com/viant/textpatch"
	"github.com/viant/textpatch/service/action/system/patch"
)

func main() {
	var (
		patchURL  = flag.String("i", "", "read the patch from this file instead of stdin")
		output    = flag.String("o", "", "write the result to this file instead of patching in place")
		reverse   = flag.Bool("R", false, "undo the patch")
		backup    = flag.Bool("b", false, "keep a backup of the patched file")
		suffix    = flag.String("suffix", "", "backup suffix (default .orig)")
		force     = flag.Bool("f", false, "never ask, overwrite an existing output file")
		dialect   = flag.String("F", "", "diff dialect: normal, unified, context or ed (detected when empty)")
		configURL = flag.String("config", "", "YAML configuration file (default $TEXTPATCH_CONFIG)")
		statOnly  = flag.Bool("stat", false, "print patch statistics instead of applying it")
		traceFile = flag.String("trace", "", "write OpenTelemetry spans to this file")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
			os.Exit(1)
		}
	}
	if *configURL == "" {
		*configURL = os.Getenv("TEXTPATCH_CONFIG")
	}

	ctx := context.Background()
	fs := afs.New()
	cfg := textpatch.DefaultConfig()
	if *configURL != "" {
		var err error
		if cfg, err = textpatch.LoadConfig(ctx, fs, *configURL); err != nil {
			exit(err)
		}
	}
	if *traceFile != "" {
		cfg.Tracing.Enabled = true
		cfg.Tracing.OutputFile = *traceFile
	}
	srv := textpatch.New(textpatch.WithConfig(cfg), textpatch.WithFs(fs))

	patchText, err := readPatch(ctx, fs, *patchURL)
	if err != nil {
		exit(err)
	}
	if *statOnly {
		out, err := srv.Stat(ctx, string(patchText))
		if err != nil {
			exit(err)
		}
		for _, item := range out.Files {
			fmt.Printf("%v: %d hunks, %d added, %d changed, %d deleted\n", item.Path, item.Hunks, item.Added, item.Changed, item.Deleted)
		}
		return
	}

	overwrite := *force || cfg.Apply.Force
	if *output != "" && !overwrite {
		if exists, _ := fs.Exists(ctx, *output); exists {
			exit(fmt.Errorf("output file %v already exists, use -f to overwrite", *output))
		}
	}
	out, err := srv.Apply(ctx, &patch.ApplyInput{
		Patch:        string(patchText),
		Format:       *dialect,
		File:         flag.Arg(0),
		Output:       *output,
		Reverse:      *reverse,
		Backup:       *backup,
		BackupSuffix: *suffix,
		Force:        overwrite,
	})
	if err != nil {
		exit(err)
	}
	summary, _ := json.Marshal(out)
	fmt.Fprintln(os.Stderr, string(summary))
}

func readPatch(ctx context.Context, fs afs.Service, URL string) ([]byte, error) {
	if URL == "" {
		return io.ReadAll(os.Stdin)
	}
	return fs.DownloadWithURL(ctx, URL)
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "textpatch: %v\n", err)
	os.Exit(1)
}

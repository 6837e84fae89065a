package patch

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/viant/textpatch/internal/clock"
	"github.com/viant/textpatch/internal/idgen"
	"github.com/viant/textpatch/model/format"
	"github.com/viant/textpatch/model/types"
	"github.com/viant/textpatch/service/parser"
	"github.com/viant/textpatch/tracing"
)

func (s *Service) apply(ctx context.Context, in, out interface{}) error {
	input, ok := in.(*ApplyInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*ApplyOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	output.RunID = idgen.New()
	ctx = types.EnsureExecutionContext(ctx, "runID", output.RunID)
	ctx, span := tracing.StartSpan(ctx, "patch.apply", "INTERNAL")
	err := s.applyPatch(ctx, input, output)
	attributes := types.ExecutionValues(ctx)
	attributes["format"] = output.Format
	attributes["hunks"] = strconv.Itoa(output.Hunks)
	attributes["destination"] = output.Destination
	span.WithAttributes(attributes)
	tracing.EndSpan(span, err)
	return err
}

func (s *Service) applyPatch(ctx context.Context, input *ApplyInput, output *ApplyOutput) error {
	data := []byte(input.Patch)
	f := parser.Detect(data)
	if input.Format != "" {
		var err error
		if f, err = format.Parse(input.Format); err != nil {
			return err
		}
	}
	_, parseSpan := tracing.StartSpan(ctx, "patch.parse", "INTERNAL")
	hunks, err := parser.ParseAs(data, f, s.fs, input.options())
	tracing.EndSpan(parseSpan, err)
	if err != nil {
		return fmt.Errorf("failed to parse patch: %w", err)
	}
	output.Format = f.String()
	output.Hunks = hunks.Len()

	started := clock.Now()
	if err = hunks.Apply(ctx); err != nil {
		s.logger.Printf("patch %v: failed to apply %d %v hunks: %v", output.RunID, hunks.Len(), f, err)
		return err
	}
	output.Source = hunks.Source().URL()
	output.Destination = hunks.Destination()
	output.Backup = hunks.BackupURL()
	output.Lines = hunks.Stats()
	result, err := GenerateDiff(hunks.Source().Bytes(), hunks.Output(), output.Destination, 0, format.Unified, started)
	switch {
	case err == nil:
		output.Stats = result.Stats
	case !errors.Is(err, ErrNoChange):
		return err
	}
	s.logger.Printf("patch %v: applied %d %v hunks to %v in %s", output.RunID, hunks.Len(), f, output.Destination, clock.Since(started))
	return nil
}

func (s *Service) diff(_ context.Context, in, out interface{}) error {
	input, ok := in.(*DiffInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*DiffOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	f := format.Unified
	if input.Format != "" {
		var err error
		if f, err = format.Parse(input.Format); err != nil {
			return err
		}
	}
	res, err := GenerateDiff([]byte(input.OldContent), []byte(input.NewContent), input.Path, input.ContextLines, f, clock.Now())
	if err != nil {
		return err
	}
	*output = DiffOutput(res)
	return nil
}

func (s *Service) stat(_ context.Context, in, out interface{}) error {
	input, ok := in.(*StatInput)
	if !ok {
		return types.NewInvalidInputError(in)
	}
	output, ok := out.(*StatOutput)
	if !ok {
		return types.NewInvalidOutputError(out)
	}
	files, err := Stat([]byte(input.Patch))
	if err != nil {
		return err
	}
	output.Files = files
	return nil
}

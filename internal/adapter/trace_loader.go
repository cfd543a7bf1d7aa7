package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	m "cairocov.dev/pkg/cairocov/internal/model"
)

// TraceLoader reads call trace files.
type TraceLoader interface {
	// LoadGrouped returns the low-level traces of all files grouped by the
	// program artifact they ran, in first-seen order.
	LoadGrouped(ctx context.Context, paths []m.Path) ([]m.ExecutionGroup, error)
}

// LocalTraceLoader decodes trace files read through an FSAdapter.
type LocalTraceLoader struct {
	fs      FSAdapter
	threads int
}

// NewLocalTraceLoader constructs a LocalTraceLoader reading at most threads
// files at once. Zero means unbounded.
func NewLocalTraceLoader(fs FSAdapter, threads int) *LocalTraceLoader {
	return &LocalTraceLoader{fs: fs, threads: threads}
}

// LoadGrouped implements TraceLoader.
func (l *LocalTraceLoader) LoadGrouped(ctx context.Context, paths []m.Path) ([]m.ExecutionGroup, error) {
	traces := make([]m.VersionedCallTrace, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	if l.threads > 0 {
		group.SetLimit(l.threads)
	}

	for i, path := range paths {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			trace, err := l.load(path)
			if err != nil {
				return err
			}

			traces[i] = trace

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var infos []m.ExecutionInfo
	for i := range traces {
		infos = append(infos, traces[i].ExecutionInfos()...)
	}

	groups := GroupBySierraPath(infos)

	slog.Debug("Loaded call traces", "files", len(paths), "executions", len(infos), "artifacts", len(groups))

	return groups, nil
}

func (l *LocalTraceLoader) load(path m.Path) (m.VersionedCallTrace, error) {
	var trace m.VersionedCallTrace

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return trace, fmt.Errorf("failed to read file at path: %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &trace); err != nil {
		return trace, fmt.Errorf("failed to deserialize JSON content from file at path: %s: %w", path, err)
	}

	return trace, nil
}

// GroupBySierraPath groups execution infos by artifact, keeping the order in
// which artifacts and traces first appear.
func GroupBySierraPath(infos []m.ExecutionInfo) []m.ExecutionGroup {
	var groups []m.ExecutionGroup

	position := map[m.Path]int{}

	for _, info := range infos {
		idx, ok := position[info.SourceSierraPath]
		if !ok {
			idx = len(groups)
			position[info.SourceSierraPath] = idx
			groups = append(groups, m.ExecutionGroup{SourceSierraPath: info.SourceSierraPath})
		}

		groups[idx].CasmLevelInfos = append(groups[idx].CasmLevelInfos, info.CasmLevelInfo)
	}

	return groups
}

package importer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/timesheet/internal/domain"
	"github.com/alexanderramin/timesheet/internal/sheet"
	"golang.org/x/sync/errgroup"
)

// Source is one uploaded spreadsheet. Load is called once, concurrently with
// the other sources of the same extraction.
type Source struct {
	Name string
	Load func(ctx context.Context) ([]byte, error)
}

// FileSource reads the workbook at path.
func FileSource(path string) Source {
	return Source{
		Name: filepath.Base(path),
		Load: func(ctx context.Context) ([]byte, error) {
			return os.ReadFile(path)
		},
	}
}

// BytesSource serves an in-memory workbook.
func BytesSource(name string, data []byte) Source {
	return Source{
		Name: name,
		Load: func(context.Context) ([]byte, error) {
			return data, nil
		},
	}
}

// ExtractAll reads and extracts every source concurrently and concatenates the
// results in source order, regardless of completion order. The first read or
// decode failure cancels the remaining sources; the error wraps
// domain.ErrDecode and names the file.
func ExtractAll(ctx context.Context, sources []Source, target string, opts Options) (Result, error) {
	results := make([]Result, len(sources))

	g, gCtx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			data, err := src.Load(gCtx)
			if err != nil {
				return fmt.Errorf("%w: reading %s: %v", domain.ErrDecode, src.Name, err)
			}
			if err := gCtx.Err(); err != nil {
				return err
			}
			sheets, err := sheet.DecodeBytes(data)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", src.Name, err)
			}
			res := ExtractWorkbook(sheets, target, opts)
			for j := range res.Issues {
				res.Issues[j].File = src.Name
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var all Result
	for _, r := range results {
		all.append(r)
	}
	return all, nil
}

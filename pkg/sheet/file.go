package sheet

import (
	"context"

	"github.com/user/orbsmith/pkg/adapters/ggrenderer"
	"github.com/user/orbsmith/pkg/adapters/logger"
	"github.com/user/orbsmith/pkg/adapters/osfilesystem"
)

// Combine lays out the orb files at paths and writes the sheet to
// outputPath. This is a convenience function that uses default adapters.
// For custom dependencies (e.g., custom logger), use the Stage API instead.
//
// Example using Stage API with custom logger:
//
//	stage := sheet.New(
//	    osfilesystem.New(),
//	    ggrenderer.New(),
//	    myCustomLogger,
//	    sheet.DefaultOptions(),
//	)
//	result, err := stage.Execute(ctx, sheet.Input{
//	    Paths:      []string{"full_health.png", "low_health.png"},
//	    OutputPath: "sheet.png",
//	})
func Combine(paths []string, outputPath string, opts Options) error {
	stage := New(osfilesystem.New(), ggrenderer.New(), logger.NewNoop(), opts)

	_, err := stage.Execute(context.Background(), Input{
		Paths:      paths,
		OutputPath: outputPath,
	})
	return err
}

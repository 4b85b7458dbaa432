package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pace-tools/pace"
	"github.com/pace-tools/pace/term"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// DemoCmd showcases the renderers and themes with simulated work.
func DemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Show the built-in themes and renderers",
		RunE: func(c *cobra.Command, args []string) error {
			fmt.Println("=== pace demo ===")

			themedDemo()
			concurrentDemo()
			channelDemo()

			fmt.Println("=== done ===")
			return nil
		},
	}
}

// barWidth keeps the demo bars inside the current terminal.
func barWidth() int {
	width := term.Width(os.Stdout) - 45
	if width < 10 {
		width = 10
	}
	if width > 40 {
		width = 40
	}
	return width
}

func themedDemo() {
	themes := []struct {
		name  string
		theme pace.Theme
	}{
		{"unicode", pace.ThemeUnicode},
		{"ascii", pace.ThemeASCII},
		{"circles", pace.ThemeCircles},
		{"braille", pace.ThemeBraille},
	}

	for _, t := range themes {
		renderer := pace.NewBarRenderer(os.Stdout,
			pace.WithTheme(t.theme),
			pace.WithBarWidth(barWidth()),
		)
		bar := pace.New(50,
			pace.WithRenderer(renderer),
			pace.WithInteractive(true),
			pace.WithLabel(t.name),
		)

		for i := 0; i < 50; i++ {
			time.Sleep(10 * time.Millisecond)
			bar.Inc()
		}
		bar.Finish()
	}
}

func concurrentDemo() {
	renderer := pace.NewBarRenderer(os.Stdout, pace.WithBarWidth(barWidth()))
	bar := pace.New(400,
		pace.WithRenderer(renderer),
		pace.WithInteractive(true),
		pace.WithLabel("4 workers"),
	)
	defer bar.Close()

	g := new(errgroup.Group)
	for w := 0; w < 4; w++ {
		g.Go(func() error {
			for i := 0; i < 100; i++ {
				time.Sleep(5 * time.Millisecond)
				bar.Inc()
			}
			return nil
		})
	}
	g.Wait()
}

func channelDemo() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	renderer := pace.NewChannelRenderer(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range renderer.Snapshots() {
			fmt.Printf("snapshot: %3.0f%% (%d/%d)\n", s.Percentage, s.Current, s.Total)
		}
	}()

	bar := pace.New(5,
		pace.WithRenderer(renderer),
		pace.WithInteractive(true),
		pace.WithRenderInterval(0),
	)
	for i := 0; i < 5; i++ {
		time.Sleep(50 * time.Millisecond)
		bar.Inc()
	}
	bar.Finish()

	renderer.Close()
	<-done
}

package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/coordinator/internal/demo"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/memstack"
	"github.com/BrandonKowalski/coordinator/pkg/coordinator/platform/sdlwindow"
)

func newSDLCmd(opts *options) *cobra.Command {
	var windowOpts sdlwindow.Options

	cmd := &cobra.Command{
		Use:   "sdl",
		Short: "Drive the sample flows in an SDL window",
		Long:  `sdl opens a window titled after the topmost screen. Keys: p push, m present sheet, c present foo, d dismiss, q or escape quit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := opts.loadCatalog()
			if err != nil {
				return err
			}

			if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
				return err
			}
			defer sdl.Quit()

			win, err := sdlwindow.New("coordemo", windowOpts)
			if err != nil {
				return err
			}
			defer win.Close()

			presenter := memstack.New(memstack.Options{OnChange: win.Refresh})
			win.Track(presenter)

			app := demo.NewApp(cat, presenter, win)
			if err := app.Start(); err != nil {
				return err
			}

			logger := coordinator.GetLogger()
			ctx := cmd.Context()
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				default:
				}

				for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
					switch e := event.(type) {
					case *sdl.QuitEvent:
						return nil

					case *sdl.KeyboardEvent:
						if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
							continue
						}
						key := strings.ToLower(sdl.GetKeyName(e.Keysym.Sym))
						if key == "q" || key == "escape" {
							return nil
						}
						op := demo.Action(key)
						if op == "" {
							continue
						}
						status, err := app.Do(key, coordinator.DefaultTransitionOptions())
						if err != nil {
							logger.Warn("Transition failed", "op", op, "error", err)
							continue
						}
						logger.Info(status)
					}
				}

				presenter.Settle()
				sdl.Delay(16)
			}
		},
	}

	flags := cmd.Flags()
	flags.Int32Var(&windowOpts.Width, "width", 0, "window width (default: display width)")
	flags.Int32Var(&windowOpts.Height, "height", 0, "window height (default: display height)")
	flags.BoolVar(&windowOpts.Resizable, "resizable", true, "allow resizing the window")

	return cmd
}

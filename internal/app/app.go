package app

import (
	"context"

	"github.com/five82/memberadmin/internal/prefs"
	"github.com/five82/memberadmin/internal/state"
	"github.com/five82/memberadmin/internal/ui"
)

// Options configure the interactive admin table.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/memberadmin/prefs.toml
	SourceURL  string // overrides config and environment when set
}

// Run boots the admin table TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	rt, err := boot(opts.ConfigPath, opts.SourceURL, false)
	if err != nil {
		return err
	}
	defer rt.flush()

	userPrefs := prefs.Load(opts.PrefsPath)

	store := &state.Store{}
	unsubscribe := store.Subscribe(logChanges(rt.log))
	defer unsubscribe()

	rt.log.Info("starting admin table")
	return ui.Run(ui.Options{
		Context: ctx,
		Store:   store,
		Load: func(ctx context.Context) error {
			return LoadMembers(ctx, store, rt.client, rt.log)
		},
		Logger:      rt.log,
		SourceURL:   rt.client.Source(),
		ThemeName:   userPrefs.Theme,
		HideHelpBar: userPrefs.HideHelpBar,
		PrefsPath:   opts.PrefsPath,
	})
}

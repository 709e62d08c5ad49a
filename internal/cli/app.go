package cli

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/itemexpr/pkg/config"
	"github.com/arthur-debert/itemexpr/pkg/expression"
	"github.com/arthur-debert/itemexpr/pkg/identity"
	"github.com/arthur-debert/itemexpr/pkg/logging"
	"github.com/arthur-debert/itemexpr/pkg/style"
)

// app holds what every command needs once flags are parsed.
type app struct {
	verbosity  int
	configPath string
	format     string

	cfg      *config.Config
	resolver identity.Resolver
	renderer style.Renderer
	markup   *style.MarkupParser
}

// setup loads configuration and picks the renderer.
func (a *app) setup(cmd *cobra.Command) error {
	logging.SetupLogger(a.verbosity)

	path := a.configPath
	if path == "" {
		path = config.UserConfigPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return err
	}
	if cfg.Log.Verbosity > a.verbosity {
		logging.SetupLogger(cfg.Log.Verbosity)
	}

	resolver, err := cfg.Resolver()
	if err != nil {
		return err
	}

	f, err := style.ParseFormat(a.format)
	if err != nil {
		return err
	}
	out, ok := cmd.OutOrStdout().(*os.File)
	if ok {
		f = f.Resolve(out)
	} else if f == style.FormatAuto {
		f = style.FormatText
	}

	logger := logging.WithFields(map[string]interface{}{
		"command": cmd.Name(),
		"format":  f.String(),
	})
	logger.Debug().Str("config", path).Msg("Command started")

	a.cfg = cfg
	a.resolver = resolver
	a.renderer = style.NewRenderer(f)
	if f == style.FormatTerminal {
		a.markup = style.NewMarkupParser()
	} else {
		a.markup = style.NewPlainParser()
	}
	return nil
}

func (a *app) loadExpression(selector string) (*expression.Expression, error) {
	return config.LoadExpression(config.ParseSelector(selector), a.cfg.Expressions.DefaultPath,
		expression.WithResolver(a.resolver))
}

// rng returns a generator seeded from seed, the configured seed or, when
// both are zero, a random seed.
func (a *app) rng(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = a.cfg.Random.Seed
	}
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger := logging.GetLogger("cli")
	logger.Debug().Uint64("seed", seed).Msg("Random generator seeded")
	return rand.New(rand.NewPCG(seed, seed))
}

func (a *app) println(cmd *cobra.Command, s string) {
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), s)
}

func (a *app) printf(cmd *cobra.Command, template string, vars map[string]string) {
	a.println(cmd, a.markup.RenderTemplate(template, vars))
}
